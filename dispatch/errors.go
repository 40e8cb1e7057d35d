package dispatch

import "errors"

var (
	// ErrNotImplemented is returned for methods the dispatcher does not serve
	ErrNotImplemented = errors.New("dispatch: method not implemented")

	// ErrDetached is returned for log calls while no sink is attached
	ErrDetached = errors.New("dispatch: no sink attached")
)
