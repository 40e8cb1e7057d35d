//go:build !linux && !darwin && !windows

package dispatch

import "runtime"

func hostVersion() string {
	return runtime.GOOS
}
