//go:build linux

package dispatch

import "golang.org/x/sys/unix"

func hostVersion() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "Linux"
	}
	return "Linux " + unix.ByteSliceToString(u.Release[:])
}
