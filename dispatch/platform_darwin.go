//go:build darwin

package dispatch

import "golang.org/x/sys/unix"

func hostVersion() string {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil || v == "" {
		return "macOS"
	}
	return "macOS " + v
}
