//go:build windows

package dispatch

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func hostVersion() string {
	v := windows.RtlGetVersion()
	return fmt.Sprintf("Windows %d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)
}
