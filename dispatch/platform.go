package dispatch

import "sync"

var (
	platformOnce    sync.Once
	platformVersion string
)

// PlatformVersion returns the host operating system name and version, for
// example "Linux 6.8.0", "macOS 14.4" or "Windows 10.0.19045". The value
// is computed once.
func PlatformVersion() string {
	platformOnce.Do(func() {
		platformVersion = hostVersion()
	})
	return platformVersion
}
