// Package version holds the build version information reported to embedding
// applications.
package version

import (
	"fmt"
	"runtime"
)

// Version is the short application version (set via ldflags).
var Version = "dev"

// Long returns the long version string including runtime information.
func Long() string {
	return fmt.Sprintf("hostkit %s (%s %s-%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
