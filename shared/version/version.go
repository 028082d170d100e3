package version

import (
	"os"
	"strings"
	"sync"
)

const VersionLocal = "0-local"

var (
	// buildVersion is set with -ldflags "-X .../shared/version.buildVersion=..." by the release build.
	buildVersion string
	version      = VersionLocal
	once         sync.Once
)

// Version returns the release version. Lambda zips carry it in a ./version file next to the
// bootstrap binary; local builds report VersionLocal.
func Version() string {
	once.Do(func() {
		if buildVersion != "" {
			version = buildVersion
			return
		}

		data, err := os.ReadFile("./version")
		if err != nil {
			return
		}
		if trimmed := strings.TrimSpace(string(data)); trimmed != "" {
			version = trimmed
		}
	})

	return version
}
