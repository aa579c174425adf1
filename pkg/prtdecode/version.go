package prtdecode

import "github.com/prt-labs/prtdecode/pkg/log"

// Version information for the prtdecode module.
const (
	// Version is the current version of the prtdecode module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)

// ModuleVersions returns the versions of all sub-modules.
func ModuleVersions() map[string]string {
	return map[string]string{
		"prtdecode": Version,
		"log":       log.Version,
	}
}

// CompatibilityMatrix returns the minimum compatible versions of all sub-modules.
func CompatibilityMatrix() map[string]string {
	return map[string]string{
		"prtdecode": MinCompatibleVersion,
		"log":       log.MinCompatibleVersion,
	}
}
