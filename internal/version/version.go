// Package version holds the build version of ameax-import.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/ameax/json-import-api-go/internal/version.Version=...".
var Version = "0.1.0-dev"

// UserAgent is sent with every request to the import endpoint.
func UserAgent() string {
	return "ameax-json-import-go/" + Version
}
