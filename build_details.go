package pont

import (
	"time"

	"github.com/carlmjohnson/versioninfo"
)

// version may be set via ldflags during release builds. When empty the
// module build information is used.
var version = ""

// Version returns the release version, or the VCS-derived short version for
// source builds.
func Version() string {
	if version != "" {
		return version
	}
	return versioninfo.Short()
}

// Commit returns the VCS revision, or "unknown".
func Commit() string {
	return versioninfo.Revision
}

// BuildTime returns the time of the last commit, or the zero time.
func BuildTime() time.Time {
	return versioninfo.LastCommit
}

// UserAgent returns the User-Agent sent when fetching API documents.
func UserAgent() string {
	return "pont/" + Version()
}
