package internal

import (
	"net/url"
)

var (
	currentVersion = "0.2.0"
)

// Version returns the version reported in the User-Agent header and by the
// command line.
func Version() string {
	return currentVersion
}

// IsRemote reports whether the input path is an http or https URL that has
// to be fetched instead of opened.
func IsRemote(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	default:
		return false
	}
}
