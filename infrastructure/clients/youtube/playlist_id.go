package youtube

import "regexp"

var (
	bareIDPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	listArgPattern = regexp.MustCompile(`[?&]list=([A-Za-z0-9_-]+)`)
)

// ExtractPlaylistID accepts a bare playlist id or a playlist URL.
// A bare token is returned as is, a URL yields its list= argument, anything else passes through unchanged.
func ExtractPlaylistID(input string) string {
	if bareIDPattern.MatchString(input) {
		return input
	}
	if m := listArgPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return input
}
