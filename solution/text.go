package solution

import "strings"

// splitOnce splits s at the first occurrence of sep into (left, right).
// ok is false when sep does not occur; left is then the whole string.
func splitOnce(s string, sep byte) (left, right string, ok bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// splitConfig splits a "buildtype|platform" pair at the last '|'.
// A value without '|' yields an empty platform.
func splitConfig(config string) (buildType, platform string) {
	i := strings.LastIndexByte(config, '|')
	if i < 0 {
		return strings.TrimSpace(config), ""
	}
	return strings.TrimSpace(config[:i]), strings.TrimSpace(config[i+1:])
}
