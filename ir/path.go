package ir

import "strings"

// Segments splits a slash-delimited key into its non-empty segments.
// Leading, trailing and doubled separators contribute nothing.
func Segments(key string) []string {
	parts := strings.Split(key, "/")
	res := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		res = append(res, p)
	}
	return res
}

// SplitKey resolves a key into its intermediate segments and final
// segment. A key with no separator yields no intermediate segments and
// the whole key as the final segment. A key with no non-empty segment
// yields ([], "").
func SplitKey(key string) ([]string, string) {
	segs := Segments(key)
	if len(segs) == 0 {
		return nil, ""
	}
	return segs[:len(segs)-1], segs[len(segs)-1]
}
