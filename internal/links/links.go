// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links finds markdown image references in post text and derives
// the asset identifiers that replace them.
package links

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/post-publish/pkg/types"
)

// AssetScheme prefixes every generated asset identifier.
const AssetScheme = "asset:"

// imagePattern matches the two accepted reference forms:
//
//	![name](.path "description")  relative path with a quoted description
//	![name](path)                 any target, no description
//
// Groups 1-3 belong to the first form, groups 4-5 to the second.
var imagePattern = regexp.MustCompile(`!\[([^\]]+)\]\((\.[^\s)]+)\s"([^")]+)"\)|!\[([^\]]+)\]\(([^)]+)\)`)

// Match is an image reference together with the byte span of its target
// path within the scanned line.
type Match struct {
	types.Link

	// PathStart and PathEnd delimit Link.Path in the line.
	PathStart, PathEnd int
}

// Extract returns every image reference in line, in order of appearance.
// It returns nil when the line holds no references.
func Extract(line string) []types.Link {
	matches := Find(line)
	if matches == nil {
		return nil
	}
	out := make([]types.Link, len(matches))
	for i, m := range matches {
		out[i] = m.Link
	}
	return out
}

// Find is Extract with the location of each target path, so callers can
// replace the path without touching the display name or surrounding text.
func Find(line string) []Match {
	idx := imagePattern.FindAllStringSubmatchIndex(line, -1)
	if len(idx) == 0 {
		return nil
	}

	var out []Match
	for _, loc := range idx {
		var m Match
		if loc[4] >= 0 {
			m.Name = group(line, loc, 1)
			m.Path, m.PathStart, m.PathEnd = trimmed(line, loc, 2)
			m.Description = group(line, loc, 3)
			m.HasDescription = m.Description != ""
		} else {
			m.Name = group(line, loc, 4)
			m.Path, m.PathStart, m.PathEnd = trimmed(line, loc, 5)
		}
		if m.Name == "" || m.Path == "" {
			continue
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func group(line string, loc []int, n int) string {
	s, _, _ := trimmed(line, loc, n)
	return s
}

// trimmed returns submatch n with surrounding whitespace removed, and the
// span of the trimmed text in line.
func trimmed(line string, loc []int, n int) (string, int, int) {
	start, end := loc[2*n], loc[2*n+1]
	if start < 0 {
		return "", start, end
	}
	raw := line[start:end]
	rest := strings.TrimLeftFunc(raw, unicode.IsSpace)
	start += len(raw) - len(rest)
	s := strings.TrimRightFunc(rest, unicode.IsSpace)
	return s, start, start + len(s)
}

// Slug converts a display name into the canonical asset slug: lower-cased,
// spaces replaced by hyphens, periods removed, and prefixed with
// "<tag>_" when tag is not empty. Distinct names may collide.
func Slug(name, tag string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, ".", "")
	if tag != "" {
		s = strings.ToLower(tag) + "_" + s
	}
	return s
}

// AssetID returns the identifier substituted into the post for name.
func AssetID(name, tag string) string {
	return AssetScheme + Slug(name, tag)
}

// remoteSchemes lists targets that are never copied.
var remoteSchemes = []string{"http://", "https://", "data:", "mailto:", AssetScheme}

// IsLocal reports whether path refers to a file on disk rather than a URL or
// an already rewritten asset.
func IsLocal(path string) bool {
	lower := strings.ToLower(path)
	for _, s := range remoteSchemes {
		if strings.HasPrefix(lower, s) {
			return false
		}
	}
	return true
}
