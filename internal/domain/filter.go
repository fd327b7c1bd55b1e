package domain

import (
	"strings"

	"github.com/gobwas/glob"

	m "github.com/mouse-blink/blocks/internal/model"
)

// ShouldRun decides whether a block named name carrying tags passes filter.
// Name patterns use glob syntax and match case-insensitively. A block must
// carry at least one of the required tags and none of the excluded ones.
func ShouldRun(name string, tags []string, filter m.Filter) bool {
	if len(filter.Names) > 0 && !matchesAnyName(name, filter.Names) {
		return false
	}

	if len(filter.Tags) > 0 && !intersects(tags, filter.Tags) {
		return false
	}

	if len(filter.ExcludeTags) > 0 && intersects(tags, filter.ExcludeTags) {
		return false
	}

	return true
}

func matchesAnyName(name string, patterns []string) bool {
	lower := strings.ToLower(name)

	for _, pattern := range patterns {
		if compileName(pattern).Match(lower) {
			return true
		}
	}

	return false
}

// compileName compiles pattern without separators so '*' spans any character.
// A malformed pattern is matched literally.
func compileName(pattern string) glob.Glob {
	lower := strings.ToLower(pattern)

	g, err := glob.Compile(lower)
	if err != nil {
		return glob.MustCompile(glob.QuoteMeta(lower))
	}

	return g
}

func intersects(tags, wanted []string) bool {
	for _, tag := range tags {
		for _, w := range wanted {
			if strings.EqualFold(tag, w) {
				return true
			}
		}
	}

	return false
}
