package git

import (
	"regexp"
	"strings"
)

// MessageMatcher applies the commit-message filters of a FilterConfig.
// Every pattern must match (case-insensitive) for a message to be selected.
type MessageMatcher struct {
	patterns []*regexp.Regexp
}

// NewMessageMatcher compiles the given patterns, skipping blank ones.
// Returns an error if any pattern fails to compile.
func NewMessageMatcher(patterns ...string) (*MessageMatcher, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "(?i)") {
			p = "(?i)" + p
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &MessageMatcher{patterns: compiled}, nil
}

// Match reports whether message satisfies all patterns.
// A matcher without patterns matches everything.
func (m *MessageMatcher) Match(message string) bool {
	for _, re := range m.patterns {
		if !re.MatchString(message) {
			return false
		}
	}
	return true
}

// Empty reports whether the matcher has no patterns.
func (m *MessageMatcher) Empty() bool {
	return len(m.patterns) == 0
}
