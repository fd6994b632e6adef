package util

import (
	"regexp"
	"strings"
)

// PatternMatch wraps either unix glob-style matching ('*' zero-or-more,
// '?' any-one) or an anchored regular expression, with optional
// case-insensitivity. It mirrors OpenSTA's PatternMatch: glob patterns are
// translated to an anchored regexp once, at construction time, rather than
// walked character-by-character per call.
type PatternMatch struct {
	pattern  string
	isRegexp bool
	nocase   bool
	re       *regexp.Regexp
}

// NewPatternMatch compiles pattern. If isRegexp is false, pattern is unix
// glob syntax; if true, pattern is a regular expression that OpenSTA always
// anchors at both ends.
func NewPatternMatch(pattern string, isRegexp, nocase bool) (*PatternMatch, error) {
	src := "^(?:" + pattern + ")$"
	if !isRegexp {
		src = globToRegexp(pattern)
	}
	if nocase {
		src = "(?i)" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, &RegexpCompileError{Pattern: pattern}
	}
	return &PatternMatch{pattern: pattern, isRegexp: isRegexp, nocase: nocase, re: re}, nil
}

// RegexpCompileError is returned when a caller-supplied regexp pattern fails
// to compile.
type RegexpCompileError struct {
	Pattern string
}

func (e *RegexpCompileError) Error() string {
	return "invalid pattern: " + e.Pattern
}

// Pattern returns the original, uncompiled pattern text.
func (p *PatternMatch) Pattern() string { return p.pattern }

// IsRegexp reports whether Pattern is a regular expression rather than glob.
func (p *PatternMatch) IsRegexp() bool { return p.isRegexp }

// Nocase reports whether matching ignores case.
func (p *PatternMatch) Nocase() bool { return p.nocase }

// Match reports whether str satisfies the pattern.
func (p *PatternMatch) Match(str string) bool {
	return p.re.MatchString(str)
}

// HasWildcards reports whether the original glob pattern contains '*' or '?'.
// Meaningless (always false) for regexp patterns, mirroring OpenSTA.
func (p *PatternMatch) HasWildcards() bool {
	return !p.isRegexp && PatternWildcards(p.pattern)
}

// PatternMatchGlob is the one-shot convenience form: '*' matches zero or
// more characters, '?' matches exactly one.
func PatternMatchGlob(pattern, str string) bool {
	re := regexp.MustCompile(globToRegexp(pattern))
	return re.MatchString(str)
}

// PatternMatchGlobNoCase is PatternMatchGlob with optional case folding.
func PatternMatchGlobNoCase(pattern, str string, nocase bool) bool {
	src := globToRegexp(pattern)
	if nocase {
		src = "(?i)" + src
	}
	return regexp.MustCompile(src).MatchString(str)
}

// PatternWildcards reports whether pattern contains a glob metacharacter.
func PatternWildcards(pattern string) bool {
	return strings.ContainsAny(pattern, "*?")
}

// globToRegexp translates unix glob syntax into an anchored RE2 pattern.
func globToRegexp(pattern string) string {
	var b strings.Builder
	b.WriteByte('^')
	for _, ch := range pattern {
		switch ch {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	b.WriteByte('$')
	return b.String()
}
