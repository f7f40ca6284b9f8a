// Package regex provides line filtering for the nextline commands.
// Literal patterns skip the regexp engine and match via plain substring
// search, which is the common case when grepping logs.
package regex

import (
	"regexp"
	"strings"
)

// Flag alters how a pattern matches.
type Flag int

const (
	// Default matches lines containing the pattern.
	Default Flag = iota
	// Invert matches lines not containing the pattern.
	Invert
	// Noop matches every line.
	Noop
)

// Regex for filtering lines.
type Regex struct {
	regexStr string
	re       *regexp.Regexp
	flag     Flag
	// Literal patterns use substring matching instead of the regexp engine.
	isLiteral  bool
	literalStr string
}

// isLiteralPattern checks if the pattern contains no regex metacharacters.
func isLiteralPattern(pattern string) bool {
	return !strings.ContainsAny(pattern, `.+*?^$[]{}()|\`)
}

// NewNoop is a noop regex (matching everything).
func NewNoop() Regex {
	return Regex{flag: Noop}
}

// New returns a new regex object.
func New(regexStr string, flag Flag) (Regex, error) {
	if regexStr == "" || regexStr == "." || regexStr == ".*" {
		return NewNoop(), nil
	}

	r := Regex{regexStr: regexStr, flag: flag}
	if isLiteralPattern(regexStr) {
		r.isLiteral = true
		r.literalStr = regexStr
		return r, nil
	}

	re, err := regexp.Compile(regexStr)
	if err != nil {
		return Regex{}, err
	}
	r.re = re
	return r, nil
}

// MatchString matches one line.
func (r Regex) MatchString(str string) bool {
	switch r.flag {
	case Noop:
		return true
	case Invert:
		return !r.contains(str)
	default:
		return r.contains(str)
	}
}

func (r Regex) contains(str string) bool {
	if r.isLiteral {
		return strings.Contains(str, r.literalStr)
	}
	return r.re.MatchString(str)
}

// IsLiteral returns true if this regex is using literal string matching.
func (r Regex) IsLiteral() bool {
	return r.isLiteral
}

// Pattern returns the original pattern string.
func (r Regex) Pattern() string {
	return r.regexStr
}
