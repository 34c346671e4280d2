// Package effects validates declared effect annotations against the fixed
// six-name vocabulary. Effects are documentary: they are checked at compile
// time and never enforced at runtime.
package effects

import "strings"

// Vocabulary is the closed set of effect names, in canonical order. It is
// part of the compile contract and must not be mutated.
var Vocabulary = []string{
	"Database",
	"Network",
	"Logging",
	"FileSystem",
	"Memory",
	"IO",
}

var known = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Vocabulary))
	for _, name := range Vocabulary {
		m[name] = struct{}{}
	}
	return m
}()

// UnknownEffectError reports the first effect name outside the vocabulary.
type UnknownEffectError struct {
	Name string
}

func (e *UnknownEffectError) Error() string {
	return "unknown effect '" + e.Name + "' (valid effects: " + strings.Join(Vocabulary, ", ") + ")"
}

// IsValid reports whether a single name belongs to the vocabulary.
func IsValid(name string) bool {
	_, ok := known[name]
	return ok
}

// Validate checks every name against the vocabulary and fails on the first
// unknown one. A nil or empty list is valid.
func Validate(names []string) error {
	for _, name := range names {
		if !IsValid(name) {
			return &UnknownEffectError{Name: name}
		}
	}
	return nil
}
