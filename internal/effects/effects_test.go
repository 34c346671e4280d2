package effects

import (
	"strings"
	"testing"
)

func TestVocabularyOrder(t *testing.T) {
	want := []string{"Database", "Network", "Logging", "FileSystem", "Memory", "IO"}

	if len(Vocabulary) != len(want) {
		t.Fatalf("expected %d effects, got %d", len(want), len(Vocabulary))
	}
	for i, name := range want {
		if Vocabulary[i] != name {
			t.Errorf("Vocabulary[%d] = %q, expected %q", i, Vocabulary[i], name)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, name := range Vocabulary {
		if !IsValid(name) {
			t.Errorf("IsValid(%q) = false, expected true", name)
		}
	}

	invalid := []string{"Disk", "database", "NETWORK", "", "Io"}
	for _, name := range invalid {
		if IsValid(name) {
			t.Errorf("IsValid(%q) = true, expected false", name)
		}
	}
}

func TestValidate_NamesBadEntryAndValidSet(t *testing.T) {
	err := Validate([]string{"Database", "Disk"})
	if err == nil {
		t.Fatalf("expected an error for unknown effect")
	}

	msg := err.Error()
	if !strings.Contains(msg, "'Disk'") {
		t.Errorf("error should name the bad entry, got %q", msg)
	}
	for _, name := range Vocabulary {
		if !strings.Contains(msg, name) {
			t.Errorf("error should list valid effect %q, got %q", name, msg)
		}
	}
}

func TestValidate_AcceptsKnown(t *testing.T) {
	if err := Validate([]string{"Memory", "IO"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyListIsValid(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
