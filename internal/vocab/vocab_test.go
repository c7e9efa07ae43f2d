package vocab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBootstrap_SeedsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")

	store, err := Bootstrap(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected vocab file to be created: %v", err)
	}
	if !strings.Contains(string(data), "python") {
		t.Errorf("expected seeded defaults in file, got %q", data)
	}

	skills := store.Skills()
	if len(skills) != len(defaultSkills) {
		t.Errorf("expected %d skills, got %d", len(defaultSkills), len(skills))
	}
}

func TestBootstrap_LoadsExistingWithoutOverwriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	if err := os.WriteFile(path, []byte("golang\nrust\n\ngolang\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := Bootstrap(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	skills := store.Skills()
	if len(skills) != 2 {
		t.Fatalf("expected 2 unique skills, got %v", skills)
	}
	if skills[0] != "golang" || skills[1] != "rust" {
		t.Errorf("expected file order preserved, got %v", skills)
	}
}

func TestContext_MatcherBuiltOnce(t *testing.T) {
	ctx := NewContext(&Store{skills: []string{"python"}})
	m1 := ctx.Matcher()
	m2 := ctx.Matcher()
	if m1 != m2 {
		t.Error("expected the same matcher instance on repeated calls")
	}
}

func TestSkillMatcher_FindsPhrases(t *testing.T) {
	m := NewSkillMatcher([]string{"python", "machine learning", "node.js"})
	found := m.Match("Built ML pipelines with Python and node.js; strong machine learning background.")

	want := map[string]bool{"python": true, "machine learning": true, "node.js": true}
	if len(found) != len(want) {
		t.Fatalf("expected %d matches, got %v", len(want), found)
	}
	for _, f := range found {
		if !want[f] {
			t.Errorf("unexpected match %q", f)
		}
	}
}

func TestSkillMatcher_NoSubstringFalsePositives(t *testing.T) {
	m := NewSkillMatcher([]string{"java", "sql"})
	found := m.Match("Expert in JavaScript and MySQL administration.")
	if len(found) != 0 {
		t.Errorf("expected no matches inside larger words, got %v", found)
	}
}

func TestSkillMatcher_LongerPhraseClaimsRegion(t *testing.T) {
	m := NewSkillMatcher([]string{"learning", "machine learning"})
	found := m.Match("machine learning")
	if len(found) != 1 || found[0] != "machine learning" {
		t.Errorf("expected only the longer phrase, got %v", found)
	}
}

func TestSkillMatcher_DottedEntry(t *testing.T) {
	m := NewSkillMatcher([]string{"node.js"})
	if found := m.Match("Backend in Node.js since 2019."); len(found) != 1 {
		t.Errorf("expected node.js match, got %v", found)
	}
	// The dot must not act as a wildcard.
	if found := m.Match("nodeXjs"); len(found) != 0 {
		t.Errorf("expected no match for nodeXjs, got %v", found)
	}
}
