package extractors

import (
	"strings"
	"testing"
)

const contactHeader = `Jane Doe
Senior Software Engineer
jane.doe@acme.io | +1 415-555-0134
https://linkedin.com/in/janedoe
https://github.com/janedoe
`

func TestExtractBasicInfo_ContactBlock(t *testing.T) {
	info := ExtractBasicInfo(contactHeader, nil)

	if info.Name != "Jane Doe" {
		t.Errorf("expected name Jane Doe, got %q", info.Name)
	}
	if len(info.Emails) != 1 || info.Emails[0] != "jane.doe@acme.io" {
		t.Errorf("unexpected emails %v", info.Emails)
	}
	if len(info.Phones) == 0 {
		t.Error("expected a phone number")
	}
	if info.LinkedIn != "https://linkedin.com/in/janedoe" {
		t.Errorf("unexpected linkedin %q", info.LinkedIn)
	}
	if info.GitHub != "https://github.com/janedoe" {
		t.Errorf("unexpected github %q", info.GitHub)
	}
}

func TestExtractBasicInfo_FiltersPlaceholderEmails(t *testing.T) {
	text := "Contact: user@example.com or x@x.com or test@foo.org or real.person@corp.net"
	info := ExtractBasicInfo(text, nil)
	if len(info.Emails) != 1 || info.Emails[0] != "real.person@corp.net" {
		t.Errorf("expected only the real address, got %v", info.Emails)
	}
}

func TestExtractBasicInfo_PhoneDigitBounds(t *testing.T) {
	// 6 digits is too short to be a phone number.
	info := ExtractBasicInfo("ref 123-456", nil)
	if len(info.Phones) != 0 {
		t.Errorf("expected no phones for short digit runs, got %v", info.Phones)
	}

	info = ExtractBasicInfo("call +92 300 1234567", nil)
	if len(info.Phones) == 0 {
		t.Error("expected a valid international number to be kept")
	}
}

func TestExtractBasicInfo_MergesExtraURLs(t *testing.T) {
	text := "Visit https://janedoe.dev for more."
	extra := []string{"https://github.com/janedoe", "https://janedoe.dev"}
	info := ExtractBasicInfo(text, extra)

	if len(info.URLs) != 2 {
		t.Fatalf("expected deduplicated URLs, got %v", info.URLs)
	}
	if info.URLs[0] != "https://janedoe.dev" {
		t.Errorf("expected text URLs first, got %v", info.URLs)
	}
	if info.GitHub != "https://github.com/janedoe" {
		t.Errorf("expected github from extra URLs, got %q", info.GitHub)
	}
}

func TestExtractName_SkipsContactAndKeywordLines(t *testing.T) {
	text := strings.Join([]string{
		"jane.doe@acme.io",
		"+1 415 555 0134",
		"Professional Resume",
		"Jane Alexandra Doe",
	}, "\n")
	if got := ExtractName(text); got != "Jane Alexandra Doe" {
		t.Errorf("expected name line, got %q", got)
	}
}

func TestExtractName_RequiresMostlyCapitalizedWords(t *testing.T) {
	text := "driven and curious engineer\nJane Doe"
	if got := ExtractName(text); got != "Jane Doe" {
		t.Errorf("expected capitalized line, got %q", got)
	}
}

func TestExtractName_FallsBackToFirstLine(t *testing.T) {
	text := "jane.doe@acme.io\n12345 Elm Street"
	if got := ExtractName(text); got != "jane.doe@acme.io" {
		t.Errorf("expected first line fallback, got %q", got)
	}
}

func TestExtractName_EmptyInput(t *testing.T) {
	if got := ExtractName("   \n  "); got != "" {
		t.Errorf("expected empty name, got %q", got)
	}
}
