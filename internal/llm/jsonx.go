package llm

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON recovers the JSON payload from a model reply: a fenced code
// block (with or without a language tag) wins, else the span from the first
// '{' to the last '}', else the trimmed reply as-is.
func ExtractJSON(reply string) string {
	reply = strings.TrimSpace(reply)
	if m := fenceRe.FindStringSubmatch(reply); m != nil {
		return m[1]
	}
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start != -1 && end > start {
		return reply[start : end+1]
	}
	return reply
}
