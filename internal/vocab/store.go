// Package vocab holds the canonical vocabularies and the extraction context
// shared by every extractor call.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store holds the canonical skill vocabulary. It is loaded once during
// context construction and read-only afterwards.
type Store struct {
	skills []string
}

// NewStore builds a store from an in-memory skill list. Callers that load
// from disk should use Bootstrap instead.
func NewStore(skills []string) *Store {
	return &Store{skills: skills}
}

// Bootstrap loads the skills vocabulary from path. If the file does not
// exist, the default list is written first. This is the only path that
// mutates the vocabulary file.
func Bootstrap(path string) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := seedDefaults(path); err != nil {
			return nil, err
		}
	}
	return load(path)
}

func seedDefaults(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create vocab dir: %w", err)
		}
	}
	data := strings.Join(defaultSkills, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("seed vocab file: %w", err)
	}
	return nil
}

func load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocab file: %w", err)
	}
	defer f.Close()

	var skills []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		skills = append(skills, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocab file: %w", err)
	}
	return &Store{skills: skills}, nil
}

// Skills returns the canonical skill list in file order.
func (s *Store) Skills() []string {
	return s.skills
}
