package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// SyllabusStore keeps extracted syllabus texts as content-addressed
// flat files: the SHA-256 of the text names the file, so re-uploading
// the same document maps to the same id and concurrent uploads can
// never corrupt each other. A guarded pointer tracks the most recent
// upload for callers that don't thread an id through.
type SyllabusStore struct {
	mu        sync.RWMutex
	dir       string
	currentID string
}

func NewSyllabusStore(dir string) (*SyllabusStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create syllabus dir: %w", err)
	}
	return &SyllabusStore{dir: dir}, nil
}

// Save writes the text under its content hash and marks it current.
func (s *SyllabusStore) Save(text string) (string, error) {
	sum := sha256.Sum256([]byte(text))
	id := hex.EncodeToString(sum[:])

	path := filepath.Join(s.dir, id+".txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write syllabus: %w", err)
	}

	s.mu.Lock()
	s.currentID = id
	s.mu.Unlock()

	return id, nil
}

// Get returns the text stored under id.
func (s *SyllabusStore) Get(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, "/\\.") {
		return "", &NotFoundError{Message: "No syllabus uploaded."}
	}
	data, err := os.ReadFile(filepath.Join(s.dir, id+".txt"))
	if err != nil {
		return "", &NotFoundError{Message: "No syllabus uploaded."}
	}
	return string(data), nil
}

// Resolve returns the text for id, or for the most recent upload when
// id is empty. No upload at all is NotFound.
func (s *SyllabusStore) Resolve(id string) (string, string, error) {
	if id == "" {
		s.mu.RLock()
		id = s.currentID
		s.mu.RUnlock()
	}
	text, err := s.Get(id)
	if err != nil {
		return "", "", err
	}
	return text, id, nil
}

// unitHeadingPattern matches "unit" headings like "Unit 3", "UNIT-12",
// or "unit  4", word-bounded on the number.
var unitHeadingPattern = regexp.MustCompile(`(?i)unit[\s-]*\d+\b`)

// LocateChapter returns the trimmed slice of syllabusText belonging to
// the named chapter: from the chapter name's first case-insensitive
// occurrence up to the next unit heading, or to the end of the text.
// Only headings strictly after the chapter's own start terminate the
// slice, so a chapter named "Unit 3" does not end at itself.
func LocateChapter(syllabusText, chapterName string) (string, error) {
	lower := strings.ToLower(syllabusText)
	start := strings.Index(lower, strings.ToLower(chapterName))
	if start == -1 {
		return "", &NotFoundError{Message: "Chapter not found in syllabus."}
	}

	end := len(syllabusText)
	for _, loc := range unitHeadingPattern.FindAllStringIndex(syllabusText, -1) {
		if loc[0] > start {
			end = loc[0]
			break
		}
	}

	return strings.TrimSpace(syllabusText[start:end]), nil
}
