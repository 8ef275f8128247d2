package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

// enumeratorPattern strips a leading enumerator from a question line:
// an optional "Q", digits, trailing punctuation and whitespace, e.g.
// "1. ", "12) ", "Q3: ", "2 - ". A bare leading letter is left alone.
var enumeratorPattern = regexp.MustCompile(`^[Qq]?\d+\s*[.):-]*\s*`)

// NormalizeLines splits raw model output into discrete question
// strings: one per non-blank line, enumerators removed.
func NormalizeLines(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(enumeratorPattern.ReplaceAllString(line, ""))
		if line != "" {
			questions = append(questions, line)
		}
	}
	return questions
}

// NormalizeJSON parses model output expected to be a JSON object of
// shape {"questions": [string, ...]} (or a bare array), tolerating
// surrounding code fences. When parsing fails or yields nothing, it
// falls back to regex segmentation over the original source text —
// that fallback is the defined recovery path, not an error.
func NormalizeJSON(raw, sourceText string) []string {
	cleaned := stripCodeFence(raw)

	var obj struct {
		Questions []string `json:"questions"`
	}
	var items []string

	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil && obj.Questions != nil {
		items = obj.Questions
	} else if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		items = nil
	}

	var questions []string
	for _, q := range items {
		q = strings.TrimSpace(q)
		if q != "" {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return segmentQuestions(sourceText)
	}
	return questions
}

// stripCodeFence removes a surrounding ``` / ```json fence if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// questionMarkerPattern starts a question block in raw paper text:
// "12. " or "(a) ".
var questionMarkerPattern = regexp.MustCompile(`(?:\d+\.|\([a-z]\))\s+`)

// segmentQuestions carves raw document text into blocks, each starting
// at an enumerator marker and running until the next marker or the end
// of the text.
func segmentQuestions(text string) []string {
	locs := questionMarkerPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var questions []string
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		block := strings.TrimSpace(text[loc[0]:end])
		if block != "" {
			questions = append(questions, block)
		}
	}
	return questions
}

// instructionKeywords flag lines that look like exam instructions
// rather than questions. Heuristic, not a grammar; applied only when
// filtering is enabled in config.
var instructionKeywords = []string{
	"limit",
	"choose",
	"guidelines",
	"instruction",
	"attempt all",
	"marks each",
}

// FilterInstructionLines drops entries containing instruction-like
// keywords. Known to false-positive on legitimate questions that
// happen to contain those words.
func FilterInstructionLines(questions []string) []string {
	var kept []string
	for _, q := range questions {
		lower := strings.ToLower(q)
		drop := false
		for _, kw := range instructionKeywords {
			if strings.Contains(lower, kw) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, q)
		}
	}
	return kept
}
