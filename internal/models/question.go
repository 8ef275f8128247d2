package models

import (
	"encoding/json"
	"strings"
)

// Marks is a question's mark value as supplied by the client. The
// frontend sends it as a number, a string, or null depending on which
// form produced the question, so it unmarshals from any of the three.
type Marks string

func (m *Marks) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*m = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*m = Marks(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = Marks(n.String())
	return nil
}

func (m Marks) String() string { return string(m) }

// ExportQuestion is one entry of a finalized question list submitted
// for PDF export. The renderer never re-derives any of these fields.
type ExportQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Marks    Marks  `json:"marks,omitempty"`
}

// MockTestSection is one marks group of a mock test paper, ready for
// rendering: a lettered section with its questions numbered from 1.
type MockTestSection struct {
	Letter    string
	Marks     int
	Questions []string
}
