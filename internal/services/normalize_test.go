package services

import (
	"reflect"
	"testing"
)

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "numbered list",
			raw:  "1. What is TCP?\n2. Define routing.\n3. Explain DNS.",
			want: []string{"What is TCP?", "Define routing.", "Explain DNS."},
		},
		{
			name: "mixed enumerators and blanks",
			raw:  "Q1: First question\n\n2) Second question\n\n\n12 - Third question",
			want: []string{"First question", "Second question", "Third question"},
		},
		{
			name: "word starting with Q survives",
			raw:  "Quantum computing basics",
			want: []string{"Quantum computing basics"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "only whitespace",
			raw:  "   \n\t\n  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLines(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeLines() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeJSON(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		source string
		want   []string
	}{
		{
			name: "questions object",
			raw:  `{"questions": ["What is TCP?", "Define DNS."]}`,
			want: []string{"What is TCP?", "Define DNS."},
		},
		{
			name: "bare array",
			raw:  `["One", "Two"]`,
			want: []string{"One", "Two"},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"questions\": [\"Fenced question\"]}\n```",
			want: []string{"Fenced question"},
		},
		{
			name:   "invalid json falls back to segmentation",
			raw:    "not json at all",
			source: "Instructions here. 1. First question text 2. Second question text",
			want:   []string{"1. First question text", "2. Second question text"},
		},
		{
			name:   "empty questions falls back",
			raw:    `{"questions": []}`,
			source: "(a) Sub question one (b) Sub question two",
			want:   []string{"(a) Sub question one", "(b) Sub question two"},
		},
		{
			name:   "fallback with no markers yields nothing",
			raw:    "garbage",
			source: "plain prose without any enumerators",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeJSON(tt.raw, tt.source)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  ```json\n[1]\n```  ", "[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilterInstructionLines(t *testing.T) {
	in := []string{
		"Attempt all questions carefully",
		"What is a finite automaton?",
		"Each question carries 5 marks each",
		"Explain the time limit of TCP retransmission",
		"Define regular language",
	}
	want := []string{
		"What is a finite automaton?",
		"Define regular language",
	}

	got := FilterInstructionLines(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterInstructionLines() = %v, want %v", got, want)
	}
}
