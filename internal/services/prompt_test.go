package services

import (
	"strings"
	"testing"
)

func TestQuestionTypeLabels(t *testing.T) {
	tests := []struct {
		name             string
		mcq, short, long bool
		want             string
	}{
		{"all", true, true, true, "MCQ, short answer, long answer"},
		{"mcq only", true, false, false, "MCQ"},
		{"short and long", false, true, true, "short answer, long answer"},
		{"none", false, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(questionTypeLabels(tt.mcq, tt.short, tt.long), ", ")
			if got != tt.want {
				t.Errorf("questionTypeLabels() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQuestionPromptPluralization(t *testing.T) {
	single := BuildQuestionPrompt("some text", 1, []string{"MCQ"})
	if !strings.Contains(single, "generate 1 MCQ question ") {
		t.Errorf("singular prompt wrong: %q", single)
	}
	if strings.Contains(single, "1 MCQ questions") {
		t.Errorf("singular prompt should not pluralize: %q", single)
	}

	plural := BuildQuestionPrompt("some text", 5, []string{"MCQ", "short answer"})
	if !strings.Contains(plural, "generate 5 MCQ, short answer questions ") {
		t.Errorf("plural prompt wrong: %q", plural)
	}
	if !strings.Contains(plural, "Text:\nsome text") {
		t.Errorf("source text missing: %q", plural)
	}
}

func TestBuildSyllabusAnswerPrompt(t *testing.T) {
	p := BuildSyllabusAnswerPrompt("Unit 1: Automata", "What is a DFA?")
	for _, want := range []string{
		"Information not found in syllabus.",
		"Syllabus content:\nUnit 1: Automata",
		"User question: What is a DFA?",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestDetectQuestionCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"colon form", "Time: 3hrs  No. of Questions: 10", 10},
		{"dash form", "no of questions - 7", 7},
		{"no dot", "No of Questions 12", 12},
		{"absent", "Answer all questions", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectQuestionCount(tt.text); got != tt.want {
				t.Errorf("DetectQuestionCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestBuildPaperExtractionPrompt(t *testing.T) {
	withCount := BuildPaperExtractionPrompt("Exam paper. No. of Questions: 8\n1. First")
	if !strings.Contains(withCount, "The paper states there are 8 questions.") {
		t.Errorf("count hint missing:\n%s", withCount)
	}
	if !strings.Contains(withCount, `{"questions": ["..."]}`) {
		t.Errorf("JSON contract missing:\n%s", withCount)
	}

	without := BuildPaperExtractionPrompt("1. First question")
	if strings.Contains(without, "The paper states") {
		t.Errorf("unexpected count hint:\n%s", without)
	}
}

func TestBuildMockSectionPrompt(t *testing.T) {
	p := BuildMockSectionPrompt("syllabus body", 4, 10)
	if !strings.Contains(p, "generate 4 exam questions, each worth 10 marks") {
		t.Errorf("mock section prompt wrong: %q", p)
	}
}
