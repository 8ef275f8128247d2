package services

import (
	"fmt"
	"regexp"
	"strings"
)

// Human-readable labels for the question type toggles, joined into the
// prompt in a fixed order.
func questionTypeLabels(mcq, short, long bool) []string {
	var types []string
	if mcq {
		types = append(types, "MCQ")
	}
	if short {
		types = append(types, "short answer")
	}
	if long {
		types = append(types, "long answer")
	}
	return types
}

func pluralize(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// BuildQuestionPrompt asks for n questions of the given types over
// free-form source text. Output contract: one question per line, no
// numbering.
func BuildQuestionPrompt(text string, n int, types []string) string {
	system := fmt.Sprintf(
		"You are a question paper generator. Based on the following text, "+
			"generate %d %s question%s relevant to it. "+
			"Return only the questions, one per line, without numbering.",
		n, strings.Join(types, ", "), pluralize(n))
	return fmt.Sprintf("%s\n\nText:\n%s", system, text)
}

// BuildChapterPrompt is the chapter-scoped variant: the text is a
// syllabus section rather than arbitrary prose.
func BuildChapterPrompt(chapterContent string, n int, types []string) string {
	system := fmt.Sprintf(
		"You are an expert question generator. Based on the following syllabus section, "+
			"generate %d %s question%s relevant to it. "+
			"Return only the questions, one per line, without numbering.",
		n, strings.Join(types, ", "), pluralize(n))
	return fmt.Sprintf("%s\n\n%s", system, chapterContent)
}

// BuildAnswerPrompt asks for a standalone answer with no grounding
// material.
func BuildAnswerPrompt(question string) string {
	return fmt.Sprintf(
		"You are an expert tutor. Provide a clear, concise answer to the following question."+
			"\n\nQuestion: %s", question)
}

// BuildSyllabusAnswerPrompt grounds the answer in uploaded syllabus
// text and instructs the model to admit absence rather than invent.
func BuildSyllabusAnswerPrompt(syllabusText, question string) string {
	system := "You are an expert academic assistant. Using the provided syllabus content, " +
		"answer the user's question clearly, concisely, and accurately. " +
		"If no relevant information is found, say 'Information not found in syllabus.'"
	return fmt.Sprintf("%s\n\nSyllabus content:\n%s\n\nUser question: %s",
		system, syllabusText, question)
}

// questionCountPattern detects a stated question count on a scanned
// paper, e.g. "No. of Questions: 10".
var questionCountPattern = regexp.MustCompile(`(?i)No\.?\s*of\s*Questions\s*[:\-]?\s*(\d+)`)

// DetectQuestionCount returns the total stated on the paper, or 0 when
// the paper doesn't state one.
func DetectQuestionCount(rawText string) int {
	m := questionCountPattern.FindStringSubmatch(rawText)
	if m == nil {
		return 0
	}
	var n int
	fmt.Sscanf(m[1], "%d", &n)
	return n
}

// BuildPaperExtractionPrompt asks the model to lift every question out
// of a raw exam paper into a JSON object. When the paper states its own
// question count, that count is passed along as a hint.
func BuildPaperExtractionPrompt(rawText string) string {
	countHint := ""
	if total := DetectQuestionCount(rawText); total > 0 {
		countHint = fmt.Sprintf(" The paper states there are %d questions.", total)
	}
	system := `You are an assistant that receives the full text of an exam paper (including headings, instructions, passages, and questions).
Your task is to return a JSON object: {"questions": ["..."]}
Where:
- Each item in the "questions" array is a full question or sub-question, in order.
- Include ALL types of questions.
- Remove all numbering or lettering ("1.", "(a)", etc.) from each question text.
- DO NOT include general instructions or answers.` + countHint + `
Return ONLY a valid JSON object.`
	return fmt.Sprintf("%s\n\n%s", system, rawText)
}

// BuildMockSectionPrompt asks for questions each worth a fixed number
// of marks, for one section of a mock test.
func BuildMockSectionPrompt(syllabusText string, n, marks int) string {
	system := fmt.Sprintf(
		"You are a question paper generator. Based on the following syllabus, "+
			"generate %d exam question%s, each worth %d marks. "+
			"Return only the questions, one per line, without numbering.",
		n, pluralize(n), marks)
	return fmt.Sprintf("%s\n\nSyllabus:\n%s", system, syllabusText)
}
