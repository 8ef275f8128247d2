package services

import (
	"context"
	"sort"
	"strings"

	"qpg-backend/internal/llm"
	"qpg-backend/internal/models"
)

// Token budgets per operation. Answers and chapter generation stay
// small; paper extraction has to emit every question verbatim, so it
// gets a much larger budget.
const (
	chapterGenTokens      = 300
	answerTokens          = 300
	syllabusAnswerTokens  = 400
	paperExtractionTokens = 1500
)

// GeneratorService runs every model-backed operation: question
// generation, answering, paper extraction, and mock test assembly. All
// prompting goes through a single Provider, so swapping backends never
// touches this layer.
type GeneratorService struct {
	provider           llm.Provider
	syllabi            *SyllabusStore
	maxTokens          int
	temperature        float64
	filterInstructions bool
}

func NewGeneratorService(provider llm.Provider, syllabi *SyllabusStore, maxTokens int, temperature float64, filterInstructions bool) *GeneratorService {
	if maxTokens <= 0 {
		maxTokens = 400
	}
	return &GeneratorService{
		provider:           provider,
		syllabi:            syllabi,
		maxTokens:          maxTokens,
		temperature:        temperature,
		filterInstructions: filterInstructions,
	}
}

func (s *GeneratorService) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", &UpstreamError{Message: "question generation failed", Err: err}
	}
	return resp, nil
}

// GenerateQuestions produces up to req.NumQuestions questions from free
// text. Validation happens before any model call.
func (s *GeneratorService) GenerateQuestions(ctx context.Context, req models.GenerateQuestionsRequest) ([]string, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, &ValidationError{Message: "No text provided."}
	}
	types := questionTypeLabels(req.MCQ, req.ShortAnswer, req.LongAnswer)
	if len(types) == 0 {
		return nil, &ValidationError{Message: "Select at least one question type."}
	}
	if req.NumQuestions <= 0 {
		return nil, &ValidationError{Message: "numQuestions must be at least 1."}
	}

	resp, err := s.generate(ctx, BuildQuestionPrompt(text, req.NumQuestions, types), s.maxTokens)
	if err != nil {
		return nil, err
	}
	return s.finishQuestions(resp, req.NumQuestions), nil
}

// GenerateChapterQuestions locates the chapter in the stored syllabus
// and generates questions from that section only. Returns the questions
// and the id of the syllabus actually used.
func (s *GeneratorService) GenerateChapterQuestions(ctx context.Context, req models.GenerateByChapterRequest) ([]string, string, error) {
	chapter := strings.TrimSpace(req.Chapter)
	if chapter == "" {
		return nil, "", &ValidationError{Message: "Chapter is required."}
	}
	types := questionTypeLabels(req.MCQ, req.ShortAnswer, req.LongAnswer)
	if len(types) == 0 {
		return nil, "", &ValidationError{Message: "Select at least one question type."}
	}
	if req.NumQuestions <= 0 {
		return nil, "", &ValidationError{Message: "numQuestions must be at least 1."}
	}

	syllabusText, id, err := s.syllabi.Resolve(req.SyllabusID)
	if err != nil {
		return nil, "", err
	}
	content, err := LocateChapter(syllabusText, chapter)
	if err != nil {
		return nil, "", err
	}

	resp, err := s.generate(ctx, BuildChapterPrompt(content, req.NumQuestions, types), chapterGenTokens)
	if err != nil {
		return nil, "", err
	}
	return s.finishQuestions(resp, req.NumQuestions), id, nil
}

// AnswerQuestion answers a single question with no grounding material.
func (s *GeneratorService) AnswerQuestion(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", &ValidationError{Message: "Question is required."}
	}
	return s.generate(ctx, BuildAnswerPrompt(question), answerTokens)
}

// AnswerFromSyllabus answers a question grounded in the stored syllabus
// text.
func (s *GeneratorService) AnswerFromSyllabus(ctx context.Context, question, syllabusID string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", &ValidationError{Message: "Question is required."}
	}
	syllabusText, _, err := s.syllabi.Resolve(syllabusID)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, BuildSyllabusAnswerPrompt(syllabusText, question), syllabusAnswerTokens)
}

// ExtractPaperQuestions lifts every question out of raw exam paper
// text. Model output is parsed as JSON; when the model misbehaves, the
// normalizer segments the raw text directly.
func (s *GeneratorService) ExtractPaperQuestions(ctx context.Context, rawText string) ([]string, error) {
	resp, err := s.generate(ctx, BuildPaperExtractionPrompt(rawText), paperExtractionTokens)
	if err != nil {
		return nil, err
	}

	questions := NormalizeJSON(resp, rawText)
	if s.filterInstructions {
		questions = FilterInstructionLines(questions)
	}
	if len(questions) == 0 {
		return nil, &ExtractionError{Message: "No questions could be extracted from the paper."}
	}
	return questions, nil
}

// GenerateMockTest builds a sectioned mock test from the stored
// syllabus. Requests with the same marks value merge into one section;
// sections come back in ascending marks order, lettered from A.
func (s *GeneratorService) GenerateMockTest(ctx context.Context, reqs []models.MockTestRequest, syllabusID string) ([]models.MockTestSection, string, error) {
	if len(reqs) == 0 {
		return nil, "", &ValidationError{Message: "At least one section is required."}
	}

	countByMarks := map[int]int{}
	for _, r := range reqs {
		if r.NumQuestions <= 0 || r.Marks <= 0 {
			return nil, "", &ValidationError{Message: "numQuestions and marks must be at least 1."}
		}
		countByMarks[r.Marks] += r.NumQuestions
	}

	syllabusText, id, err := s.syllabi.Resolve(syllabusID)
	if err != nil {
		return nil, "", err
	}

	marksOrder := make([]int, 0, len(countByMarks))
	for m := range countByMarks {
		marksOrder = append(marksOrder, m)
	}
	sort.Ints(marksOrder)

	var sections []models.MockTestSection
	for i, marks := range marksOrder {
		n := countByMarks[marks]
		resp, err := s.generate(ctx, BuildMockSectionPrompt(syllabusText, n, marks), s.maxTokens)
		if err != nil {
			return nil, "", err
		}
		sections = append(sections, models.MockTestSection{
			Letter:    string(rune('A' + i)),
			Marks:     marks,
			Questions: s.finishQuestions(resp, n),
		})
	}
	return sections, id, nil
}

// finishQuestions normalizes raw model output into a question list and
// trims it to the requested count.
func (s *GeneratorService) finishQuestions(raw string, n int) []string {
	questions := NormalizeLines(raw)
	if s.filterInstructions {
		questions = FilterInstructionLines(questions)
	}
	if len(questions) > n {
		questions = questions[:n]
	}
	return questions
}
