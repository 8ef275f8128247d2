package models

// GenerateQuestionsRequest asks for questions generated from free text.
type GenerateQuestionsRequest struct {
	Text         string `json:"text"`
	NumQuestions int    `json:"numQuestions"`
	MCQ          bool   `json:"mcq"`
	ShortAnswer  bool   `json:"shortAnswer"`
	LongAnswer   bool   `json:"longAnswer"`
}

// GenerateByChapterRequest asks for questions generated from one chapter
// of a previously uploaded syllabus. SyllabusID is optional; empty means
// the most recent upload.
type GenerateByChapterRequest struct {
	Chapter      string `json:"chapter"`
	SyllabusID   string `json:"syllabusId,omitempty"`
	NumQuestions int    `json:"numQuestions"`
	MCQ          bool   `json:"mcq"`
	ShortAnswer  bool   `json:"shortAnswer"`
	LongAnswer   bool   `json:"longAnswer"`
}

// AnswerRequest asks for an answer to a single question.
type AnswerRequest struct {
	Question string `json:"question"`
}

// SyllabusAnswerRequest asks for an answer grounded in the uploaded
// syllabus text.
type SyllabusAnswerRequest struct {
	Question   string `json:"question"`
	SyllabusID string `json:"syllabusId,omitempty"`
}

// ExportPDFRequest carries the finalized question list for PDF export.
type ExportPDFRequest struct {
	Questions []ExportQuestion `json:"questions"`
}

// MockTestRequest is one (count, marks) pair of a mock test.
type MockTestRequest struct {
	NumQuestions int `json:"numQuestions"`
	Marks        int `json:"marks"`
}

// ExportMockTestRequest asks for a generated, sectioned mock test paper.
type ExportMockTestRequest struct {
	MocktestRequests []MockTestRequest `json:"mocktestRequests"`
	SyllabusID       string            `json:"syllabusId,omitempty"`
}

// APIError is the error body returned by every failing endpoint.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// ErrorResponse wraps an APIError.
type ErrorResponse struct {
	Error APIError `json:"error"`
}
