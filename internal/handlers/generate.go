package handlers

import (
	"encoding/json"
	"net/http"

	"qpg-backend/internal/models"
	"qpg-backend/internal/services"
)

// GenerateHandler serves question generation and answering.
type GenerateHandler struct {
	generator *services.GeneratorService
}

func NewGenerateHandler(generator *services.GeneratorService) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

// GenerateQuestions produces questions from free text supplied in the
// request body.
func (h *GenerateHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	questions, err := h.generator.GenerateQuestions(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
	})
}

// GenerateByChapter produces questions scoped to one chapter of the
// stored syllabus.
func (h *GenerateHandler) GenerateByChapter(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateByChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	questions, syllabusID, err := h.generator.GenerateChapterQuestions(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chapter":    req.Chapter,
		"questions":  questions,
		"syllabusId": syllabusID,
	})
}

// GenerateAnswer answers a single question without grounding.
func (h *GenerateHandler) GenerateAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	answer, err := h.generator.AnswerQuestion(r.Context(), req.Question)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"answer": answer,
	})
}

// AnswerFromSyllabus answers a question using the stored syllabus as
// grounding material.
func (h *GenerateHandler) AnswerFromSyllabus(w http.ResponseWriter, r *http.Request) {
	var req models.SyllabusAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	answer, err := h.generator.AnswerFromSyllabus(r.Context(), req.Question, req.SyllabusID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"question": req.Question,
		"answer":   answer,
	})
}
