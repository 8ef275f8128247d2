package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"qpg-backend/internal/models"
	"qpg-backend/internal/services"
)

// ExportHandler renders question lists and mock tests to downloadable
// PDFs.
type ExportHandler struct {
	renderer  *services.PDFExportService
	generator *services.GeneratorService
}

func NewExportHandler(renderer *services.PDFExportService, generator *services.GeneratorService) *ExportHandler {
	return &ExportHandler{renderer: renderer, generator: generator}
}

func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ExportPDF renders the submitted question list exactly as given.
func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	var req models.ExportPDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	data, err := h.renderer.RenderQuestionPaper(req.Questions)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writePDF(w, "generated_questions.pdf", data)
}

// ExportMockTest generates a sectioned mock test from the stored
// syllabus and renders it in one step.
func (h *ExportHandler) ExportMockTest(w http.ResponseWriter, r *http.Request) {
	var req models.ExportMockTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	sections, _, err := h.generator.GenerateMockTest(r.Context(), req.MocktestRequests, req.SyllabusID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	data, err := h.renderer.RenderMockTest(sections)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writePDF(w, "mock_test_paper.pdf", data)
}
