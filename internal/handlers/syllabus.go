package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"qpg-backend/internal/services"
)

const maxUploadBytes = 25 * 1024 * 1024 // 25MB

// SyllabusHandler accepts document uploads: syllabi (extracted and
// stored for later generation) and question papers (extracted and
// mined for their questions).
type SyllabusHandler struct {
	extractor *services.FileExtractService
	syllabi   *services.SyllabusStore
	generator *services.GeneratorService
}

func NewSyllabusHandler(extractor *services.FileExtractService, syllabi *services.SyllabusStore, generator *services.GeneratorService) *SyllabusHandler {
	return &SyllabusHandler{
		extractor: extractor,
		syllabi:   syllabi,
		generator: generator,
	}
}

// receiveUpload validates the multipart upload and spools it to a temp
// file. The caller removes the file.
func receiveUpload(w http.ResponseWriter, r *http.Request) (path, kind string, ok bool) {
	if r.ContentLength > maxUploadBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("FILE_TOO_LARGE", "File size exceeds 25MB limit", r))
		return "", "", false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No file provided", r))
		return "", "", false
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".pdf":
		kind = services.KindPDF
	case ".jpg", ".jpeg":
		kind = services.KindImage
	default:
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unsupported file type. Only PDF, JPG or JPEG allowed.", r))
		return "", "", false
	}

	tmp, err := os.CreateTemp("", "qpg-upload-*"+ext)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store upload", r))
		return "", "", false
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store upload", r))
		return "", "", false
	}
	tmp.Close()

	return tmp.Name(), kind, true
}

// UploadSyllabus extracts the document's text and stores it as the
// current syllabus.
func (h *SyllabusHandler) UploadSyllabus(w http.ResponseWriter, r *http.Request) {
	path, kind, ok := receiveUpload(w, r)
	if !ok {
		return
	}
	defer os.Remove(path)

	text := h.extractor.ExtractText(path, kind)
	if text == "" {
		handleServiceError(w, r, &services.ExtractionError{Message: "Could not extract any text from file."})
		return
	}

	id, err := h.syllabi.Save(text)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"text":       text,
		"syllabusId": id,
	})
}

// UploadQuestionPaper extracts the document's text and returns the
// individual questions found on the paper.
func (h *SyllabusHandler) UploadQuestionPaper(w http.ResponseWriter, r *http.Request) {
	path, kind, ok := receiveUpload(w, r)
	if !ok {
		return
	}
	defer os.Remove(path)

	text := h.extractor.ExtractText(path, kind)
	if text == "" {
		handleServiceError(w, r, &services.ExtractionError{Message: "Could not extract any text from file."})
		return
	}

	questions, err := h.generator.ExtractPaperQuestions(r.Context(), text)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
	})
}
