package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"qpg-backend/internal/models"
	"qpg-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", e.Message, r))
	case *services.NotFoundError:
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", e.Message, r))
	case *services.ExtractionError:
		writeJSON(w, http.StatusInternalServerError, errorResp("EXTRACTION_FAILED", e.Message, r))
	case *services.UpstreamError:
		log.Printf("upstream error: %v", e)
		writeJSON(w, http.StatusBadGateway, errorResp("UPSTREAM_ERROR", e.Message, r))
	default:
		log.Printf("unexpected error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
