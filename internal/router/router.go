package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"qpg-backend/internal/handlers"
	"qpg-backend/internal/middleware"
)

func New(
	syllabusHandler *handlers.SyllabusHandler,
	generateHandler *handlers.GenerateHandler,
	exportHandler *handlers.ExportHandler,
	userHandler *handlers.UserHandler,
	paymentHandler *handlers.PaymentHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Payment rate limiter (10 req/min per IP)
	orderLimiter := middleware.NewRateLimiter(10, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})

		// ──── Document uploads ────
		r.Post("/upload-syllabus", syllabusHandler.UploadSyllabus)
		r.Post("/upload-question-paper", syllabusHandler.UploadQuestionPaper)

		// ──── Generation & answering ────
		r.Post("/nlp-generate-questions", generateHandler.GenerateQuestions)
		r.Post("/nlp-generate-questions-by-chapter", generateHandler.GenerateByChapter)
		r.Post("/generate-answer", generateHandler.GenerateAnswer)
		r.Post("/nlp-generate-answer-to-question", generateHandler.AnswerFromSyllabus)

		// ──── PDF export ────
		r.Post("/export-pdf", exportHandler.ExportPDF)
		r.Post("/export-mocktestpaper", exportHandler.ExportMockTest)

		// ──── Users & payments ────
		r.Post("/register-user", userHandler.Register)
		r.Group(func(r chi.Router) {
			r.Use(orderLimiter.Middleware)
			r.Post("/create-order", paymentHandler.CreateOrder)
		})
	})

	return r
}
