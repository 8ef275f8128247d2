package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"

	"qpg-backend/internal/models"
)

// optionPattern matches an MCQ option line: "A) ...", "b. ...", "3) ...".
var optionPattern = regexp.MustCompile(`^[A-Da-d1-4][.)]\s+`)

// PDFExportService renders finalized question lists and mock test
// papers to PDF bytes. It renders exactly what it is given; selection
// and ordering are the caller's job.
type PDFExportService struct{}

func NewPDFExportService() *PDFExportService {
	return &PDFExportService{}
}

func newPaperDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 18, 15)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	return pdf
}

func writeTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

// splitQuestion separates an MCQ's stem from its option lines. A
// question counts as MCQ when any line after the first looks like an
// option; otherwise the whole text is the stem and options is nil.
func splitQuestion(text string) (stem string, options []string) {
	lines := strings.Split(text, "\n")
	stem = strings.TrimSpace(lines[0])
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if optionPattern.MatchString(line) {
			options = append(options, line)
		} else if options == nil {
			// Continuation of the stem before any option appeared.
			stem += " " + line
		}
	}
	return stem, options
}

func writeQuestion(pdf *fpdf.Fpdf, number int, q models.ExportQuestion) {
	stem, options := splitQuestion(q.Question)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetX(15)
	line := fmt.Sprintf("%d. %s", number, stem)
	pdf.MultiCell(0, 6, line, "", "L", false)

	if marks := q.Marks.String(); marks != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetX(22)
		pdf.MultiCell(0, 5, fmt.Sprintf("(%s marks)", marks), "", "L", false)
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, opt := range options {
		pdf.SetX(25)
		pdf.MultiCell(0, 6, opt, "", "L", false)
	}
	pdf.Ln(2)
}

// RenderQuestionPaper renders a numbered question paper. Questions with
// answers get a trailing answer key section.
func (s *PDFExportService) RenderQuestionPaper(questions []models.ExportQuestion) ([]byte, error) {
	pdf := newPaperDoc()
	writeTitle(pdf, "Generated Question Paper")

	for i, q := range questions {
		writeQuestion(pdf, i+1, q)
	}

	wroteAnswerHeading := false
	for i, q := range questions {
		answer := strings.TrimSpace(q.Answer)
		if answer == "" {
			continue
		}
		if !wroteAnswerHeading {
			pdf.Ln(6)
			wroteAnswerHeading = true
		}

		pdf.SetFont("Helvetica", "BI", 11)
		pdf.SetX(15)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d. Answer:", i+1), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(51, 51, 51)
		for _, line := range strings.Split(answer, "\n") {
			pdf.SetX(22)
			pdf.MultiCell(0, 5, strings.TrimSpace(line), "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	return finishPDF(pdf)
}

// RenderMockTest renders a sectioned paper: one heading per marks
// group, question numbering restarting at 1 inside each section.
func (s *PDFExportService) RenderMockTest(sections []models.MockTestSection) ([]byte, error) {
	pdf := newPaperDoc()
	writeTitle(pdf, "Mock Test Paper")

	for _, sec := range sections {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetX(15)
		heading := fmt.Sprintf("Section %s (%d marks each)", sec.Letter, sec.Marks)
		pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
		pdf.Ln(1)

		for i, q := range sec.Questions {
			writeQuestion(pdf, i+1, models.ExportQuestion{Question: q})
		}
		pdf.Ln(4)
	}

	return finishPDF(pdf)
}

func finishPDF(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &UpstreamError{Message: "PDF rendering failed", Err: err}
	}
	return buf.Bytes(), nil
}
