package services

import (
	"bytes"
	"image"
	"log"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"

	"qpg-backend/internal/worker"
)

// ocrWorkers bounds concurrent tesseract subprocesses per document.
const ocrWorkers = 4

// Document kinds accepted by the extractor.
const (
	KindPDF   = "pdf"
	KindImage = "image"
)

// FileExtractService turns uploaded documents into plain text. PDFs are
// read page by page for embedded text first; when a document has none
// (a scan), each page is rasterized and run through OCR instead. Images
// go straight to OCR.
type FileExtractService struct {
	tesseractBin string
	dpi          int
	enhance      bool
	contrast     float64
}

func NewFileExtractService(tesseractBin string, dpi int, enhance bool, contrast float64) *FileExtractService {
	if tesseractBin == "" {
		tesseractBin = "tesseract"
	}
	if dpi <= 0 {
		dpi = 300
	}
	return &FileExtractService{
		tesseractBin: tesseractBin,
		dpi:          dpi,
		enhance:      enhance,
		contrast:     contrast,
	}
}

// ExtractText returns the plain text of the document at path. It never
// fails: total failure yields an empty string, which the caller treats
// as an extraction error.
func (s *FileExtractService) ExtractText(path, kind string) string {
	switch kind {
	case KindPDF:
		text := extractNativePDF(path)
		if text != "" {
			return text
		}
		log.Printf("no native text in %s, falling back to OCR", path)
		return s.ocrPDF(path)
	case KindImage:
		return s.ocrImageFile(path)
	default:
		return ""
	}
}

// extractNativePDF concatenates the embedded text of every page.
// Returns "" when the document carries no text layer.
func extractNativePDF(path string) string {
	f, reader, err := pdf.Open(path)
	if err != nil {
		log.Printf("native PDF extract: %v", err)
		return ""
	}
	defer f.Close()

	var b strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	return normalizeExtractedText(b.String())
}

// ocrPDF rasterizes each page, then recognizes pages in parallel.
// Rasterization stays sequential; the document handle is not safe for
// concurrent use.
func (s *FileExtractService) ocrPDF(path string) string {
	doc, err := fitz.New(path)
	if err != nil {
		log.Printf("PDF OCR: open: %v", err)
		return ""
	}
	defer doc.Close()

	var pages []image.Image
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, float64(s.dpi))
		if err != nil {
			log.Printf("PDF OCR: rasterize page %d: %v", i+1, err)
			continue
		}
		pages = append(pages, img)
	}

	results := worker.Map(len(pages), ocrWorkers, func(i int) (string, error) {
		return s.ocrImage(pages[i])
	})

	var b strings.Builder
	for _, res := range results {
		if res.Err != nil {
			log.Printf("PDF OCR: page %d: %v", res.Index+1, res.Err)
			continue
		}
		b.WriteString(res.Value)
		b.WriteString("\n")
	}

	return normalizeExtractedText(b.String())
}

// ocrImageFile recognizes a standalone image file. When the image can't
// be decoded for pre-processing, tesseract gets the raw file instead.
func (s *FileExtractService) ocrImageFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("image OCR: %v", err)
		return ""
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		text, err := s.runTesseract(path)
		if err != nil {
			log.Printf("image OCR: %v", err)
			return ""
		}
		return normalizeExtractedText(text)
	}

	text, err := s.ocrImage(img)
	if err != nil {
		log.Printf("image OCR: %v", err)
		return ""
	}
	return normalizeExtractedText(text)
}

func normalizeExtractedText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	buf := bytes.Buffer{}

	emptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			emptyCount++
			if emptyCount > 1 {
				continue
			}
			buf.WriteString("\n")
			continue
		}
		emptyCount = 0
		buf.WriteString(trimmed)
		buf.WriteString("\n")
	}

	return strings.TrimSpace(buf.String())
}
