package services

import (
	"image"
	"image/color"
	"testing"
)

func TestNormalizeExtractedText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses blank runs",
			in:   "line one\n\n\n\nline two",
			want: "line one\n\nline two",
		},
		{
			name: "trims line edges",
			in:   "  padded  \n\tindented\t",
			want: "padded\nindented",
		},
		{
			name: "windows line endings",
			in:   "a\r\nb\rc",
			want: "a\nb\nc",
		},
		{
			name: "empty",
			in:   "   \n\n  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeExtractedText(tt.in); got != tt.want {
				t.Errorf("normalizeExtractedText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnhanceForOCR(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(0, 0, color.Gray{Y: 100})
	src.SetGray(1, 0, color.Gray{Y: 200})

	out := enhanceForOCR(src, 1.5)

	// Contrast stretches values away from the midpoint.
	if got := out.GrayAt(0, 0).Y; got >= 100 {
		t.Errorf("dark pixel = %d, want darker than 100", got)
	}
	if got := out.GrayAt(1, 0).Y; got <= 200 {
		t.Errorf("bright pixel = %d, want brighter than 200", got)
	}
}

func TestEnhanceForOCRClamps(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 255})

	out := enhanceForOCR(src, 3.0)
	if got := out.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("black pixel = %d, want 0", got)
	}
	if got := out.GrayAt(1, 0).Y; got != 255 {
		t.Errorf("white pixel = %d, want 255", got)
	}
}

func TestExtractTextUnknownKind(t *testing.T) {
	svc := NewFileExtractService("tesseract", 300, false, 1.0)
	if got := svc.ExtractText("/nonexistent", "spreadsheet"); got != "" {
		t.Errorf("unknown kind should yield empty text, got %q", got)
	}
}

func TestNewFileExtractServiceDefaults(t *testing.T) {
	svc := NewFileExtractService("", 0, true, 1.5)
	if svc.tesseractBin != "tesseract" {
		t.Errorf("tesseractBin = %q", svc.tesseractBin)
	}
	if svc.dpi != 300 {
		t.Errorf("dpi = %d", svc.dpi)
	}
}
