package services

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
)

// ocrImage recognizes a decoded image. The image is optionally
// pre-processed (grayscale + contrast stretch) to lift OCR yield on
// low-contrast scans, then handed to the tesseract CLI as a PNG.
func (s *FileExtractService) ocrImage(img image.Image) (string, error) {
	if s.enhance {
		img = enhanceForOCR(img, s.contrast)
	}

	tmpDir, err := os.MkdirTemp("", "qpg-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	imgPath := filepath.Join(tmpDir, "page.png")
	f, err := os.Create(imgPath)
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode temp image: %w", err)
	}
	f.Close()

	return s.runTesseract(imgPath)
}

// runTesseract invokes the tesseract binary on an image file and
// captures recognized text from stdout.
func (s *FileExtractService) runTesseract(imagePath string) (string, error) {
	cmd := exec.Command(s.tesseractBin, imagePath, "stdout", "-l", "eng", "--psm", "3")
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return out.String(), nil
}

// enhanceForOCR converts the image to grayscale and stretches contrast
// around the midpoint by a fixed factor.
func enhanceForOCR(img image.Image, factor float64) *image.Gray {
	if factor <= 0 {
		factor = 1.0
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			v := (float64(g.Y)-128)*factor + 128
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			gray.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return gray
}
