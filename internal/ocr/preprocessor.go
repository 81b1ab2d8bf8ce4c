package ocr

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// Preprocessor enhances menu photos before OCR. Cabin lighting is uneven and
// menus are often photographed at an angle, so contrast and sharpening help
// tesseract considerably.
type Preprocessor struct{}

// NewPreprocessor creates a new image preprocessor
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// ImageMagickAvailable reports whether either ImageMagick entry point exists.
func ImageMagickAvailable() bool {
	if _, err := exec.LookPath("magick"); err == nil {
		return true
	}
	_, err := exec.LookPath("convert")
	return err == nil
}

// PreprocessImage applies the enhancement pipeline: resize, grayscale,
// auto-contrast, denoise, sharpen. On any failure the original bytes are
// returned — a raw photo still OCRs, just worse.
func (p *Preprocessor) PreprocessImage(imageData []byte) ([]byte, error) {
	if !ImageMagickAvailable() {
		return imageData, nil
	}

	tmpDir := os.TempDir()
	inputFile := filepath.Join(tmpDir, fmt.Sprintf("menu_in_%d.jpg", os.Getpid()))
	outputFile := filepath.Join(tmpDir, fmt.Sprintf("menu_out_%d.jpg", os.Getpid()))

	if err := os.WriteFile(inputFile, imageData, 0644); err != nil {
		return imageData, nil
	}
	defer os.Remove(inputFile)
	defer os.Remove(outputFile)

	args := []string{
		inputFile,
		"-resize", "2000x2000>",
		"-colorspace", "Gray",
		"-normalize",
		"-contrast-stretch", "2%x1%",
		"-despeckle",
		"-sharpen", "0x1",
		"-unsharp", "0x0.5+0.5+0",
		"-quality", "95",
		outputFile,
	}

	// 'magick' is ImageMagick 7, 'convert' the v6 entry point
	var cmd *exec.Cmd
	if _, err := exec.LookPath("magick"); err == nil {
		cmd = exec.Command("magick", args...)
	} else {
		cmd = exec.Command("convert", args...)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Printf("[Preprocessor] ImageMagick failed: %v - %s", err, stderr.String())
		return imageData, nil
	}

	processed, err := os.ReadFile(outputFile)
	if err != nil {
		return imageData, nil
	}

	return processed, nil
}
