package ocr

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// charWhitelist restricts recognition to the characters that actually occur
// on printed flight menus: both alphabets, digits and light punctuation.
// Cuts down on symbol hallucinations from textured backgrounds.
const charWhitelist = "ABCÇDEFGĞHIİJKLMNOÖPQRSŞTUÜVWXYZabcçdefgğhıijklmnoöpqrsştuüvwxyz0123456789 .-"

// TesseractOCR shells out to the tesseract CLI. Avoids the CGO binding so the
// service builds anywhere; the binary is checked at startup via Available.
type TesseractOCR struct {
	language string
}

// NewTesseractOCR creates an OCR engine for the given language pack string,
// e.g. "tur+eng". Empty defaults to both menu languages.
func NewTesseractOCR(language string) *TesseractOCR {
	if language == "" {
		language = "tur+eng"
	}
	return &TesseractOCR{
		language: language,
	}
}

// Available reports whether the tesseract binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("tesseract")
	return err == nil
}

// ExtractText runs tesseract over preprocessed image bytes and returns the
// recognized text. Page segmentation mode 6 (uniform text block) works best
// for the column layout of menu cards.
func (t *TesseractOCR) ExtractText(imageBytes []byte) (string, error) {
	tmpDir := os.TempDir()
	inputFile := filepath.Join(tmpDir, fmt.Sprintf("menu_ocr_%d.jpg", os.Getpid()))
	if err := os.WriteFile(inputFile, imageBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write OCR input: %w", err)
	}
	defer os.Remove(inputFile)

	args := []string{
		inputFile,
		"stdout",
		"-l", t.language,
		"--psm", "6",
		"-c", "tessedit_char_whitelist=" + charWhitelist,
	}

	cmd := exec.Command("tesseract", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract failed: %w - %s", err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}
