package render

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// YAMLFilename returns the download name for an encoded document, derived
// from the CV holder's name with spaces flattened to underscores.
func YAMLFilename(name string) string {
	return downloadName(name) + ".yaml"
}

// PDFFilename returns the download name for a rendered PDF.
func PDFFilename(name string) string {
	return downloadName(name) + ".pdf"
}

func downloadName(name string) string {
	return strings.ReplaceAll(name, " ", "_") + "_CV"
}

// SavePDF writes pdf bytes to filename, generating a timestamped name in the
// working directory when filename is empty. Returns the path written.
func SavePDF(pdf []byte, filename string) (string, error) {
	if filename == "" {
		filename = defaultPDFName(time.Now())
	}
	if err := os.WriteFile(filename, pdf, 0o644); err != nil {
		return "", fmt.Errorf("render: save pdf: %w", err)
	}
	return filename, nil
}

func defaultPDFName(now time.Time) string {
	return "cv_" + now.Format("20060102_150405") + ".pdf"
}
