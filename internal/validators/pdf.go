package validators

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	MaxDocumentSize = 10 * 1024 * 1024 // 10MB
	PDFMimeType     = "application/pdf"
)

// ValidatePDFUpload rejects anything that is not a real PDF: size cap,
// .pdf extension, and the %PDF magic at the start of the content. The
// magic check is what makes the rule hold server-side instead of trusting
// the browser's Content-Type.
func ValidatePDFUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxDocumentSize {
		return fmt.Errorf("file size exceeds maximum allowed size of 10MB")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".pdf" {
		return fmt.Errorf("only PDF files are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file content: %w", err)
	}

	if n < 4 || string(buffer[0:4]) != "%PDF" {
		return fmt.Errorf("file is not a valid PDF")
	}

	return nil
}
