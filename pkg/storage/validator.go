package storage

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Résumé uploads are restricted to PDF. Validation layers:
// 1. Extension whitelist
// 2. Magic byte verification (content matches extension)
// 3. Declared MIME type must be application/pdf
// 4. Size limit
//
// All checks run at the delivery boundary, before any service logic.

const PDFMimeType = "application/pdf"

// %PDF
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

// FileValidationResult contains the result of résumé file validation
type FileValidationResult struct {
	Valid     bool   // Whether the file passed all validation checks
	Extension string // Detected file extension
	Error     string // Error message if validation failed
}

// ValidateResume checks that the uploaded file is an acceptable PDF
func ValidateResume(filename string, data []byte, declaredMIME string, maxSize int64) FileValidationResult {
	result := FileValidationResult{}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if ext != ".pdf" {
		result.Error = "only PDF files are allowed"
		return result
	}

	if declaredMIME != PDFMimeType {
		result.Error = "only PDF files are allowed"
		return result
	}

	if len(data) < len(pdfMagic) || !bytes.HasPrefix(data, pdfMagic) {
		result.Error = "file content does not match extension (potential file spoofing detected)"
		return result
	}

	if maxSize > 0 && int64(len(data)) > maxSize {
		result.Error = "file exceeds the maximum allowed size"
		return result
	}

	result.Valid = true
	return result
}
