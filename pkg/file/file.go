package file

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
)

// sniffLen is the most http.DetectContentType looks at.
const sniffLen = 512

// GetMIMEType detects the MIME type from the first bytes of the file.
func GetMIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return http.DetectContentType(buf[:n]), nil
}

// ValidateSize rejects headers that declare more than maxBytes.
// Streamed parts may report 0; ReadLimited enforces the limit on the bytes.
func ValidateSize(fh *multipart.FileHeader, maxBytes int64) error {
	if fh == nil {
		return ErrNilFileHeader
	}
	if fh.Size > maxBytes {
		return fmt.Errorf("file size %d bytes exceeds %d bytes limit: %w", fh.Size, maxBytes, ErrFileTooLarge)
	}
	return nil
}

// ValidateMIMEType checks the sniffed type against allowed. No types allows all.
func ValidateMIMEType(fh *multipart.FileHeader, allowed ...string) error {
	if fh == nil {
		return ErrNilFileHeader
	}
	if len(allowed) == 0 {
		return nil
	}
	mime, err := GetMIMEType(fh)
	if err != nil {
		return err
	}
	if slices.Contains(allowed, mime) {
		return nil
	}
	return fmt.Errorf("MIME type %s not in allowed types %v: %w", mime, allowed, ErrMIMETypeNotAllowed)
}

// ReadLimited reads the whole file, failing with ErrFileTooLarge once more
// than maxBytes arrive.
func ReadLimited(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if err := ValidateSize(fh, maxBytes); err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("file exceeds %d bytes limit: %w", maxBytes, ErrFileTooLarge)
	}
	return data, nil
}
