// Package file inspects multipart uploads before they are decoded: size
// limits, content-sniffed MIME types and bounded reads.
//
//	if err := file.ValidateMIMEType(fh, "image/png", "image/jpeg"); err != nil {
//		return err
//	}
//	data, err := file.ReadLimited(fh, 2<<20)
//
// MIME types come from the file content, never from the client-supplied
// name or Content-Type header.
package file
