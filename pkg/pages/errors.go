package pages

import "errors"

var (
	ErrFailedToParseYAML = errors.New("pages: failed to parse page table")
	ErrInvalidPage       = errors.New("pages: invalid page definition")
	ErrDuplicateSlug     = errors.New("pages: duplicate slug")
)
