package knowledge

import "errors"

var (
	ErrSearchFailed = errors.New("exemplar search failed")
	ErrNotFound     = errors.New("exemplar not found")
	ErrDuplicate    = errors.New("exemplar already exists")
)
