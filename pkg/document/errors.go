package document

import "errors"

var (
	// ErrSectionNotFound is returned when an edit names an unknown section id.
	ErrSectionNotFound = errors.New("document: section not found")
	// ErrItemNotFound is returned when an edit names an unknown item id.
	ErrItemNotFound = errors.New("document: item not found")
	// ErrDuplicateID is returned when an added section or item reuses an id.
	ErrDuplicateID = errors.New("document: duplicate id")
	// ErrIndexOutOfRange is returned by move operations with a bad target.
	ErrIndexOutOfRange = errors.New("document: index out of range")
	// ErrInvalidOrder is returned when a reorder list is not a permutation of
	// the current section ids.
	ErrInvalidOrder = errors.New("document: invalid section order")
)
