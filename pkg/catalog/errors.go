package catalog

import "errors"

var (
	// ErrDuplicateTemplate is returned when a descriptor id is already present.
	ErrDuplicateTemplate = errors.New("catalog: duplicate template id")
	// ErrInvalidDescriptor wraps descriptor validation failures.
	ErrInvalidDescriptor = errors.New("catalog: invalid descriptor")
	// ErrEmptyCatalog is returned when a catalog file holds no descriptors.
	ErrEmptyCatalog = errors.New("catalog: no templates defined")
)
