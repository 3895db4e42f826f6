package render

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound matches every *TemplateNotFoundError via errors.Is.
	ErrTemplateNotFound = errors.New("render: template not found")
	// ErrDuplicateRenderer is returned when a template id is registered twice.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)

// TemplateNotFoundError reports a template id with no registered renderer.
// Callers are expected to surface it rather than substitute another layout.
type TemplateNotFoundError struct {
	TemplateID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("render: no renderer registered for template %q", e.TemplateID)
}

// Is makes errors.Is(err, ErrTemplateNotFound) hold.
func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}
