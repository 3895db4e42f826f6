// Package document defines the canonical résumé model: an ordered list of
// typed sections, each holding ordered items, plus document-wide theme
// metadata. Documents are values. Every edit operation returns a new Document
// and leaves the receiver untouched, so callers can keep snapshots for
// undo/redo and render the same snapshot from several goroutines.
//
// Items decoded from JSON or YAML accept the loosely-typed shapes produced by
// older editors (title vs position, company vs subtitle, string vs bullet
// descriptions). Decoding maps those synonyms onto canonical fields; the
// normalize package then cross-populates them so renderers never branch on
// field names.
package document
