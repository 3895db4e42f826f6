// Package engine wires the document normalizer, the template catalog, the
// renderer registry and the theme resolver into a single render pipeline.
package engine
