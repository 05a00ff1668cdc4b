package domain

// ExportDocument identifies one input document supplied by a source.
type ExportDocument struct {
	// Name is the document's base name, recorded on every issue it
	// produces as provenance.
	Name string

	// Path is the location the source reads it from.
	Path string
}
