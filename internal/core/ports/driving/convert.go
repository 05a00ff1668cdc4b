package driving

import "context"

// Converter runs one full conversion of a document source into the
// deduplicated, key-sorted output.
type Converter interface {
	// Convert processes every document, aggregates the extracted
	// records, and writes the output files. Per-document failures are
	// collected in the report, not returned as the error; the error is
	// reserved for conditions that prevent the run entirely (empty
	// source, unwritable output).
	Convert(ctx context.Context, req ConvertRequest) (*ConvertReport, error)
}

// ConvertRequest carries the switches for one conversion run. The core
// never reads configuration ambiently; the driver resolves defaults and
// passes everything in.
type ConvertRequest struct {
	// OutputPath is the destination for the line-delimited output.
	OutputPath string

	// Beautify additionally writes an indented copy next to the
	// output, with a ".pretty.json" suffix.
	Beautify bool

	// IncludeCustomFields extracts custom attributes into the records
	// and their rendered text.
	IncludeCustomFields bool

	// IncludeRawItem keeps the verbatim source node on each record.
	IncludeRawItem bool

	// FailFast stops scanning after the first document failure.
	FailFast bool

	// SkipCatalog leaves the converted records out of the catalog
	// store even when one is configured.
	SkipCatalog bool
}

// ConvertReport summarises a conversion run.
type ConvertReport struct {
	// FilesRead is the number of documents scanned.
	FilesRead int

	// IssuesWritten is the number of deduplicated records written.
	IssuesWritten int

	// OutputPath is the line-delimited output location.
	OutputPath string

	// PrettyPath is the indented copy location, empty unless Beautify
	// was set.
	PrettyPath string

	// Failures lists the documents that could not be processed.
	Failures []DocumentFailure
}

// DocumentFailure records one document-level parse failure.
type DocumentFailure struct {
	// File is the document's name.
	File string

	// Cause is the human-readable failure cause.
	Cause string
}

// Failed returns true if any document could not be processed.
func (r *ConvertReport) Failed() bool {
	return len(r.Failures) > 0
}
