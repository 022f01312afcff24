package feedscan

// Extractor extracts job records from a single feed document.
// Implementations hide the schema-guessing heuristics: which tag demarcates
// a posting and which tags carry each semantic field.
type Extractor interface {
	// Extract parses one document and returns the job records found in it.
	// sourceFile identifies the originating document and is recorded on
	// every returned job. A document that fails to parse returns an error
	// with code EUNPROCESSABLE and no records.
	Extract(data []byte, sourceFile string) ([]*Job, error)
}
