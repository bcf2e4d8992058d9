package dto

// CategoryRule is a pre-supplied decision for non-interactive ingestion: any
// candidate whose business contains BusinessContains (case-insensitive) gets
// the given category and change type.
type CategoryRule struct {
	BusinessContains string `json:"businessContains" binding:"required"`
	Category         string `json:"category" binding:"required"`
	ChangeType       string `json:"changeType" binding:"required,changetype"`
}

// IngestRequest carries the non-file form parameters of an HTTP ingest call.
// The rule table travels as a JSON array in the "rules" form field.
type IngestRequest struct {
	Institute string `form:"institute" binding:"required"`
}

// IngestSummary reports the outcome of one batch ingestion. Duplicates are
// the expected steady-state outcome of re-ingesting an overlapping file, so
// they are a count here, never an error.
type IngestSummary struct {
	Parsed     int `json:"parsed"`
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
}
