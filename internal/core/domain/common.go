package domain

import "time"

// DateFormat is the wire and storage format for calendar dates (ISO YYYY-MM-DD).
const DateFormat = "2006-01-02"

// AuditFields holds standard audit timestamps embedded in persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
