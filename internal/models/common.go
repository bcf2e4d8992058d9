package models

import "time"

// AuditFields holds common timestamp columns embedded in persisted models.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
