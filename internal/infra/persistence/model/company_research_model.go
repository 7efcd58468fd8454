package model

import "time"

// CompanyResearchModel mirrors the 'company_research' table.
// The unique index on job_id is what makes research idempotent under
// concurrency: a second insert for the same job fails at the database.
type CompanyResearchModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	JobID         int64  `gorm:"not null;uniqueIndex"`
	ResultPayload string `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyResearchModel) TableName() string {
	return "company_research"
}
