package model

import "time"

// JobModel mirrors the 'jobs' table.
type JobModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	UserID        int64  `gorm:"not null;index"`
	CompanyName   string `gorm:"type:varchar(255);not null"`
	RoleName      string `gorm:"type:varchar(255);not null"`
	Status        string `gorm:"type:varchar(32);not null"`
	OriginalURL   string `gorm:"type:text"`
	JobDetailJSON string `gorm:"column:job_detail_json;type:jsonb"`
	Screenshot    string `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}
