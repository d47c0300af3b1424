package domain

import (
	"time"
)

// Note belongs to exactly one tenant. TenantID and UserID are set at
// creation time and never reassigned; the tenant partition is the only
// visibility boundary.
type Note struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID    string    `gorm:"type:uuid;not null" json:"user_id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (Note) TableName() string {
	return "notes"
}
