package domain

import (
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID     string    `gorm:"type:uuid;not null" json:"tenant_id"`
	Email        string    `gorm:"type:text;not null;unique" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	Role         Role      `gorm:"type:text;not null;default:'MEMBER'" json:"role"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant       *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Identity is the authoritative caller context resolved for a single request.
// It is re-fetched from the store on every request rather than trusted from
// token claims, so role and plan changes take effect before token expiry.
// It must never be cached across requests.
type Identity struct {
	User   *User
	Tenant *Tenant
}
