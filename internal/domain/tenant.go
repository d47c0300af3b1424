package domain

import (
	"slices"
	"time"
)

// SubscriptionPlan determines how many notes a tenant may hold.
type SubscriptionPlan string

const (
	// PlanFree caps the tenant at FreePlanNoteLimit notes
	PlanFree SubscriptionPlan = "FREE"

	// PlanPro removes the note cap entirely
	PlanPro SubscriptionPlan = "PRO"
)

// FreePlanNoteLimit is the maximum number of notes a FREE tenant may hold.
const FreePlanNoteLimit = 3

// ValidPlans contains all valid subscription plans
var ValidPlans = []SubscriptionPlan{PlanFree, PlanPro}

// IsValidPlan checks if a given plan is valid
func IsValidPlan(plan string) bool {
	return slices.Contains(ValidPlans, SubscriptionPlan(plan))
}

// Tenant is the ownership partition for users and notes. Slug is the
// human-facing identifier used in routes and never changes. Plan only
// ever moves FREE -> PRO; there is no downgrade path.
type Tenant struct {
	ID        string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Slug      string           `gorm:"type:text;not null;unique" json:"slug"`
	Name      string           `gorm:"type:text;not null" json:"name"`
	Plan      SubscriptionPlan `gorm:"column:subscription_plan;type:text;not null;default:'FREE'" json:"subscription_plan"`
	CreatedAt time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
