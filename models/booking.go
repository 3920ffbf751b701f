package models

import "time"

// Booking status values. Pending is the sole initial state; completed and
// cancelled are terminal by convention only — no transition is guarded.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// IsValidStatus reports whether s is one of the persistable booking statuses.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}

// Booking sources.
const (
	SourceApp  = "app"
	SourceChat = "chat"
)

// Booking represents a single service engagement. A booking references a
// package XOR (a service AND a professional). Bookings escalated from the
// triage chat carry a service category name instead of catalog references.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	AreaID         int64     `bson:"area_id,omitempty" json:"area_id,omitempty"`
	PackageID      *int64    `bson:"package_id,omitempty" json:"package_id,omitempty"`
	ServiceID      *int64    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	ProfessionalID *int64    `bson:"professional_id,omitempty" json:"professional_id,omitempty"`
	ServiceName    string    `bson:"service_name,omitempty" json:"service_name,omitempty"`
	Source         string    `bson:"source,omitempty" json:"source,omitempty"`
	ScheduledAt    time.Time `bson:"scheduled_at,omitempty" json:"scheduled_at,omitempty"`
	TotalPrice     float64   `bson:"total_price" json:"total_price"`
	Details        string    `bson:"details,omitempty" json:"details,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// BookingCreate is the candidate payload for creating a booking.
type BookingCreate struct {
	UserID         string    `json:"user_id" binding:"required"`
	AreaID         int64     `json:"area_id"`
	PackageID      *int64    `json:"package_id"`
	ServiceID      *int64    `json:"service_id"`
	ProfessionalID *int64    `json:"professional_id"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	TotalPrice     float64   `json:"total_price" binding:"gte=0"`
	Details        string    `json:"details"`
}

// BookingUpdate is a partial update: non-nil fields overwrite, nil fields are
// left untouched.
type BookingUpdate struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status"`
	TotalPrice  *float64   `json:"total_price" binding:"omitempty,gte=0"`
	Details     *string    `json:"details"`
}
