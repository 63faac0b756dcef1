package report

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a user whose manager_id points at the requesting manager.
type TeamMember struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// CheckinRow is one session of the target day joined with its client name.
type CheckinRow struct {
	ID                 uuid.UUID
	EmployeeID         uuid.UUID
	ClientID           uuid.UUID
	ClientName         string
	Status             string
	DistanceFromClient float64
	Notes              *string
	CheckinTime        time.Time
	CheckoutTime       *time.Time
}
