package dashboard

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// CheckinRow is a session joined with its client and, for team views, its employee.
type CheckinRow struct {
	ID                 uuid.UUID
	EmployeeID         uuid.UUID
	EmployeeName       string
	ClientID           uuid.UUID
	ClientName         string
	Status             string
	DistanceFromClient float64
	Notes              *string
	CheckinTime        time.Time
	CheckoutTime       *time.Time
}

type WeekStats struct {
	TotalCheckins int64 `json:"total_checkins"`
	UniqueClients int64 `json:"unique_clients"`
}
