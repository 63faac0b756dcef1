package checkin

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
)

func (s Status) Valid() bool {
	return s == StatusCheckedIn || s == StatusCheckedOut
}

func (s *Status) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Status", value)
	}
	if !Status(raw).Valid() {
		return fmt.Errorf("unknown checkin status %q", raw)
	}
	*s = Status(raw)
	return nil
}

func (s Status) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid checkin status %q", string(s))
	}
	return string(s), nil
}

type Checkin struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientID           uuid.UUID  `gorm:"type:uuid;not null"`
	Latitude           float64    `gorm:"type:double precision;not null"`
	Longitude          float64    `gorm:"type:double precision;not null"`
	DistanceFromClient float64    `gorm:"column:distance_from_client;type:double precision;not null"`
	Notes              *string    `gorm:"type:text"`
	Status             Status     `gorm:"type:varchar(20);not null"`
	CheckinTime        time.Time  `gorm:"not null"`
	CheckoutTime       *time.Time
}

func (Checkin) TableName() string {
	return "checkins"
}

// Checkout closes an active session. The checkout time never precedes the check-in time.
func (c *Checkin) Checkout(now time.Time) error {
	if c.Status != StatusCheckedIn {
		return fmt.Errorf("checkin %s is %s, not %s", c.ID, c.Status, StatusCheckedIn)
	}
	if now.Before(c.CheckinTime) {
		now = c.CheckinTime
	}
	c.Status = StatusCheckedOut
	c.CheckoutTime = &now
	return nil
}

// CheckinWithClient is a session joined with the client it was recorded against.
type CheckinWithClient struct {
	Checkin
	ClientName    string
	ClientAddress string
}
