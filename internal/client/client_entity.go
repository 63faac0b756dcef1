package client

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text"`
	Latitude  *float64  `gorm:"type:double precision"`
	Longitude *float64  `gorm:"type:double precision"`
	CreatedAt time.Time
}

func (Client) TableName() string {
	return "clients"
}

// Assignment is one row of employee_clients; its existence authorizes check-ins.
type Assignment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_client"`
	ClientID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_client"`
	AssignedDate time.Time `gorm:"type:date;not null"`
}

func (Assignment) TableName() string {
	return "employee_clients"
}

// AssignedClient is a client joined with the assignment that links it to an employee.
type AssignedClient struct {
	Client
	AssignedDate time.Time
}

// HasCoordinates reports whether both registered coordinates are set.
func (c Client) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}
