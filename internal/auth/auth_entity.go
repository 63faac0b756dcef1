package auth

import (
	"time"

	"go-fieldtrack/internal/domain"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string      `gorm:"type:varchar(255);not null"`
	Email     string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string      `gorm:"type:varchar(255);not null"`
	Role      domain.Role `gorm:"type:varchar(20);not null"`
	ManagerID *uuid.UUID  `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
