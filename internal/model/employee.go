package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a staff member allowed to log into the admin panel.
type Employee struct {
	ID           uuid.UUID
	Code         string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

func (e *Employee) InitMeta() {
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()
}
