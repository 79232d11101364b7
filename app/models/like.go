package models

import (
	"time"

	"github.com/google/uuid"
)

// Validate checks if the like meets all validation requirements
func (l *Like) Validate() error {
	return validate.Struct(l)
}

// BeforeCreate sets up any necessary fields before creation
func (l *Like) BeforeCreate() {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
}
