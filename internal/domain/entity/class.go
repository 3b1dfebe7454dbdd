package entity

import (
	"time"

	"github.com/google/uuid"
)

// Class is a named class owned by exactly one teacher.
type Class struct {
	ID        uuid.UUID `json:"id"`
	ClassName string    `json:"class_name"` // Globally unique.
	TeacherID uuid.UUID `json:"teacher_id"` // A teacher owns at most one class.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
