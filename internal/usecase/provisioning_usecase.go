package usecase

import (
	"context"

	"schoolhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateTeacherInput defines the data required to create a teacher.
type CreateTeacherInput struct {
	FirstName            string
	LastName             string
	Email                string
	IdentificationNumber string
	PhoneNumber          string
}

// CreateStudentInput defines the data required to create a student in an existing class.
type CreateStudentInput struct {
	FirstName            string
	LastName             string
	Email                string
	IdentificationNumber string
	PhoneNumber          string
	ClassID              uuid.UUID
}

// CreateClassInput defines the data required to create a class for a teacher.
type CreateClassInput struct {
	ClassName string
	TeacherID uuid.UUID
}

// ProvisioningUsecase defines the principal's account and class creation operations.
// Generated passwords are delivered only through the notification port.
type ProvisioningUsecase interface {
	CreateTeacher(ctx context.Context, input *CreateTeacherInput) (*entity.PublicTeacher, error)
	CreateStudent(ctx context.Context, input *CreateStudentInput) (*entity.PublicStudent, error)
	CreateClass(ctx context.Context, input *CreateClassInput) (*entity.Class, error)
}
