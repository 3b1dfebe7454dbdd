// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
//
// Finds return (record, found, err). A missing row is found == false with a nil error.
package repository

import (
	"context"

	"schoolhub/internal/domain/entity"

	"github.com/google/uuid"
)

// PrincipalRepository reads pre-provisioned principal accounts.
type PrincipalRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Principal, bool, error)
}

// TeacherRepository defines persistence operations for teachers.
type TeacherRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, bool, error)
	FindByEmail(ctx context.Context, email string) (*entity.Teacher, bool, error)

	// Create persists a new teacher. An email collision returns ErrDuplicateAccount.
	Create(ctx context.Context, teacher *entity.Teacher) error
}

// StudentRepository defines persistence operations for students.
type StudentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, bool, error)
	FindByEmail(ctx context.Context, email string) (*entity.Student, bool, error)

	// Create persists a new student. An email collision returns ErrDuplicateAccount
	// and an unknown class returns ErrClassNotFound.
	Create(ctx context.Context, student *entity.Student) error
}

// ClassRepository defines persistence operations for classes.
type ClassRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, bool, error)
	FindByTeacherID(ctx context.Context, teacherID uuid.UUID) (*entity.Class, bool, error)
	FindByName(ctx context.Context, className string) (*entity.Class, bool, error)

	// Create persists a new class. Constraint violations map to ErrTeacherNotFound,
	// ErrTeacherAlreadyHasClass and ErrClassNameTaken.
	Create(ctx context.Context, class *entity.Class) error
}
