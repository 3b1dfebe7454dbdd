package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/repository"
	"schoolhub/internal/infra/persistence/model"
)

// studentRepository implements repository.StudentRepository using GORM.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, bool, error) {
	row, found, err := findOne[model.StudentModel](ctx, repo.db, "failed to find student by id", "id = ?", id)
	if err != nil || !found {
		return nil, found, err
	}

	return toStudentDomain(row), true, nil
}

func (repo *studentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, bool, error) {
	row, found, err := findOne[model.StudentModel](ctx, repo.db, "failed to find student by email", "email = ?", email)
	if err != nil || !found {
		return nil, found, err
	}

	return toStudentDomain(row), true, nil
}

// Create inserts the student. The class foreign key catches a class removed
// between the existence check and the insert.
func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	if err := repo.db.WithContext(ctx).Create(fromStudentDomain(student)).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrDuplicateAccount, domainerrors.ErrClassNotFound, "failed to create student")
	}

	return nil
}
