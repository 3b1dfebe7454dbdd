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

// teacherRepository implements repository.TeacherRepository using GORM.
type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository is the constructor for teacherRepository.
func NewTeacherRepository(db *gorm.DB) repository.TeacherRepository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, bool, error) {
	row, found, err := findOne[model.TeacherModel](ctx, repo.db, "failed to find teacher by id", "id = ?", id)
	if err != nil || !found {
		return nil, found, err
	}

	return toTeacherDomain(row), true, nil
}

func (repo *teacherRepository) FindByEmail(ctx context.Context, email string) (*entity.Teacher, bool, error) {
	row, found, err := findOne[model.TeacherModel](ctx, repo.db, "failed to find teacher by email", "email = ?", email)
	if err != nil || !found {
		return nil, found, err
	}

	return toTeacherDomain(row), true, nil
}

// Create inserts the teacher. teachers_email_key turns a concurrent duplicate
// into ErrDuplicateAccount.
func (repo *teacherRepository) Create(ctx context.Context, teacher *entity.Teacher) error {
	if err := repo.db.WithContext(ctx).Create(fromTeacherDomain(teacher)).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrDuplicateAccount, domainerrors.ErrInternalError, "failed to create teacher")
	}

	return nil
}
