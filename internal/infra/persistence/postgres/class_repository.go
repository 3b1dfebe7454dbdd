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

// classRepository implements repository.ClassRepository using GORM.
type classRepository struct {
	db *gorm.DB
}

// NewClassRepository is the constructor for classRepository.
func NewClassRepository(db *gorm.DB) repository.ClassRepository {
	return &classRepository{db: db}
}

func (repo *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, bool, error) {
	return repo.find(ctx, "failed to find class by id", "id = ?", id)
}

func (repo *classRepository) FindByTeacherID(ctx context.Context, teacherID uuid.UUID) (*entity.Class, bool, error) {
	return repo.find(ctx, "failed to find class by teacher", "teacher_id = ?", teacherID)
}

func (repo *classRepository) FindByName(ctx context.Context, className string) (*entity.Class, bool, error) {
	return repo.find(ctx, "failed to find class by name", "class_name = ?", className)
}

func (repo *classRepository) find(ctx context.Context, details, query string, args ...any) (*entity.Class, bool, error) {
	row, found, err := findOne[model.ClassModel](ctx, repo.db, details, query, args...)
	if err != nil || !found {
		return nil, found, err
	}

	return toClassDomain(row), true, nil
}

// Create inserts the class. Both unique constraints and the teacher foreign key
// are mapped back to the errors the pre-checks would have returned.
func (repo *classRepository) Create(ctx context.Context, class *entity.Class) error {
	if err := repo.db.WithContext(ctx).Create(fromClassDomain(class)).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrClassNameTaken, domainerrors.ErrTeacherNotFound, "failed to create class")
	}

	return nil
}
