package postgres

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	domainerrors "schoolhub/internal/domain/errors"
)

// Constraint names as created by migrations/000001_init.up.sql.
const (
	constraintTeacherEmail   = "teachers_email_key"
	constraintStudentEmail   = "students_email_key"
	constraintClassName      = "classes_class_name_key"
	constraintClassTeacher   = "classes_teacher_id_key"
	constraintStudentClassFK = "students_class_id_fkey"
	constraintClassTeacherFK = "classes_teacher_id_fkey"
)

// constraintErrors maps violated constraint names to domain errors.
var constraintErrors = map[string]*domainerrors.BaseError{
	constraintTeacherEmail:   domainerrors.ErrDuplicateAccount,
	constraintStudentEmail:   domainerrors.ErrDuplicateAccount,
	constraintClassName:      domainerrors.ErrClassNameTaken,
	constraintClassTeacher:   domainerrors.ErrTeacherAlreadyHasClass,
	constraintStudentClassFK: domainerrors.ErrClassNotFound,
	constraintClassTeacherFK: domainerrors.ErrTeacherNotFound,
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgerrcode.NotNullViolation
}

// translateWriteError converts an insert failure into a domain error. Unknown
// constraints fall back to the supplied default for their violation class.
func translateWriteError(err error, onUnique, onForeignKey *domainerrors.BaseError, details string) error {
	if pgErr, ok := pgError(err); ok {
		if mapped, known := constraintErrors[pgErr.ConstraintName]; known {
			return mapped.WrapMessage(details)
		}
	}

	switch {
	case isUniqueConstraintViolation(err):
		return onUnique.WrapMessage(details)
	case isForeignKeyConstraintViolation(err):
		return onForeignKey.WrapMessage(details)
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
