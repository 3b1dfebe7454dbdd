package postgres

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domainerrors "schoolhub/internal/domain/errors"
)

func TestTranslateWriteError_KnownConstraints(t *testing.T) {
	tests := []struct {
		constraint string
		code       string
		want       *domainerrors.BaseError
	}{
		{constraintTeacherEmail, pgerrcode.UniqueViolation, domainerrors.ErrDuplicateAccount},
		{constraintStudentEmail, pgerrcode.UniqueViolation, domainerrors.ErrDuplicateAccount},
		{constraintClassName, pgerrcode.UniqueViolation, domainerrors.ErrClassNameTaken},
		{constraintClassTeacher, pgerrcode.UniqueViolation, domainerrors.ErrTeacherAlreadyHasClass},
		{constraintStudentClassFK, pgerrcode.ForeignKeyViolation, domainerrors.ErrClassNotFound},
		{constraintClassTeacherFK, pgerrcode.ForeignKeyViolation, domainerrors.ErrTeacherNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			driverErr := errors.Wrap(&pgconn.PgError{Code: tt.code, ConstraintName: tt.constraint}, "insert")

			err := translateWriteError(driverErr, domainerrors.ErrInternalError, domainerrors.ErrInternalError, "create")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestTranslateWriteError_Fallbacks(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "some_other_key"}
	err := translateWriteError(unique, domainerrors.ErrDuplicateAccount, domainerrors.ErrClassNotFound, "create")
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "some_other_fkey"}
	err = translateWriteError(fk, domainerrors.ErrDuplicateAccount, domainerrors.ErrClassNotFound, "create")
	assert.True(t, errors.Is(err, domainerrors.ErrClassNotFound))

	err = translateWriteError(gorm.ErrDuplicatedKey, domainerrors.ErrClassNameTaken, domainerrors.ErrTeacherNotFound, "create")
	assert.True(t, errors.Is(err, domainerrors.ErrClassNameTaken))

	notNull := &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "email"}
	err = translateWriteError(notNull, domainerrors.ErrDuplicateAccount, domainerrors.ErrClassNotFound, "create")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTranslateWriteError_Unclassified(t *testing.T) {
	cause := errors.New("connection reset by peer")

	err := translateWriteError(cause, domainerrors.ErrDuplicateAccount, domainerrors.ErrClassNotFound, "failed to create teacher")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, domainerrors.StatusInternal, appErr.Status())
	assert.True(t, errors.Is(err, cause))
}
