// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domainerrors "schoolhub/internal/domain/errors"
)

// findOne loads the first row matching query into a new M. A missing row is
// reported as found == false with a nil error.
func findOne[M any](ctx context.Context, db *gorm.DB, details string, query string, args ...any) (*M, bool, error) {
	row := new(M)

	err := db.WithContext(ctx).Where(query, args...).Take(row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return row, true, nil
}
