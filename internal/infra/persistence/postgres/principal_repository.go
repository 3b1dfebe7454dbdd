package postgres

import (
	"context"

	"gorm.io/gorm"

	"schoolhub/internal/domain/entity"
	"schoolhub/internal/domain/repository"
	"schoolhub/internal/infra/persistence/model"
)

// principalRepository reads pre-provisioned principals. Principals are created
// out of band, so there is no Create.
type principalRepository struct {
	db *gorm.DB
}

// NewPrincipalRepository is the constructor for principalRepository.
func NewPrincipalRepository(db *gorm.DB) repository.PrincipalRepository {
	return &principalRepository{db: db}
}

func (repo *principalRepository) FindByEmail(ctx context.Context, email string) (*entity.Principal, bool, error) {
	row, found, err := findOne[model.PrincipalModel](ctx, repo.db, "failed to find principal by email", "email = ?", email)
	if err != nil || !found {
		return nil, found, err
	}

	return toPrincipalDomain(row), true, nil
}
