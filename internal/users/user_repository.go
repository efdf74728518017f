package users

import (
	"fmt"

	"stockledger/internal/repository"
	"stockledger/pkg/apperrors"
	"stockledger/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// Repository looks up login users in the catalog database.
type Repository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *Repository {
	return &Repository{repository: r}
}

func (r *Repository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	query := r.repository.GoquDBWrapper.
		Select("id", "username", "password_hash", "role").
		From("users").
		Where(goqu.Ex{"username": username})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, fmt.Errorf("unable to select user from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("user", username)
	}
	return &user, nil
}
