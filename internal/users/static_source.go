package users

import (
	"stockledger/pkg/apperrors"
	"stockledger/pkg/models"
)

// StaticSource serves a single bootstrap admin from configuration. Used when
// no catalog database is configured.
type StaticSource struct {
	admin models.User
}

func NewStaticSource(username, passwordHash string) *StaticSource {
	return &StaticSource{
		admin: models.User{
			ID:           1,
			Username:     username,
			PasswordHash: passwordHash,
			Role:         "admin",
		},
	}
}

func (s *StaticSource) FindByUsername(username string) (*models.User, error) {
	if s.admin.PasswordHash == "" || username != s.admin.Username {
		return nil, apperrors.NotFound("user", username)
	}
	user := s.admin
	return &user, nil
}
