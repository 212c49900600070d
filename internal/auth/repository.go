package auth

import (
	"context"

	"github.com/autoshift-labs/autoshift-backend/pkg/db"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
)

type Repository struct {
	client *db.Client
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	return r.client.DB().WithContext(ctx).Create(user).Error
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.client.DB().WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
