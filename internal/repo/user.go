package repo

import (
	"context"

	"github.com/Skotchmaster/product_catalog/internal/models"
)

func (r *GormRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUserIfNotExists leaves u untouched and returns ErrUserAlreadyExist
// when the username is taken, including when a concurrent insert wins the race.
func (r *GormRepo) CreateUserIfNotExists(ctx context.Context, u *models.User) error {
	candidate := *u
	tx := r.DB.WithContext(ctx).Where("username = ?", u.Username).FirstOrCreate(&candidate)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrUserAlreadyExist
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUserAlreadyExist
	}
	*u = candidate
	return nil
}
