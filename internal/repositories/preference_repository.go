package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

type PreferenceRepository interface {
	GetByAccount(ctx context.Context, accountID string) (*db_models.Preference, error)
	Upsert(ctx context.Context, preference *db_models.Preference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByAccount(ctx context.Context, accountID string) (*db_models.Preference, error) {
	var preference db_models.Preference
	err := r.db.WithContext(ctx).First(&preference, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &preference, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, preference *db_models.Preference) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Preference
		err := tx.First(&existing, "account_id = ?", preference.AccountID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(preference).Error
			}
			return err
		}

		existing.TravelStyle = preference.TravelStyle
		existing.Transportation = preference.Transportation
		existing.Interests = preference.Interests
		existing.EcoFriendlyMode = preference.EcoFriendlyMode
		return tx.Save(&existing).Error
	})
}
