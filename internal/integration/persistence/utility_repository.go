// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// utilityRepository implements the adapter.UtilityRepository interface.
type utilityRepository struct {
	db *gorm.DB
}

// NewUtilityRepository creates a new utility repository instance.
func NewUtilityRepository(db *gorm.DB) adapter.UtilityRepository {
	return &utilityRepository{
		db: db,
	}
}

// Create creates a new utility in the database.
func (r *utilityRepository) Create(ctx context.Context, utility *entity.Utility) error {
	utilityModel := model.UtilityFromEntity(utility)
	result := r.db.WithContext(ctx).Create(utilityModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a utility by its ID.
func (r *utilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Utility, error) {
	var utilityModel model.UtilityModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&utilityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUtilityNotFound
		}
		return nil, result.Error
	}
	return utilityModel.ToEntity(), nil
}

// FindByUserID retrieves all utilities for a given user.
func (r *utilityRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Utility, error) {
	var utilityModels []model.UtilityModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&utilityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	utilities := make([]*entity.Utility, len(utilityModels))
	for i := range utilityModels {
		utilities[i] = utilityModels[i].ToEntity()
	}
	return utilities, nil
}

// Update updates an existing utility in the database.
func (r *utilityRepository) Update(ctx context.Context, utility *entity.Utility) error {
	utilityModel := model.UtilityFromEntity(utility)
	// Save would skip zero-valued fields through struct updates; select all
	// columns so clearing DefaultDay persists.
	result := r.db.WithContext(ctx).
		Model(&model.UtilityModel{}).
		Where("id = ?", utility.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(utilityModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a utility from the database.
func (r *utilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.UtilityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
