// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// billRepository implements the adapter.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance.
func NewBillRepository(db *gorm.DB) adapter.BillRepository {
	return &billRepository{
		db: db,
	}
}

// Create creates a new bill in the database.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a bill by its ID.
func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var billModel model.BillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindByUserID retrieves all bills for a given user.
func (r *billRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error) {
	var billModels []model.BillModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date DESC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toBillEntities(billModels), nil
}

// FindByUtilityID retrieves all bills for a given utility owned by the user.
func (r *billRepository) FindByUtilityID(ctx context.Context, userID, utilityID uuid.UUID) ([]*entity.Bill, error) {
	var billModels []model.BillModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND utility_id = ?", userID, utilityID).
		Order("due_date DESC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toBillEntities(billModels), nil
}

// FindInWindow retrieves the bill for a utility whose due date falls within
// [from, to), picking the latest due date when several match.
func (r *billRepository) FindInWindow(ctx context.Context, utilityID uuid.UUID, from, to time.Time) (*entity.Bill, error) {
	var billModel model.BillModel
	result := r.db.WithContext(ctx).
		Where("utility_id = ? AND due_date >= ? AND due_date < ?", utilityID, from, to).
		Order("due_date DESC").
		First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindHistory retrieves bills joined with their utilities, filtered and
// ordered by due date descending.
func (r *billRepository) FindHistory(ctx context.Context, userID uuid.UUID, filter adapter.BillHistoryFilter) ([]*entity.BillWithUtility, error) {
	query := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Preload("Utility").
		Where("bills.user_id = ?", userID)

	if filter.From != nil {
		query = query.Where("bills.due_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("bills.due_date < ?", *filter.To)
	}
	if filter.Status != "" {
		query = query.Where("bills.status = ?", string(filter.Status))
	}
	if filter.SearchTerm != "" {
		pattern := "%" + strings.ToLower(filter.SearchTerm) + "%"
		query = query.
			Joins("JOIN utilities ON utilities.id = bills.utility_id").
			Where("LOWER(utilities.provider) LIKE ? OR LOWER(utilities.account_number) LIKE ? OR LOWER(bills.notes) LIKE ?",
				pattern, pattern, pattern)
	}

	var billModels []model.BillModel
	result := query.Order("bills.due_date DESC").Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	history := make([]*entity.BillWithUtility, len(billModels))
	for i := range billModels {
		history[i] = billModels[i].ToEntityWithUtility()
	}
	return history, nil
}

// Update updates an existing bill in the database.
func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	// Select all columns so clearing PaidDate persists.
	result := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("id = ?", bill.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a bill from the database.
func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByUtilityID removes all bills for a utility and returns the count deleted.
func (r *billRepository) DeleteByUtilityID(ctx context.Context, utilityID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.BillModel{}, "utility_id = ?", utilityID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toBillEntities(billModels []model.BillModel) []*entity.Bill {
	bills := make([]*entity.Bill, len(billModels))
	for i := range billModels {
		bills[i] = billModels[i].ToEntity()
	}
	return bills
}
