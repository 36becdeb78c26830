// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// reminderRepository implements the adapter.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository instance.
func NewReminderRepository(db *gorm.DB) adapter.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// CreateMany inserts a batch of reminders.
func (r *reminderRepository) CreateMany(ctx context.Context, reminders []*entity.Reminder) error {
	if len(reminders) == 0 {
		return nil
	}

	reminderModels := make([]model.ReminderModel, len(reminders))
	for i, reminder := range reminders {
		reminderModels[i] = *model.ReminderFromEntity(reminder)
	}

	result := r.db.WithContext(ctx).Create(&reminderModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindDueByUserID retrieves unsent reminders whose reminder date is at or
// before the given instant, ordered by reminder date ascending.
func (r *reminderRepository) FindDueByUserID(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.Reminder, error) {
	var reminderModels []model.ReminderModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND sent = ? AND reminder_date <= ?", userID, false, asOf).
		Order("reminder_date ASC").
		Find(&reminderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reminders := make([]*entity.Reminder, len(reminderModels))
	for i := range reminderModels {
		reminders[i] = reminderModels[i].ToEntity()
	}
	return reminders, nil
}

// MarkSent flags the given reminders as sent at the given instant.
func (r *reminderRepository) MarkSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"sent": true, "sent_at": sentAt})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByBillID removes all reminders attached to a bill.
func (r *reminderRepository) DeleteByBillID(ctx context.Context, billID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ReminderModel{}, "bill_id = ?", billID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
