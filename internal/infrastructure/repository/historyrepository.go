package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
)

type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewHistoryRepository(database *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *HistoryRepository) Save(ctx context.Context, entry *ticket.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *HistoryRepository) Update(ctx context.Context, entry *ticket.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.HistoryEntryModel{}).
		Where("id = ?", model.ID).
		Select("description", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update history entry: %w", result.Error)
	}

	return nil
}

func (r *HistoryRepository) Delete(ctx context.Context, entryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.HistoryEntryModel{}, entryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete history entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("history entry not found")
	}
	return nil
}

func (r *HistoryRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	var entryModels []models.HistoryEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("occurred_at ASC").
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, len(entryModels))
	for i := range entryModels {
		entry, err := r.mapper.HistoryToDomain(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}
