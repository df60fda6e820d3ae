package repository

import (
	"context"
	"errors"
	"fmt"

	"solarflow/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ChecklistRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChecklistRepository(db *pgxpool.Pool, logger *zap.Logger) *ChecklistRepository {
	return &ChecklistRepository{db: db, logger: logger}
}

const checklistColumns = `id, customer_id, task, status, remark, done_by,
        start_date, end_date, completed_date, created_at`

func scanChecklistItem(row pgx.Row) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	err := row.Scan(
		&item.ID, &item.CustomerID, &item.Task, &item.Status, &item.Remark,
		&item.DoneBy, &item.StartDate, &item.EndDate, &item.CompletedDate,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ChecklistRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.ChecklistItem, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklist_items WHERE customer_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.logger.Error("Failed to list checklist items",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	var items []model.ChecklistItem
	for rows.Next() {
		item, err := scanChecklistItem(rows)
		if err != nil {
			r.logger.Error("Failed to scan checklist item", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *ChecklistRepository) FindByID(ctx context.Context, id string) (*model.ChecklistItem, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklist_items WHERE id = $1`

	item, err := scanChecklistItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find checklist item", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

// InsertBatch creates the blank default tasks during onboarding.
func (r *ChecklistRepository) InsertBatch(ctx context.Context, items []model.ChecklistItem) error {
	query := `
        INSERT INTO checklist_items (id, customer_id, task, status)
        VALUES ($1, $2, $3, $4)
    `
	for _, item := range items {
		if _, err := r.db.Exec(ctx, query, item.ID, item.CustomerID, item.Task, item.Status); err != nil {
			r.logger.Error("Failed to insert checklist item",
				zap.String("customer_id", item.CustomerID),
				zap.String("task", item.Task),
				zap.Error(err),
			)
			return err
		}
	}

	r.logger.Info("Blank checklist created", zap.Int("count", len(items)))
	return nil
}

func (r *ChecklistRepository) Update(ctx context.Context, item *model.ChecklistItem) error {
	query := `
        UPDATE checklist_items
        SET task = $2, status = $3, remark = $4, done_by = $5,
            start_date = $6, end_date = $7, completed_date = $8
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		item.ID, item.Task, item.Status, item.Remark, item.DoneBy,
		item.StartDate, item.EndDate, item.CompletedDate,
	)
	if err != nil {
		r.logger.Error("Failed to update checklist item", zap.String("id", item.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("checklist item %s not found", item.ID)
	}
	return nil
}

func (r *ChecklistRepository) DeleteByCustomer(ctx context.Context, customerID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM checklist_items WHERE customer_id = $1`, customerID)
	if err != nil {
		r.logger.Error("Failed to delete customer checklist",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
	}
	return err
}
