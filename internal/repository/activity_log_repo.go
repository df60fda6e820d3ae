package repository

import (
	"context"

	"solarflow/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ActivityLogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewActivityLogRepository(db *pgxpool.Pool, logger *zap.Logger) *ActivityLogRepository {
	return &ActivityLogRepository{db: db, logger: logger}
}

func (r *ActivityLogRepository) Insert(ctx context.Context, entry *model.ActivityLog) error {
	query := `
        INSERT INTO activity_logs (id, user_name, user_id, customer_id, section, action)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.UserName, entry.UserID, entry.CustomerID, entry.Section, entry.Action,
	)
	if err != nil {
		r.logger.Error("Failed to insert activity log",
			zap.String("customer_id", entry.CustomerID),
			zap.String("section", entry.Section),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *ActivityLogRepository) ListRecent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	query := `
        SELECT id, user_name, user_id, customer_id, section, action, created_at
        FROM activity_logs
        ORDER BY created_at DESC
        LIMIT $1
    `

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to list activity logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []model.ActivityLog
	for rows.Next() {
		var e model.ActivityLog
		if err := rows.Scan(&e.ID, &e.UserName, &e.UserID, &e.CustomerID, &e.Section, &e.Action, &e.CreatedAt); err != nil {
			r.logger.Error("Failed to scan activity log", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
