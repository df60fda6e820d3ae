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

type InspectionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInspectionRepository(db *pgxpool.Pool, logger *zap.Logger) *InspectionRepository {
	return &InspectionRepository{db: db, logger: logger}
}

const inspectionColumns = `id, customer_id, document, submitted, submission_date, inward_no,
        qc_name, inspection_date, approved, status, remark, start_date, end_date, created_at`

func scanInspection(row pgx.Row) (*model.Inspection, error) {
	var ins model.Inspection
	err := row.Scan(
		&ins.ID, &ins.CustomerID, &ins.Document, &ins.Submitted, &ins.SubmissionDate,
		&ins.InwardNo, &ins.QCName, &ins.InspectionDate, &ins.Approved, &ins.Status,
		&ins.Remark, &ins.StartDate, &ins.EndDate, &ins.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ins, nil
}

func (r *InspectionRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections WHERE customer_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.logger.Error("Failed to list inspections",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	var inspections []model.Inspection
	for rows.Next() {
		ins, err := scanInspection(rows)
		if err != nil {
			r.logger.Error("Failed to scan inspection", zap.Error(err))
			return nil, err
		}
		inspections = append(inspections, *ins)
	}
	return inspections, rows.Err()
}

func (r *InspectionRepository) FindByID(ctx context.Context, id string) (*model.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections WHERE id = $1`

	ins, err := scanInspection(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find inspection", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return ins, nil
}

// InsertBatch creates the blank default inspections during onboarding.
func (r *InspectionRepository) InsertBatch(ctx context.Context, inspections []model.Inspection) error {
	query := `
        INSERT INTO inspections (id, customer_id, document, submitted, approved, status)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	for _, ins := range inspections {
		if _, err := r.db.Exec(ctx, query,
			ins.ID, ins.CustomerID, ins.Document, ins.Submitted, ins.Approved, ins.Status,
		); err != nil {
			r.logger.Error("Failed to insert inspection",
				zap.String("customer_id", ins.CustomerID),
				zap.String("document", ins.Document),
				zap.Error(err),
			)
			return err
		}
	}

	r.logger.Info("Blank inspections created", zap.Int("count", len(inspections)))
	return nil
}

func (r *InspectionRepository) Update(ctx context.Context, ins *model.Inspection) error {
	query := `
        UPDATE inspections
        SET document = $2, submitted = $3, submission_date = $4, inward_no = $5,
            qc_name = $6, inspection_date = $7, approved = $8, status = $9,
            remark = $10, start_date = $11, end_date = $12
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		ins.ID, ins.Document, ins.Submitted, ins.SubmissionDate, ins.InwardNo,
		ins.QCName, ins.InspectionDate, ins.Approved, ins.Status,
		ins.Remark, ins.StartDate, ins.EndDate,
	)
	if err != nil {
		r.logger.Error("Failed to update inspection", zap.String("id", ins.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inspection %s not found", ins.ID)
	}
	return nil
}

func (r *InspectionRepository) DeleteByCustomer(ctx context.Context, customerID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM inspections WHERE customer_id = $1`, customerID)
	if err != nil {
		r.logger.Error("Failed to delete customer inspections",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
	}
	return err
}
