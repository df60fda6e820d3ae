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

type DocumentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDocumentRepository(db *pgxpool.Pool, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{db: db, logger: logger}
}

const documentColumns = `id, customer_id, name, uploaded, upload_date, verified, verified_by,
        submitted_to, done_by, file_url, status, manual_status, remark,
        start_date, end_date, created_at`

func scanDocument(row pgx.Row) (*model.Document, error) {
	var d model.Document
	err := row.Scan(
		&d.ID, &d.CustomerID, &d.Name, &d.Uploaded, &d.UploadDate,
		&d.Verified, &d.VerifiedBy, &d.SubmittedTo, &d.DoneBy, &d.FileURL,
		&d.Status, &d.ManualStatus, &d.Remark,
		&d.StartDate, &d.EndDate, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByCustomer returns the customer's document section list.
func (r *DocumentRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE customer_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.logger.Error("Failed to list documents",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	var documents []model.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			r.logger.Error("Failed to scan document", zap.Error(err))
			return nil, err
		}
		documents = append(documents, *d)
	}
	return documents, rows.Err()
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*model.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	d, err := scanDocument(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find document", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return d, nil
}

// InsertBatch creates the blank default documents during onboarding.
func (r *DocumentRepository) InsertBatch(ctx context.Context, documents []model.Document) error {
	query := `
        INSERT INTO documents (id, customer_id, name, uploaded, verified, status, manual_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	for _, d := range documents {
		if _, err := r.db.Exec(ctx, query,
			d.ID, d.CustomerID, d.Name, d.Uploaded, d.Verified, d.Status, d.ManualStatus,
		); err != nil {
			r.logger.Error("Failed to insert document",
				zap.String("customer_id", d.CustomerID),
				zap.String("name", d.Name),
				zap.Error(err),
			)
			return err
		}
	}

	r.logger.Info("Blank documents created",
		zap.Int("count", len(documents)),
	)
	return nil
}

func (r *DocumentRepository) Update(ctx context.Context, d *model.Document) error {
	query := `
        UPDATE documents
        SET name = $2, uploaded = $3, upload_date = $4, verified = $5,
            verified_by = $6, submitted_to = $7, done_by = $8, file_url = $9,
            status = $10, manual_status = $11, remark = $12,
            start_date = $13, end_date = $14
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		d.ID, d.Name, d.Uploaded, d.UploadDate, d.Verified,
		d.VerifiedBy, d.SubmittedTo, d.DoneBy, d.FileURL,
		d.Status, d.ManualStatus, d.Remark, d.StartDate, d.EndDate,
	)
	if err != nil {
		r.logger.Error("Failed to update document", zap.String("id", d.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s not found", d.ID)
	}
	return nil
}

func (r *DocumentRepository) DeleteByCustomer(ctx context.Context, customerID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM documents WHERE customer_id = $1`, customerID)
	if err != nil {
		r.logger.Error("Failed to delete customer documents",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
	}
	return err
}
