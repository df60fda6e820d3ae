package repository

import (
	"context"
	"errors"

	"solarflow/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CommissioningRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCommissioningRepository(db *pgxpool.Pool, logger *zap.Logger) *CommissioningRepository {
	return &CommissioningRepository{db: db, logger: logger}
}

// FindByCustomer returns nil when the customer has no commissioning record
// yet; the progress engine treats an absent record as a pending section.
func (r *CommissioningRepository) FindByCustomer(ctx context.Context, customerID string) (*model.Commissioning, error) {
	query := `
        SELECT id, customer_id, release_order_number, release_order_date,
               meter_fitting_date, generation_meter_no, utility_meter_no,
               system_start_date, subsidy_received_date, commissioning_report,
               status, remark, start_date, end_date, created_at, updated_at
        FROM commissionings
        WHERE customer_id = $1
    `

	var c model.Commissioning
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&c.ID, &c.CustomerID, &c.ReleaseOrderNumber, &c.ReleaseOrderDate,
		&c.MeterFittingDate, &c.GenerationMeterNo, &c.UtilityMeterNo,
		&c.SystemStartDate, &c.SubsidyReceivedDate, &c.CommissioningReport,
		&c.Status, &c.Remark, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find commissioning",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return nil, err
	}
	return &c, nil
}

func (r *CommissioningRepository) Upsert(ctx context.Context, c *model.Commissioning) error {
	query := `
        INSERT INTO commissionings (id, customer_id, release_order_number,
            release_order_date, meter_fitting_date, generation_meter_no,
            utility_meter_no, system_start_date, subsidy_received_date,
            commissioning_report, status, remark, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (customer_id) DO UPDATE
        SET release_order_number = EXCLUDED.release_order_number,
            release_order_date = EXCLUDED.release_order_date,
            meter_fitting_date = EXCLUDED.meter_fitting_date,
            generation_meter_no = EXCLUDED.generation_meter_no,
            utility_meter_no = EXCLUDED.utility_meter_no,
            system_start_date = EXCLUDED.system_start_date,
            subsidy_received_date = EXCLUDED.subsidy_received_date,
            commissioning_report = EXCLUDED.commissioning_report,
            status = EXCLUDED.status,
            remark = EXCLUDED.remark,
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            updated_at = NOW()
    `
	_, err := r.db.Exec(ctx, query,
		c.ID, c.CustomerID, c.ReleaseOrderNumber, c.ReleaseOrderDate,
		c.MeterFittingDate, c.GenerationMeterNo, c.UtilityMeterNo,
		c.SystemStartDate, c.SubsidyReceivedDate, c.CommissioningReport,
		c.Status, c.Remark, c.StartDate, c.EndDate,
	)
	if err != nil {
		r.logger.Error("Failed to upsert commissioning",
			zap.String("customer_id", c.CustomerID),
			zap.Error(err),
		)
		return err
	}

	r.logger.Info("Commissioning saved",
		zap.String("customer_id", c.CustomerID),
		zap.String("status", c.Status),
	)
	return nil
}

func (r *CommissioningRepository) DeleteByCustomer(ctx context.Context, customerID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM commissionings WHERE customer_id = $1`, customerID)
	if err != nil {
		r.logger.Error("Failed to delete commissioning",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
	}
	return err
}
