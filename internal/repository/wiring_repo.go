package repository

import (
	"context"
	"errors"

	"solarflow/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type WiringRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewWiringRepository(db *pgxpool.Pool, logger *zap.Logger) *WiringRepository {
	return &WiringRepository{db: db, logger: logger}
}

// FindByCustomer returns nil when the customer has no wiring record yet;
// the progress engine treats an absent record as a pending section.
func (r *WiringRepository) FindByCustomer(ctx context.Context, customerID string) (*model.WiringDetails, error) {
	query := `
        SELECT id, customer_id, technician_name, pv_module_no, aggregate_capacity,
               inverter_type, ac_voltage, mounting_structure, dcdb, acdb, cables,
               status, remark, start_date, end_date, created_at, updated_at
        FROM wiring_details
        WHERE customer_id = $1
    `

	var w model.WiringDetails
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&w.ID, &w.CustomerID, &w.TechnicianName, &w.PVModuleNo, &w.AggregateCapacity,
		&w.InverterType, &w.ACVoltage, &w.MountingStructure, &w.DCDB, &w.ACDB, &w.Cables,
		&w.Status, &w.Remark, &w.StartDate, &w.EndDate, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find wiring details",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return nil, err
	}
	return &w, nil
}

// Upsert writes the customer's single wiring record, creating it when the
// onboarding blank is missing.
func (r *WiringRepository) Upsert(ctx context.Context, w *model.WiringDetails) error {
	query := `
        INSERT INTO wiring_details (id, customer_id, technician_name, pv_module_no,
            aggregate_capacity, inverter_type, ac_voltage, mounting_structure,
            dcdb, acdb, cables, status, remark, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        ON CONFLICT (customer_id) DO UPDATE
        SET technician_name = EXCLUDED.technician_name,
            pv_module_no = EXCLUDED.pv_module_no,
            aggregate_capacity = EXCLUDED.aggregate_capacity,
            inverter_type = EXCLUDED.inverter_type,
            ac_voltage = EXCLUDED.ac_voltage,
            mounting_structure = EXCLUDED.mounting_structure,
            dcdb = EXCLUDED.dcdb,
            acdb = EXCLUDED.acdb,
            cables = EXCLUDED.cables,
            status = EXCLUDED.status,
            remark = EXCLUDED.remark,
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            updated_at = NOW()
    `
	_, err := r.db.Exec(ctx, query,
		w.ID, w.CustomerID, w.TechnicianName, w.PVModuleNo, w.AggregateCapacity,
		w.InverterType, w.ACVoltage, w.MountingStructure, w.DCDB, w.ACDB, w.Cables,
		w.Status, w.Remark, w.StartDate, w.EndDate,
	)
	if err != nil {
		r.logger.Error("Failed to upsert wiring details",
			zap.String("customer_id", w.CustomerID),
			zap.Error(err),
		)
		return err
	}

	r.logger.Info("Wiring details saved",
		zap.String("customer_id", w.CustomerID),
		zap.String("status", w.Status),
	)
	return nil
}

func (r *WiringRepository) DeleteByCustomer(ctx context.Context, customerID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM wiring_details WHERE customer_id = $1`, customerID)
	if err != nil {
		r.logger.Error("Failed to delete wiring details",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
	}
	return err
}
