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

type CustomerRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCustomerRepository(db *pgxpool.Pool, logger *zap.Logger) *CustomerRepository {
	return &CustomerRepository{db: db, logger: logger}
}

const customerColumns = `id, name, consumer_number, mobile, address, system_capacity,
        order_amount, order_date, assigned_to, approval_status, progress, locked,
        created_by, created_at, updated_at`

func (r *CustomerRepository) Insert(ctx context.Context, c *model.Customer) error {
	r.logger.Debug("Inserting customer",
		zap.String("id", c.ID),
		zap.String("name", c.Name),
	)

	query := `
        INSERT INTO customers (id, name, consumer_number, mobile, address,
            system_capacity, order_amount, order_date, assigned_to,
            approval_status, progress, locked, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.ConsumerNumber, c.Mobile, c.Address,
		c.SystemCapacity, c.OrderAmount, c.OrderDate, c.AssignedTo,
		c.ApprovalStatus, c.Progress, c.Locked, c.CreatedBy,
	)
	if err != nil {
		r.logger.Error("Failed to insert customer", zap.Error(err))
		return err
	}

	r.logger.Info("Customer inserted successfully", zap.String("id", c.ID))
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	var c model.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.ConsumerNumber, &c.Mobile, &c.Address,
		&c.SystemCapacity, &c.OrderAmount, &c.OrderDate, &c.AssignedTo,
		&c.ApprovalStatus, &c.Progress, &c.Locked,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find customer", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ConsumerNumber, &c.Mobile, &c.Address,
			&c.SystemCapacity, &c.OrderAmount, &c.OrderDate, &c.AssignedTo,
			&c.ApprovalStatus, &c.Progress, &c.Locked,
			&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			r.logger.Error("Failed to scan customer", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
        UPDATE customers
        SET name = $2, consumer_number = $3, mobile = $4, address = $5,
            system_capacity = $6, order_amount = $7, order_date = $8,
            assigned_to = $9, locked = $10, updated_at = NOW()
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.ConsumerNumber, c.Mobile, c.Address,
		c.SystemCapacity, c.OrderAmount, c.OrderDate, c.AssignedTo, c.Locked,
	)
	if err != nil {
		r.logger.Error("Failed to update customer", zap.String("id", c.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", c.ID)
	}
	return nil
}

// UpdateDerived persists the recomputed progress and approval status. It is
// the only writer of these columns; they are derived values, never edited
// directly.
func (r *CustomerRepository) UpdateDerived(ctx context.Context, id string, progress int, approvalStatus string) error {
	query := `
        UPDATE customers
        SET progress = $2, approval_status = $3, updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id, progress, approvalStatus)
	if err != nil {
		r.logger.Error("Failed to update derived progress",
			zap.String("id", id),
			zap.Int("progress", progress),
			zap.Error(err),
		)
		return err
	}

	r.logger.Info("Derived progress persisted",
		zap.String("id", id),
		zap.Int("progress", progress),
		zap.String("approval_status", approvalStatus),
	)
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete customer", zap.String("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", id)
	}
	r.logger.Info("Customer deleted", zap.String("id", id))
	return nil
}
