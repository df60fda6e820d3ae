package service

import (
	"context"
	"fmt"

	"solarflow/internal/model"
	"solarflow/internal/util"

	"go.uber.org/zap"
)

// Defaults seeded for every new customer. Each customer starts with the full
// document set, the standard checklist, and the three inspection types, all
// pending.
var defaultDocuments = []string{
	"Aadhaar Card",
	"Light Bill",
	"7/12 & Index 2",
	"Undertaking Letter",
	"Notary",
	"PAN Card",
	"Quotation",
	"Sanction Letter",
}

var defaultChecklistTasks = []string{
	"New Connection",
	"Email & Mobile Update",
	"Load Extension",
	"PV Application",
	"Net Meter Application",
}

var defaultInspections = []string{
	"Work Completion Report",
	"Site Inspection",
	"Quality Check",
}

type CustomerRepo interface {
	Insert(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id string) error
}

type DocumentRepo interface {
	InsertBatch(ctx context.Context, documents []model.Document) error
	DeleteByCustomer(ctx context.Context, customerID string) error
}

type ChecklistRepo interface {
	InsertBatch(ctx context.Context, items []model.ChecklistItem) error
	DeleteByCustomer(ctx context.Context, customerID string) error
}

type WiringRepo interface {
	Upsert(ctx context.Context, w *model.WiringDetails) error
	DeleteByCustomer(ctx context.Context, customerID string) error
}

type InspectionRepo interface {
	InsertBatch(ctx context.Context, inspections []model.Inspection) error
	DeleteByCustomer(ctx context.Context, customerID string) error
}

type CommissioningRepo interface {
	Upsert(ctx context.Context, c *model.Commissioning) error
	DeleteByCustomer(ctx context.Context, customerID string) error
}

type ActivityLogRepo interface {
	Insert(ctx context.Context, entry *model.ActivityLog) error
}

// CustomerService handles customer lifecycle: onboarding seeds the blank
// section records so progress derivation has a full snapshot from day one,
// and deletion removes all related section data.
type CustomerService struct {
	customers     CustomerRepo
	documents     DocumentRepo
	checklist     ChecklistRepo
	wiring        WiringRepo
	inspections   InspectionRepo
	commissioning CommissioningRepo
	activityLog   ActivityLogRepo
	logger        *zap.Logger
}

func NewCustomerService(
	customers CustomerRepo,
	documents DocumentRepo,
	checklist ChecklistRepo,
	wiring WiringRepo,
	inspections InspectionRepo,
	commissioning CommissioningRepo,
	activityLog ActivityLogRepo,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customers:     customers,
		documents:     documents,
		checklist:     checklist,
		wiring:        wiring,
		inspections:   inspections,
		commissioning: commissioning,
		activityLog:   activityLog,
		logger:        logger,
	}
}

// Create inserts the customer and seeds blank records for every section.
func (s *CustomerService) Create(ctx context.Context, customer *model.Customer, userName, userID string) error {
	if customer.ID == "" {
		customer.ID = util.NewID()
	}
	if customer.ApprovalStatus == "" {
		customer.ApprovalStatus = "pending"
	}

	if err := s.customers.Insert(ctx, customer); err != nil {
		return err
	}

	if err := s.seedSections(ctx, customer.ID); err != nil {
		return fmt.Errorf("seed sections for customer %s: %w", customer.ID, err)
	}

	s.logActivity(ctx, userName, userID, customer.ID, "Customer",
		fmt.Sprintf("Added new customer: %s", customer.Name))

	s.logger.Info("Customer onboarded",
		zap.String("customer_id", customer.ID),
		zap.String("name", customer.Name),
	)
	return nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.customers.List(ctx)
}

func (s *CustomerService) Update(ctx context.Context, customer *model.Customer, userName, userID string) error {
	if err := s.customers.Update(ctx, customer); err != nil {
		return err
	}
	s.logActivity(ctx, userName, userID, customer.ID, "Customer",
		fmt.Sprintf("Updated customer: %s", customer.Name))
	return nil
}

// Delete removes the customer and every related section record.
func (s *CustomerService) Delete(ctx context.Context, id, userName, userID string) error {
	if err := s.documents.DeleteByCustomer(ctx, id); err != nil {
		return err
	}
	if err := s.checklist.DeleteByCustomer(ctx, id); err != nil {
		return err
	}
	if err := s.wiring.DeleteByCustomer(ctx, id); err != nil {
		return err
	}
	if err := s.inspections.DeleteByCustomer(ctx, id); err != nil {
		return err
	}
	if err := s.commissioning.DeleteByCustomer(ctx, id); err != nil {
		return err
	}
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}

	s.logActivity(ctx, userName, userID, id, "Customer", "Deleted customer and all related data")
	return nil
}

func (s *CustomerService) seedSections(ctx context.Context, customerID string) error {
	documents := make([]model.Document, 0, len(defaultDocuments))
	for _, name := range defaultDocuments {
		documents = append(documents, model.Document{
			ID:         util.NewID(),
			CustomerID: customerID,
			Name:       name,
			Status:     "pending",
		})
	}
	if err := s.documents.InsertBatch(ctx, documents); err != nil {
		return err
	}

	checklist := make([]model.ChecklistItem, 0, len(defaultChecklistTasks))
	for _, task := range defaultChecklistTasks {
		checklist = append(checklist, model.ChecklistItem{
			ID:         util.NewID(),
			CustomerID: customerID,
			Task:       task,
			Status:     "pending",
		})
	}
	if err := s.checklist.InsertBatch(ctx, checklist); err != nil {
		return err
	}

	inspections := make([]model.Inspection, 0, len(defaultInspections))
	for _, document := range defaultInspections {
		inspections = append(inspections, model.Inspection{
			ID:         util.NewID(),
			CustomerID: customerID,
			Document:   document,
			Status:     "pending",
		})
	}
	if err := s.inspections.InsertBatch(ctx, inspections); err != nil {
		return err
	}

	if err := s.wiring.Upsert(ctx, &model.WiringDetails{
		ID:         util.NewID(),
		CustomerID: customerID,
		Status:     "pending",
	}); err != nil {
		return err
	}

	return s.commissioning.Upsert(ctx, &model.Commissioning{
		ID:         util.NewID(),
		CustomerID: customerID,
		Status:     "pending",
	})
}

func (s *CustomerService) logActivity(ctx context.Context, userName, userID, customerID, section, action string) {
	entry := &model.ActivityLog{
		ID:         util.NewID(),
		UserName:   userName,
		UserID:     userID,
		CustomerID: customerID,
		Section:    section,
		Action:     action,
	}
	if err := s.activityLog.Insert(ctx, entry); err != nil {
		s.logger.Warn("Failed to record activity",
			zap.String("customer_id", customerID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
