package service

import (
	"context"
	"testing"

	"solarflow/internal/model"
	"solarflow/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerRepo struct {
	inserted []model.Customer
	deleted  []string
}

func (r *fakeCustomerRepo) Insert(ctx context.Context, c *model.Customer) error {
	r.inserted = append(r.inserted, *c)
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context) ([]model.Customer, error) { return nil, nil }

func (r *fakeCustomerRepo) Update(ctx context.Context, c *model.Customer) error { return nil }

func (r *fakeCustomerRepo) Delete(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeSectionRepos struct {
	documents   []model.Document
	checklist   []model.ChecklistItem
	inspections []model.Inspection
	wiring      []model.WiringDetails
	commission  []model.Commissioning
	cascades    []string
}

func (r *fakeSectionRepos) InsertBatch(ctx context.Context, documents []model.Document) error {
	r.documents = append(r.documents, documents...)
	return nil
}

func (r *fakeSectionRepos) DeleteByCustomer(ctx context.Context, customerID string) error {
	r.cascades = append(r.cascades, customerID)
	return nil
}

type fakeChecklistRepo struct{ s *fakeSectionRepos }

func (r fakeChecklistRepo) InsertBatch(ctx context.Context, items []model.ChecklistItem) error {
	r.s.checklist = append(r.s.checklist, items...)
	return nil
}

func (r fakeChecklistRepo) DeleteByCustomer(ctx context.Context, customerID string) error {
	return r.s.DeleteByCustomer(ctx, customerID)
}

type fakeInspectionRepo struct{ s *fakeSectionRepos }

func (r fakeInspectionRepo) InsertBatch(ctx context.Context, inspections []model.Inspection) error {
	r.s.inspections = append(r.s.inspections, inspections...)
	return nil
}

func (r fakeInspectionRepo) DeleteByCustomer(ctx context.Context, customerID string) error {
	return r.s.DeleteByCustomer(ctx, customerID)
}

type fakeWiringRepo struct{ s *fakeSectionRepos }

func (r fakeWiringRepo) Upsert(ctx context.Context, w *model.WiringDetails) error {
	r.s.wiring = append(r.s.wiring, *w)
	return nil
}

func (r fakeWiringRepo) DeleteByCustomer(ctx context.Context, customerID string) error {
	return r.s.DeleteByCustomer(ctx, customerID)
}

type fakeCommissioningRepo struct{ s *fakeSectionRepos }

func (r fakeCommissioningRepo) Upsert(ctx context.Context, c *model.Commissioning) error {
	r.s.commission = append(r.s.commission, *c)
	return nil
}

func (r fakeCommissioningRepo) DeleteByCustomer(ctx context.Context, customerID string) error {
	return r.s.DeleteByCustomer(ctx, customerID)
}

type fakeActivityLog struct {
	entries []model.ActivityLog
}

func (r *fakeActivityLog) Insert(ctx context.Context, entry *model.ActivityLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func newTestCustomerService() (*CustomerService, *fakeCustomerRepo, *fakeSectionRepos, *fakeActivityLog) {
	customers := &fakeCustomerRepo{}
	sections := &fakeSectionRepos{}
	activity := &fakeActivityLog{}
	svc := NewCustomerService(
		customers,
		sections,
		fakeChecklistRepo{sections},
		fakeWiringRepo{sections},
		fakeInspectionRepo{sections},
		fakeCommissioningRepo{sections},
		activity,
		logger.NewLogger(),
	)
	return svc, customers, sections, activity
}

func TestCreateSeedsDefaultSections(t *testing.T) {
	svc, customers, sections, activity := newTestCustomerService()

	customer := &model.Customer{Name: "Asha Patil"}
	err := svc.Create(context.Background(), customer, "Admin", "u1")
	require.NoError(t, err)

	require.Len(t, customers.inserted, 1)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "pending", customers.inserted[0].ApprovalStatus)

	assert.Len(t, sections.documents, 8)
	assert.Len(t, sections.checklist, 5)
	assert.Len(t, sections.inspections, 3)
	require.Len(t, sections.wiring, 1)
	require.Len(t, sections.commission, 1)

	for _, d := range sections.documents {
		assert.Equal(t, customer.ID, d.CustomerID)
		assert.Equal(t, "pending", d.Status)
		assert.False(t, d.Uploaded)
	}
	assert.Equal(t, "pending", sections.wiring[0].Status)
	assert.Equal(t, "pending", sections.commission[0].Status)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, "Added new customer: Asha Patil", activity.entries[0].Action)
}

func TestDeleteCascadesAllSections(t *testing.T) {
	svc, customers, sections, activity := newTestCustomerService()

	err := svc.Delete(context.Background(), "cust-9", "Admin", "u1")
	require.NoError(t, err)

	assert.Equal(t, []string{"cust-9"}, customers.deleted)
	// One cascade per section.
	assert.Len(t, sections.cascades, 5)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, "Deleted customer and all related data", activity.entries[0].Action)
}
