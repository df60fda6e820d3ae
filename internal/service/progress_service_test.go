package service

import (
	"context"
	"testing"
	"time"

	"solarflow/contracts/mq"
	"solarflow/internal/model"
	"solarflow/internal/progress"
	"solarflow/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshot struct {
	documents     []model.Document
	checklist     []model.ChecklistItem
	wiring        *model.WiringDetails
	inspections   []model.Inspection
	commissioning *model.Commissioning
}

type fakeDocuments struct{ f *fakeSnapshot }

func (d fakeDocuments) ListByCustomer(ctx context.Context, customerID string) ([]model.Document, error) {
	return d.f.documents, nil
}

type fakeChecklist struct{ f *fakeSnapshot }

func (c fakeChecklist) ListByCustomer(ctx context.Context, customerID string) ([]model.ChecklistItem, error) {
	return c.f.checklist, nil
}

type fakeWiring struct{ f *fakeSnapshot }

func (w fakeWiring) FindByCustomer(ctx context.Context, customerID string) (*model.WiringDetails, error) {
	return w.f.wiring, nil
}

type fakeInspections struct{ f *fakeSnapshot }

func (i fakeInspections) ListByCustomer(ctx context.Context, customerID string) ([]model.Inspection, error) {
	return i.f.inspections, nil
}

type fakeCommissioning struct{ f *fakeSnapshot }

func (c fakeCommissioning) FindByCustomer(ctx context.Context, customerID string) (*model.Commissioning, error) {
	return c.f.commissioning, nil
}

type fakeCustomerStore struct {
	customer      *model.Customer
	savedProgress int
	savedApproval string
	updateDerived int
}

func (s *fakeCustomerStore) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	return s.customer, nil
}

func (s *fakeCustomerStore) UpdateDerived(ctx context.Context, id string, progress int, approvalStatus string) error {
	s.updateDerived++
	s.savedProgress = progress
	s.savedApproval = approvalStatus
	return nil
}

type publishedEvent struct {
	routingKey string
	payload    any
}

type fakePublisher struct {
	events []publishedEvent
}

func (p *fakePublisher) Publish(routingKey string, payload any) error {
	p.events = append(p.events, publishedEvent{routingKey: routingKey, payload: payload})
	return nil
}

func newTestService(snapshot *fakeSnapshot, customers *fakeCustomerStore, publisher *fakePublisher) *ProgressService {
	return NewProgressService(
		fakeDocuments{snapshot},
		fakeChecklist{snapshot},
		fakeWiring{snapshot},
		fakeInspections{snapshot},
		fakeCommissioning{snapshot},
		customers,
		publisher,
		nil,
		progress.WeightSchemeWeighted,
		5*time.Minute,
		logger.NewLogger(),
	)
}

func TestRecomputePersistsDerivedProgress(t *testing.T) {
	snapshot := &fakeSnapshot{
		documents: []model.Document{
			{ID: "d1", Verified: true},
			{ID: "d2", Verified: true},
			{ID: "d3", Uploaded: true},
			{ID: "d4"},
		},
		checklist: []model.ChecklistItem{
			{ID: "c1", Status: "completed"},
			{ID: "c2", Status: "completed"},
		},
		inspections: []model.Inspection{
			{ID: "i1", Status: "pending"},
			{ID: "i2", Status: "pending"},
		},
	}
	customers := &fakeCustomerStore{customer: &model.Customer{ID: "cust-1", ApprovalStatus: "pending"}}
	publisher := &fakePublisher{}

	svc := newTestService(snapshot, customers, publisher)
	result, events, err := svc.Recompute(context.Background(), "cust-1", progress.SectionChecklist)
	require.NoError(t, err)

	// documents 50, checklist 100, wiring 0, inspection 0, commissioning 0:
	// 25*50 + 25*100 = 3750 over 100 = 37.5, rounds up.
	assert.Equal(t, 38, result.OverallProgress)
	assert.Equal(t, progress.StatusInProgress, result.OverallStatus)
	assert.Equal(t, 50, result.Sections.Documents.Progress)
	assert.Equal(t, progress.StatusCompleted, result.Sections.Checklist.Status)

	assert.Equal(t, 1, customers.updateDerived)
	assert.Equal(t, 38, customers.savedProgress)
	assert.Equal(t, "verified", customers.savedApproval)

	require.Len(t, events, 1)
	assert.Equal(t, progress.SectionWiring, events[0].Section)
}

func TestRecomputePublishesEvents(t *testing.T) {
	snapshot := &fakeSnapshot{
		checklist: []model.ChecklistItem{{ID: "c1", Status: "completed"}},
	}
	customers := &fakeCustomerStore{customer: &model.Customer{ID: "cust-1"}}
	publisher := &fakePublisher{}

	svc := newTestService(snapshot, customers, publisher)
	_, _, err := svc.Recompute(context.Background(), "cust-1", progress.SectionChecklist)
	require.NoError(t, err)

	require.Len(t, publisher.events, 2)
	assert.Equal(t, mq.RoutingKeyProgressRecomputed, publisher.events[0].routingKey)
	assert.Equal(t, mq.RoutingKeySectionUnlocked, publisher.events[1].routingKey)

	unlocked, ok := publisher.events[1].payload.(mq.SectionUnlockedPayload)
	require.True(t, ok)
	assert.Equal(t, "wiring", unlocked.Section)
	assert.Equal(t, "Checklist completed - Wiring section unlocked", unlocked.Reason)
}

func TestRecomputeCommissioningUnlockRequiresApproval(t *testing.T) {
	snapshot := &fakeSnapshot{
		inspections: []model.Inspection{
			{ID: "i1", Status: "completed", Approved: true},
			{ID: "i2", Status: "completed", Approved: false},
		},
	}
	customers := &fakeCustomerStore{customer: &model.Customer{ID: "cust-1"}}
	publisher := &fakePublisher{}

	svc := newTestService(snapshot, customers, publisher)
	_, events, err := svc.Recompute(context.Background(), "cust-1", progress.SectionInspection)
	require.NoError(t, err)
	assert.Empty(t, events)

	snapshot.inspections[1].Approved = true
	_, events, err = svc.Recompute(context.Background(), "cust-1", progress.SectionInspection)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, progress.SectionCommissioning, events[0].Section)
}

func TestRecomputeFullCompletionMarksCustomerCompleted(t *testing.T) {
	end := time.Now()
	snapshot := &fakeSnapshot{
		documents:     []model.Document{{ID: "d1", Verified: true}},
		checklist:     []model.ChecklistItem{{ID: "c1", Status: "completed"}},
		wiring:        &model.WiringDetails{ID: "w1", Status: "completed"},
		inspections:   []model.Inspection{{ID: "i1", Status: "completed", Approved: true, EndDate: &end}},
		commissioning: &model.Commissioning{ID: "cm1", Status: "completed"},
	}
	customers := &fakeCustomerStore{customer: &model.Customer{ID: "cust-1", ApprovalStatus: "verified"}}

	svc := newTestService(snapshot, customers, &fakePublisher{})
	result, _, err := svc.Recompute(context.Background(), "cust-1", progress.SectionCommissioning)
	require.NoError(t, err)

	assert.Equal(t, 100, result.OverallProgress)
	assert.Equal(t, progress.StatusCompleted, result.OverallStatus)
	assert.Equal(t, "completed", customers.savedApproval)
}

func TestRecomputeZeroProgressKeepsApprovalStatus(t *testing.T) {
	snapshot := &fakeSnapshot{
		documents: []model.Document{{ID: "d1"}},
		checklist: []model.ChecklistItem{{ID: "c1", Status: "pending"}},
	}
	customers := &fakeCustomerStore{customer: &model.Customer{ID: "cust-1", ApprovalStatus: "pending"}}

	svc := newTestService(snapshot, customers, &fakePublisher{})
	result, _, err := svc.Recompute(context.Background(), "cust-1", progress.SectionDocuments)
	require.NoError(t, err)

	assert.Equal(t, 0, result.OverallProgress)
	assert.Equal(t, "pending", customers.savedApproval)
}

func TestRecomputeRejectsCorruptStatus(t *testing.T) {
	snapshot := &fakeSnapshot{
		checklist: []model.ChecklistItem{{ID: "c1", Status: "done"}},
	}
	customers := &fakeCustomerStore{customer: &model.Customer{ID: "cust-1"}}

	svc := newTestService(snapshot, customers, &fakePublisher{})
	_, _, err := svc.Recompute(context.Background(), "cust-1", progress.SectionChecklist)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
	assert.Equal(t, 0, customers.updateDerived)
}

func TestGetProgressDoesNotPublish(t *testing.T) {
	snapshot := &fakeSnapshot{
		checklist: []model.ChecklistItem{{ID: "c1", Status: "completed"}},
	}
	customers := &fakeCustomerStore{customer: &model.Customer{ID: "cust-1"}}
	publisher := &fakePublisher{}

	svc := newTestService(snapshot, customers, publisher)
	result, err := svc.GetProgress(context.Background(), "cust-1")
	require.NoError(t, err)

	assert.Equal(t, 25, result.OverallProgress)
	assert.Empty(t, publisher.events)
	assert.Equal(t, 0, customers.updateDerived)
}
