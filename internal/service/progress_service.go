package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"solarflow/contracts/mq"
	"solarflow/internal/model"
	"solarflow/internal/progress"
	"solarflow/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Snapshot read accessors, satisfied by the repositories. The service always
// recomputes from a full current snapshot; it never patches a previous
// result incrementally.
type DocumentSource interface {
	ListByCustomer(ctx context.Context, customerID string) ([]model.Document, error)
}

type ChecklistSource interface {
	ListByCustomer(ctx context.Context, customerID string) ([]model.ChecklistItem, error)
}

type WiringSource interface {
	FindByCustomer(ctx context.Context, customerID string) (*model.WiringDetails, error)
}

type InspectionSource interface {
	ListByCustomer(ctx context.Context, customerID string) ([]model.Inspection, error)
}

type CommissioningSource interface {
	FindByCustomer(ctx context.Context, customerID string) (*model.Commissioning, error)
}

// CustomerStore persists the derived progress and approval status.
type CustomerStore interface {
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	UpdateDerived(ctx context.Context, id string, progress int, approvalStatus string) error
}

// EventPublisher publishes fulfillment events. Satisfied by *mq.Publisher.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// ProgressService recomputes a customer's derived progress after every
// mutation. The computation itself lives in the progress package; this
// service loads the snapshot, persists the result, caches it, and publishes
// the advisory events.
type ProgressService struct {
	documents     DocumentSource
	checklist     ChecklistSource
	wiring        WiringSource
	inspections   InspectionSource
	commissioning CommissioningSource
	customers     CustomerStore
	publisher     EventPublisher
	cache         *redis.Client
	scheme        progress.WeightScheme
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewProgressService(
	documents DocumentSource,
	checklist ChecklistSource,
	wiring WiringSource,
	inspections InspectionSource,
	commissioning CommissioningSource,
	customers CustomerStore,
	publisher EventPublisher,
	cache *redis.Client,
	scheme progress.WeightScheme,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ProgressService {
	return &ProgressService{
		documents:     documents,
		checklist:     checklist,
		wiring:        wiring,
		inspections:   inspections,
		commissioning: commissioning,
		customers:     customers,
		publisher:     publisher,
		cache:         cache,
		scheme:        scheme,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

func progressCacheKey(customerID string) string {
	return "progress:" + customerID
}

// Recompute runs the full derivation pass for a customer after a mutation to
// the given section: snapshot, infer, aggregate, compose, gate. The derived
// progress is persisted on the customer row, the composed result is cached,
// and events are published. Returns the composed progress and any unlock
// events the gate produced.
func (s *ProgressService) Recompute(ctx context.Context, customerID string, changed progress.Section) (*progress.ProjectProgress, []progress.UnlockEvent, error) {
	start := time.Now()

	result, inspectionStates, err := s.compute(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	sections := progress.Sections{
		Documents:     &result.Sections.Documents,
		Checklist:     &result.Sections.Checklist,
		Wiring:        &result.Sections.Wiring,
		Inspection:    &result.Sections.Inspection,
		Commissioning: &result.Sections.Commissioning,
	}

	events, err := progress.CheckUnlock(customerID, changed, sections, inspectionStates)
	if err != nil {
		return nil, nil, err
	}

	if err := s.persistDerived(ctx, customerID, result); err != nil {
		return nil, nil, err
	}

	s.cacheResult(ctx, customerID, result)
	s.publishEvents(customerID, result, events)

	metrics.RecordProgressRecomputeLatency(changed.String(), time.Since(start))

	s.logger.Info("Progress recomputed",
		zap.String("customer_id", customerID),
		zap.String("changed_section", changed.String()),
		zap.Int("overall_progress", result.OverallProgress),
		zap.String("overall_status", result.OverallStatus.String()),
		zap.Int("unlock_events", len(events)),
	)
	return result, events, nil
}

// GetProgress returns the composed progress for a customer, from cache when
// available. Cache misses recompute from the snapshot without persisting or
// publishing: reads have no side effects.
func (s *ProgressService) GetProgress(ctx context.Context, customerID string) (*progress.ProjectProgress, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, progressCacheKey(customerID)).Bytes()
		if err == nil {
			var cached progress.ProjectProgress
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			s.logger.Warn("Discarding unreadable progress cache entry",
				zap.String("customer_id", customerID),
			)
		} else if err != redis.Nil {
			s.logger.Warn("Progress cache read failed",
				zap.String("customer_id", customerID),
				zap.Error(err),
			)
		}
	}

	result, _, err := s.compute(ctx, customerID)
	if err != nil {
		return nil, err
	}
	s.cacheResult(ctx, customerID, result)
	return result, nil
}

// compute loads the five section snapshots and runs the pure derivation.
// Inspection item states are returned alongside because the commissioning
// gate needs the per-item approval flags, not just the summary.
func (s *ProgressService) compute(ctx context.Context, customerID string) (*progress.ProjectProgress, []progress.ItemState, error) {
	documents, err := s.documents.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load documents: %w", err)
	}
	checklist, err := s.checklist.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load checklist: %w", err)
	}
	wiring, err := s.wiring.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load wiring: %w", err)
	}
	inspections, err := s.inspections.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load inspections: %w", err)
	}
	commissioning, err := s.commissioning.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load commissioning: %w", err)
	}

	documentSummary, err := aggregateDocuments(documents)
	if err != nil {
		return nil, nil, err
	}
	checklistSummary, err := aggregateChecklist(checklist)
	if err != nil {
		return nil, nil, err
	}
	wiringSummary, err := aggregateWiring(wiring)
	if err != nil {
		return nil, nil, err
	}
	inspectionStates, inspectionSummary, err := aggregateInspections(inspections)
	if err != nil {
		return nil, nil, err
	}
	commissioningSummary, err := aggregateCommissioning(commissioning)
	if err != nil {
		return nil, nil, err
	}

	result, err := progress.Compose(progress.Sections{
		Documents:     &documentSummary,
		Checklist:     &checklistSummary,
		Wiring:        &wiringSummary,
		Inspection:    &inspectionSummary,
		Commissioning: &commissioningSummary,
	}, s.scheme)
	if err != nil {
		return nil, nil, err
	}
	return &result, inspectionStates, nil
}

// persistDerived writes the recomputed progress back to the customer row and
// moves the approval status forward: 100 means completed, anything above
// zero means verified, zero leaves the operator-set value alone.
func (s *ProgressService) persistDerived(ctx context.Context, customerID string, result *progress.ProjectProgress) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("load customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer %s not found", customerID)
	}

	approval := customer.ApprovalStatus
	switch {
	case result.OverallProgress == 100:
		approval = "completed"
	case result.OverallProgress > 0:
		approval = "verified"
	}

	return s.customers.UpdateDerived(ctx, customerID, result.OverallProgress, approval)
}

func (s *ProgressService) cacheResult(ctx context.Context, customerID string, result *progress.ProjectProgress) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, progressCacheKey(customerID), raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("Progress cache write failed",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
	}
}

func (s *ProgressService) publishEvents(customerID string, result *progress.ProjectProgress, events []progress.UnlockEvent) {
	if s.publisher == nil {
		return
	}

	recomputed := mq.ProgressRecomputedPayload{
		CustomerID:      customerID,
		OverallProgress: result.OverallProgress,
		OverallStatus:   result.OverallStatus.String(),
	}
	if err := s.publisher.Publish(mq.RoutingKeyProgressRecomputed, recomputed); err != nil {
		s.logger.Error("Failed to publish progress.recomputed event",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
	}

	for _, event := range events {
		payload := mq.SectionUnlockedPayload{
			CustomerID: event.CustomerID,
			Section:    event.Section.String(),
			Reason:     event.Reason,
		}
		if err := s.publisher.Publish(mq.RoutingKeySectionUnlocked, payload); err != nil {
			s.logger.Error("Failed to publish section.unlocked event",
				zap.String("customer_id", event.CustomerID),
				zap.String("section", event.Section.String()),
				zap.Error(err),
			)
			continue
		}
		metrics.IncrementUnlockEvents(event.Section.String())
		s.logger.Info("Published section.unlocked event",
			zap.String("customer_id", event.CustomerID),
			zap.String("section", event.Section.String()),
		)
	}
}
