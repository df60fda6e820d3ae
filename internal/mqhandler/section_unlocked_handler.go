package mqhandler

import (
	"context"
	"encoding/json"
	"time"

	"solarflow/contracts/mq"
	"solarflow/internal/model"
	"solarflow/internal/repository"
	"solarflow/internal/util"
	"solarflow/pkg/metrics"
	pkgutil "solarflow/pkg/util"

	"go.uber.org/zap"
)

// SectionUnlockedHandler records unlock notifications in the activity feed.
// The gate re-emits the same event on every recompute while the condition
// holds, so the deduper suppresses repeats within its TTL.
type SectionUnlockedHandler struct {
	activityLog *repository.ActivityLogRepository
	deduper     *pkgutil.Deduper
	logger      *zap.Logger
}

func NewSectionUnlockedHandler(
	activityLog *repository.ActivityLogRepository,
	deduper *pkgutil.Deduper,
	logger *zap.Logger,
) *SectionUnlockedHandler {
	return &SectionUnlockedHandler{
		activityLog: activityLog,
		deduper:     deduper,
		logger:      logger,
	}
}

func (h *SectionUnlockedHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	start := time.Now()

	var p mq.SectionUnlockedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal SectionUnlockedPayload", zap.Error(err))
		return err
	}

	h.logger.Info("Handling section.unlocked event",
		zap.String("customer_id", p.CustomerID),
		zap.String("section", p.Section),
	)

	if h.deduper != nil && !h.deduper.AcquireOnce(ctx, "section_unlocked", p.CustomerID, p.Section) {
		h.logger.Debug("Duplicate unlock notification suppressed",
			zap.String("customer_id", p.CustomerID),
			zap.String("section", p.Section),
		)
		return nil
	}

	entry := &model.ActivityLog{
		ID:         util.NewID(),
		UserName:   "System",
		CustomerID: p.CustomerID,
		Section:    p.Section,
		Action:     p.Reason,
	}
	if err := h.activityLog.Insert(ctx, entry); err != nil {
		h.logger.Error("Failed to record unlock activity", zap.Error(err))
		return err
	}

	metrics.RecordMQConsumeLatency(mq.RoutingKeySectionUnlocked, "worker.section_unlocked", time.Since(start))
	return nil
}
