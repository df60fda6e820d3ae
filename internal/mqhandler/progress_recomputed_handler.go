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

// ProgressRecomputedHandler watches the recompute stream and records a
// milestone entry when a project reaches full completion.
type ProgressRecomputedHandler struct {
	activityLog *repository.ActivityLogRepository
	deduper     *pkgutil.Deduper
	logger      *zap.Logger
}

func NewProgressRecomputedHandler(
	activityLog *repository.ActivityLogRepository,
	deduper *pkgutil.Deduper,
	logger *zap.Logger,
) *ProgressRecomputedHandler {
	return &ProgressRecomputedHandler{
		activityLog: activityLog,
		deduper:     deduper,
		logger:      logger,
	}
}

func (h *ProgressRecomputedHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	start := time.Now()

	var p mq.ProgressRecomputedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal ProgressRecomputedPayload", zap.Error(err))
		return err
	}

	h.logger.Debug("Handling progress.recomputed event",
		zap.String("customer_id", p.CustomerID),
		zap.Int("overall_progress", p.OverallProgress),
		zap.String("overall_status", p.OverallStatus),
	)

	if p.OverallProgress == 100 {
		if h.deduper == nil || h.deduper.AcquireOnce(ctx, "project_completed", p.CustomerID, "overall") {
			entry := &model.ActivityLog{
				ID:         util.NewID(),
				UserName:   "System",
				CustomerID: p.CustomerID,
				Section:    "Progress",
				Action:     "Project reached 100% completion",
			}
			if err := h.activityLog.Insert(ctx, entry); err != nil {
				h.logger.Error("Failed to record completion activity", zap.Error(err))
				return err
			}
			h.logger.Info("Project completion recorded",
				zap.String("customer_id", p.CustomerID),
			)
		}
	}

	metrics.RecordMQConsumeLatency(mq.RoutingKeyProgressRecomputed, "worker.progress_recomputed", time.Since(start))
	return nil
}
