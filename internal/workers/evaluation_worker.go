package workers

import (
	"context"
	"fmt"
	"time"

	"studio_backend/internal/logger"
	"studio_backend/internal/services"

	"gorm.io/gorm"
)

const evaluationBatchSize = 20

// EvaluationWorker sweeps pending applications that have no bio evaluation
// yet and scores them in small batches.
type EvaluationWorker struct {
	db         *gorm.DB
	evaluation services.EvaluationService
	interval   time.Duration
}

func NewEvaluationWorker(db *gorm.DB, evaluation services.EvaluationService, interval time.Duration) *EvaluationWorker {
	return &EvaluationWorker{
		db:         db,
		evaluation: evaluation,
		interval:   interval,
	}
}

func (w *EvaluationWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *EvaluationWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Evaluation worker stopped")
			return
		case <-ticker.C:
			count, err := w.evaluation.EvaluatePending(ctx, w.db, evaluationBatchSize)
			if err != nil {
				logger.WorkerLog("evaluation", "sweep failed", err)
				continue
			}
			if count > 0 {
				logger.WorkerLog("evaluation", fmt.Sprintf("evaluated %d applications", count), nil)
			}
		}
	}
}
