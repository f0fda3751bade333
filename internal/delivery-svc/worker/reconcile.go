package worker

import (
	"context"
	"log"
	"time"
)

type FlagReconciler interface {
	ReconcileAgentFlags() (int64, error)
}

// ReconcileWorker periodically clears on-delivery flags that lost their
// backing order, repairing drift between the orders and agents tables.
type ReconcileWorker struct {
	repo     FlagReconciler
	interval time.Duration
}

func NewReconcileWorker(repo FlagReconciler, interval time.Duration) *ReconcileWorker {
	return &ReconcileWorker{repo: repo, interval: interval}
}

func (w *ReconcileWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Println("Agent flag reconcile worker started")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			repaired, err := w.repo.ReconcileAgentFlags()
			if err != nil {
				log.Printf("Reconcile failed: %v", err)
				continue
			}
			if repaired > 0 {
				log.Printf("Reconciled %d stuck agent flags", repaired)
			}
		}
	}
}
