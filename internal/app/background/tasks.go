package background

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	disputeusecase "github.com/nexabay/escrow-order-service/internal/usecase/dispute"
	orderusecase "github.com/nexabay/escrow-order-service/internal/usecase/order"
)

type BackgroundTasks struct {
	OrderUsecase   orderusecase.OrderUsecase
	DisputeUsecase disputeusecase.DisputeUsecase
	SweepInterval  time.Duration
}

func NewBackgroundTasks(orderUC orderusecase.OrderUsecase, disputeUC disputeusecase.DisputeUsecase, sweepInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		OrderUsecase:   orderUC,
		DisputeUsecase: disputeUC,
		SweepInterval:  sweepInterval,
	}
}

// StartAll runs the sweeps and the delivery worker until ctx is cancelled.
func (bt *BackgroundTasks) StartAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bt.runEscrowExpirySweep(ctx)
		return nil
	})
	g.Go(func() error {
		bt.runStaleDisputeSweep(ctx)
		return nil
	})
	g.Go(func() error {
		bt.OrderUsecase.StartDeliveryWorker(ctx)
		return nil
	})

	return g.Wait()
}

func (bt *BackgroundTasks) runEscrowExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.OrderUsecase.CancelExpiredOrders(ctx); err != nil {
				log.Printf("Escrow expiry sweep error: %v\n", err)
			}
		}
	}
}

func (bt *BackgroundTasks) runStaleDisputeSweep(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.DisputeUsecase.ResolveStaleDisputes(); err != nil {
				log.Printf("Stale dispute sweep error: %v\n", err)
			}
		}
	}
}
