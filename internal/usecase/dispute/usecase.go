package usecase

import (
	"time"

	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/kafka"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/metrics"
	disputedto "github.com/nexabay/escrow-order-service/internal/usecase/dto/dispute"
)

// SystemActor is the resolver recorded by the stale-dispute sweep.
const SystemActor = "system"

type DisputeUsecase interface {
	OpenDispute(input *disputedto.OpenDisputeInput) (*disputedto.DisputeOutput, error)
	ResolveDispute(input *disputedto.ResolveDisputeInput) error
	GetDisputeByID(disputeID string) (*disputedto.DisputeOutput, error)
	GetDisputeByOrderID(orderID string) (*disputedto.DisputeOutput, error)
	ResolveStaleDisputes() error
}

type DefaultDisputeUsecase struct {
	disputeRepo domain.DisputeRepository
	orderRepo   domain.OrderRepository
	escrow      domain.EscrowProvider
	publisher   kafka.Publisher
	metrics     *metrics.OrderMetrics
	admins      map[string]struct{}
	disputeTTL  time.Duration
	now         func() time.Time
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	orderRepo domain.OrderRepository,
	escrow domain.EscrowProvider,
	publisher kafka.Publisher,
	orderMetrics *metrics.OrderMetrics,
	adminIDs []string,
	disputeTTL time.Duration) *DefaultDisputeUsecase {

	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &DefaultDisputeUsecase{
		disputeRepo: disputeRepo,
		orderRepo:   orderRepo,
		escrow:      escrow,
		publisher:   publisher,
		metrics:     orderMetrics,
		admins:      admins,
		disputeTTL:  disputeTTL,
		now:         time.Now,
	}
}

func (disputeUc *DefaultDisputeUsecase) isResolver(actorID string) bool {
	if actorID == SystemActor {
		return true
	}
	_, ok := disputeUc.admins[actorID]
	return ok
}

func toOutput(dispute *domain.Dispute) *disputedto.DisputeOutput {
	return &disputedto.DisputeOutput{
		ID:         dispute.ID,
		OrderID:    dispute.OrderID,
		Reason:     dispute.Reason,
		Evidence:   dispute.Evidence,
		Status:     dispute.Status,
		OpenedAt:   dispute.OpenedAt,
		ResolvedAt: dispute.ResolvedAt,
		ResolvedBy: dispute.ResolvedBy,
	}
}
