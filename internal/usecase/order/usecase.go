package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/kafka"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/metrics"
	orderdto "github.com/nexabay/escrow-order-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)

	LockEscrow(orderID string) error
	MarkDelivered(orderID, payloadRef string) error
	ConfirmReceipt(orderID string) error
	CancelOrder(orderID string) error
	ExpireEscrow(orderID string) (domain.OrderStatus, error)
	Apply(event Event) error

	GetOrderByID(orderID string) (*orderdto.OrderOutput, error)
	ListOrders(buyerID string, filter domain.OrderFilter) ([]*orderdto.OrderOutput, error)

	CancelExpiredOrders(ctx context.Context) error
	ScheduleDelivery(orderID string) error
	StartDeliveryWorker(ctx context.Context)
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	ListingRepo domain.ListingRepository
	Escrow      domain.EscrowProvider
	Delivery    domain.DeliveryProvider
	Publisher   kafka.Publisher
	Metrics     *metrics.OrderMetrics
	GracePeriod time.Duration

	deliveryQueue chan deliveryTask
	now           func() time.Time
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	listingRepo domain.ListingRepository,
	escrow domain.EscrowProvider,
	delivery domain.DeliveryProvider,
	publisher kafka.Publisher,
	orderMetrics *metrics.OrderMetrics,
	gracePeriod time.Duration) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:     orderRepo,
		ListingRepo:   listingRepo,
		Escrow:        escrow,
		Delivery:      delivery,
		Publisher:     publisher,
		Metrics:       orderMetrics,
		GracePeriod:   gracePeriod,
		deliveryQueue: make(chan deliveryTask, 128),
		now:           time.Now,
	}
}

func (uc *DefaultOrderUsecase) publishStatus(order *domain.Order) {
	go func(event kafka.OrderEvent) {
		if err := uc.Publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish order event", "order_id", event.OrderID, "error", err.Error())
		}
	}(kafka.OrderEvent{
		OrderID:      order.ID,
		BuyerID:      order.BuyerID,
		SellerID:     order.SellerID,
		Status:       string(order.Status),
		ProductTitle: order.ProductTitle,
		Amount:       order.Amount,
		Currency:     order.Currency,
	})
}
