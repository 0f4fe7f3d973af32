package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/kafka"
	disputedto "github.com/nexabay/escrow-order-service/internal/usecase/dto/dispute"
)

type fakeOrderRepo struct {
	orders    map[string]*domain.Order
	timelines map[string][]domain.TimelineEntry
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{
		orders:    make(map[string]*domain.Order),
		timelines: make(map[string][]domain.TimelineEntry),
	}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order, timeline []domain.TimelineEntry) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetTimeline(orderID string) ([]domain.TimelineEntry, error) {
	return r.timelines[orderID], nil
}

func (r *fakeOrderRepo) ListOrders(buyerID string, filter domain.OrderFilter, now time.Time) ([]*domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) FindExpiredOrders(now time.Time) ([]*domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(orderID string, expected domain.OrderStatus, update domain.OrderUpdate) error {
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.Status != expected {
		return domain.ErrStaleState
	}
	order.Status = update.Status
	if update.ClosedAt != nil {
		order.ClosedAt = update.ClosedAt
	}
	r.timelines[orderID] = append(r.timelines[orderID], update.Timeline...)
	return nil
}

type fakeDisputeRepo struct {
	orderRepo *fakeOrderRepo
	disputes  map[string]*domain.Dispute
	byOrder   map[string]string
}

func newFakeDisputeRepo(orderRepo *fakeOrderRepo) *fakeDisputeRepo {
	return &fakeDisputeRepo{
		orderRepo: orderRepo,
		disputes:  make(map[string]*domain.Dispute),
		byOrder:   make(map[string]string),
	}
}

func (r *fakeDisputeRepo) CreateDisputeForOrder(dispute *domain.Dispute, expected domain.OrderStatus, update domain.OrderUpdate) error {
	if err := r.orderRepo.UpdateOrderStatus(dispute.OrderID, expected, update); err != nil {
		return err
	}
	copied := *dispute
	r.disputes[dispute.ID] = &copied
	r.byOrder[dispute.OrderID] = dispute.ID
	return nil
}

func (r *fakeDisputeRepo) ResolveDisputeForOrder(disputeID string, status domain.DisputeStatus, resolvedBy string, resolvedAt time.Time, expected domain.OrderStatus, update domain.OrderUpdate) error {
	dispute, ok := r.disputes[disputeID]
	if !ok {
		return domain.ErrDisputeNotFound
	}
	if err := r.orderRepo.UpdateOrderStatus(dispute.OrderID, expected, update); err != nil {
		return err
	}
	dispute.Status = status
	dispute.ResolvedBy = resolvedBy
	dispute.ResolvedAt = &resolvedAt
	return nil
}

func (r *fakeDisputeRepo) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	dispute, ok := r.disputes[disputeID]
	if !ok {
		return nil, domain.ErrDisputeNotFound
	}
	copied := *dispute
	return &copied, nil
}

func (r *fakeDisputeRepo) GetDisputeByOrderID(orderID string) (*domain.Dispute, error) {
	id, ok := r.byOrder[orderID]
	if !ok {
		return nil, domain.ErrDisputeNotFound
	}
	return r.GetDisputeByID(id)
}

func (r *fakeDisputeRepo) FindStaleDisputes(openedBefore time.Time) ([]*domain.Dispute, error) {
	var out []*domain.Dispute
	for _, d := range r.disputes {
		if d.Status == domain.DisputeUnderReview && d.OpenedAt.Before(openedBefore) {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeEscrow struct {
	releaseCalls int
	refundCalls  int
	refundErr    error
}

func (e *fakeEscrow) SubmitPayment(orderID string, amount float64) error { return nil }

func (e *fakeEscrow) ReleaseFunds(orderID, recipientID string) error {
	e.releaseCalls++
	return nil
}

func (e *fakeEscrow) Refund(orderID string) error {
	e.refundCalls++
	return e.refundErr
}

type fakePublisher struct{}

func (fakePublisher) PublishOrder(kafka.OrderEvent) error     { return nil }
func (fakePublisher) PublishDispute(kafka.DisputeEvent) error { return nil }

func newTestUsecase(orderRepo *fakeOrderRepo, disputeRepo *fakeDisputeRepo, escrow *fakeEscrow, now time.Time) *DefaultDisputeUsecase {
	uc := NewDefaultDisputeUsecase(disputeRepo, orderRepo, escrow, fakePublisher{}, nil, []string{"admin-1"}, 7*24*time.Hour)
	uc.now = func() time.Time { return now }
	return uc
}

func TestOpenDispute(t *testing.T) {
	now := time.Date(2023, 11, 23, 10, 0, 0, 0, time.UTC)
	orderRepo := newFakeOrderRepo(&domain.Order{
		ID: "ORD-1102-PP", Status: domain.StatusDelivered, BuyerID: "buyer-1", SellerID: "seller-1",
	})
	disputeRepo := newFakeDisputeRepo(orderRepo)
	uc := newTestUsecase(orderRepo, disputeRepo, &fakeEscrow{}, now)

	out, err := uc.OpenDispute(&disputedto.OpenDisputeInput{
		OrderID:  "ORD-1102-PP",
		Reason:   "Account credentials not working",
		Evidence: []string{"screenshot-1.png"},
		OpenedBy: "buyer-1",
	})
	if err != nil {
		t.Fatalf("OpenDispute: %v", err)
	}
	if out.Status != domain.DisputeUnderReview {
		t.Errorf("dispute status = %s, want %s", out.Status, domain.DisputeUnderReview)
	}
	if out.Reason != "Account credentials not working" {
		t.Errorf("reason = %q", out.Reason)
	}
	if got := orderRepo.orders["ORD-1102-PP"].Status; got != domain.StatusDisputed {
		t.Errorf("order status = %s, want %s", got, domain.StatusDisputed)
	}
	timeline := orderRepo.timelines["ORD-1102-PP"]
	if len(timeline) != 1 || timeline[0].Label != domain.TimelineDisputeOpened {
		t.Errorf("timeline = %+v", timeline)
	}
}

func TestOpenDisputeEmptyReason(t *testing.T) {
	orderRepo := newFakeOrderRepo(&domain.Order{ID: "ORD-1102-PP", Status: domain.StatusDelivered})
	uc := newTestUsecase(orderRepo, newFakeDisputeRepo(orderRepo), &fakeEscrow{}, time.Now())

	_, err := uc.OpenDispute(&disputedto.OpenDisputeInput{OrderID: "ORD-1102-PP", Reason: "   "})
	if !errors.Is(err, domain.ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
}

func TestOpenDisputeBeforeDelivery(t *testing.T) {
	orderRepo := newFakeOrderRepo(&domain.Order{ID: "ORD-1102-PP", Status: domain.StatusEscrowLocked})
	uc := newTestUsecase(orderRepo, newFakeDisputeRepo(orderRepo), &fakeEscrow{}, time.Now())

	_, err := uc.OpenDispute(&disputedto.OpenDisputeInput{OrderID: "ORD-1102-PP", Reason: "never delivered"})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if got := orderRepo.orders["ORD-1102-PP"].Status; got != domain.StatusEscrowLocked {
		t.Errorf("order status = %s, want unchanged %s", got, domain.StatusEscrowLocked)
	}
}

func openTestDispute(t *testing.T, uc *DefaultDisputeUsecase, orderID string) string {
	t.Helper()
	out, err := uc.OpenDispute(&disputedto.OpenDisputeInput{
		OrderID: orderID,
		Reason:  "Account credentials not working",
	})
	if err != nil {
		t.Fatalf("OpenDispute: %v", err)
	}
	return out.ID
}

func TestResolveDisputeBuyerVerdictRefundsOnce(t *testing.T) {
	now := time.Date(2023, 11, 23, 15, 0, 0, 0, time.UTC)
	orderRepo := newFakeOrderRepo(&domain.Order{ID: "ORD-1102-PP", Status: domain.StatusDelivered, SellerID: "seller-1"})
	disputeRepo := newFakeDisputeRepo(orderRepo)
	escrow := &fakeEscrow{}
	uc := newTestUsecase(orderRepo, disputeRepo, escrow, now)

	disputeID := openTestDispute(t, uc, "ORD-1102-PP")

	err := uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		OrderID:    "ORD-1102-PP",
		Verdict:    domain.VerdictBuyer,
		ResolvedBy: "admin-1",
	})
	if err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}

	if escrow.refundCalls != 1 {
		t.Errorf("refundCalls = %d, want exactly 1", escrow.refundCalls)
	}
	if escrow.releaseCalls != 0 {
		t.Errorf("a buyer verdict must never release funds, releaseCalls = %d", escrow.releaseCalls)
	}
	order := orderRepo.orders["ORD-1102-PP"]
	if order.Status != domain.StatusResolvedBuyer {
		t.Errorf("order status = %s, want %s", order.Status, domain.StatusResolvedBuyer)
	}
	if order.ClosedAt == nil || !order.ClosedAt.Equal(now) {
		t.Errorf("ClosedAt = %v, want %v", order.ClosedAt, now)
	}
	dispute, err := uc.GetDisputeByID(disputeID)
	if err != nil {
		t.Fatalf("GetDisputeByID: %v", err)
	}
	if dispute.Status != domain.DisputeResolvedBuyer || dispute.ResolvedBy != "admin-1" {
		t.Errorf("dispute = %+v", dispute)
	}
}

func TestResolveDisputeSellerVerdictReleasesFunds(t *testing.T) {
	orderRepo := newFakeOrderRepo(&domain.Order{ID: "ORD-1102-PP", Status: domain.StatusDelivered, SellerID: "seller-1"})
	disputeRepo := newFakeDisputeRepo(orderRepo)
	escrow := &fakeEscrow{}
	uc := newTestUsecase(orderRepo, disputeRepo, escrow, time.Now())

	openTestDispute(t, uc, "ORD-1102-PP")

	err := uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		OrderID:    "ORD-1102-PP",
		Verdict:    domain.VerdictSeller,
		ResolvedBy: "admin-1",
	})
	if err != nil {
		t.Fatalf("ResolveDispute: %v", err)
	}
	if escrow.releaseCalls != 1 || escrow.refundCalls != 0 {
		t.Errorf("releaseCalls = %d, refundCalls = %d", escrow.releaseCalls, escrow.refundCalls)
	}
	if got := orderRepo.orders["ORD-1102-PP"].Status; got != domain.StatusResolvedSeller {
		t.Errorf("order status = %s, want %s", got, domain.StatusResolvedSeller)
	}
}

func TestResolveDisputeUnauthorized(t *testing.T) {
	orderRepo := newFakeOrderRepo(&domain.Order{ID: "ORD-1102-PP", Status: domain.StatusDelivered})
	disputeRepo := newFakeDisputeRepo(orderRepo)
	escrow := &fakeEscrow{}
	uc := newTestUsecase(orderRepo, disputeRepo, escrow, time.Now())

	openTestDispute(t, uc, "ORD-1102-PP")

	err := uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		OrderID:    "ORD-1102-PP",
		Verdict:    domain.VerdictBuyer,
		ResolvedBy: "buyer-1",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if escrow.refundCalls != 0 || escrow.releaseCalls != 0 {
		t.Errorf("no provider call expected, refunds=%d releases=%d", escrow.refundCalls, escrow.releaseCalls)
	}
	if got := orderRepo.orders["ORD-1102-PP"].Status; got != domain.StatusDisputed {
		t.Errorf("order status = %s, want unchanged %s", got, domain.StatusDisputed)
	}
}

func TestResolveDisputeRefundFailureKeepsOrderDisputed(t *testing.T) {
	orderRepo := newFakeOrderRepo(&domain.Order{ID: "ORD-1102-PP", Status: domain.StatusDelivered})
	disputeRepo := newFakeDisputeRepo(orderRepo)
	escrow := &fakeEscrow{refundErr: errors.New("gateway down")}
	uc := newTestUsecase(orderRepo, disputeRepo, escrow, time.Now())

	disputeID := openTestDispute(t, uc, "ORD-1102-PP")

	err := uc.ResolveDispute(&disputedto.ResolveDisputeInput{
		OrderID:    "ORD-1102-PP",
		Verdict:    domain.VerdictBuyer,
		ResolvedBy: "admin-1",
	})
	if !errors.Is(err, domain.ErrRefundFailed) {
		t.Fatalf("expected ErrRefundFailed, got %v", err)
	}
	if got := orderRepo.orders["ORD-1102-PP"].Status; got != domain.StatusDisputed {
		t.Errorf("order status = %s, want unchanged %s", got, domain.StatusDisputed)
	}
	dispute, _ := uc.GetDisputeByID(disputeID)
	if dispute.Status != domain.DisputeUnderReview {
		t.Errorf("dispute status = %s, want unchanged %s", dispute.Status, domain.DisputeUnderReview)
	}
}

func TestResolveStaleDisputes(t *testing.T) {
	opened := time.Date(2023, 11, 10, 10, 0, 0, 0, time.UTC)
	now := time.Date(2023, 11, 23, 10, 0, 0, 0, time.UTC)
	orderRepo := newFakeOrderRepo(&domain.Order{ID: "ORD-1102-PP", Status: domain.StatusDelivered})
	disputeRepo := newFakeDisputeRepo(orderRepo)
	escrow := &fakeEscrow{}

	uc := newTestUsecase(orderRepo, disputeRepo, escrow, opened)
	disputeID := openTestDispute(t, uc, "ORD-1102-PP")

	uc.now = func() time.Time { return now }
	if err := uc.ResolveStaleDisputes(); err != nil {
		t.Fatalf("ResolveStaleDisputes: %v", err)
	}

	dispute, err := uc.GetDisputeByID(disputeID)
	if err != nil {
		t.Fatalf("GetDisputeByID: %v", err)
	}
	if dispute.Status != domain.DisputeResolvedBuyer {
		t.Errorf("dispute status = %s, want %s", dispute.Status, domain.DisputeResolvedBuyer)
	}
	if dispute.ResolvedBy != SystemActor {
		t.Errorf("resolvedBy = %q, want %q", dispute.ResolvedBy, SystemActor)
	}
	if escrow.refundCalls != 1 {
		t.Errorf("refundCalls = %d, want 1", escrow.refundCalls)
	}
	if got := orderRepo.orders["ORD-1102-PP"].Status; got != domain.StatusResolvedBuyer {
		t.Errorf("order status = %s, want %s", got, domain.StatusResolvedBuyer)
	}
}

func TestResolveStaleDisputesSkipsFreshOnes(t *testing.T) {
	now := time.Date(2023, 11, 23, 10, 0, 0, 0, time.UTC)
	orderRepo := newFakeOrderRepo(&domain.Order{ID: "ORD-1102-PP", Status: domain.StatusDelivered})
	disputeRepo := newFakeDisputeRepo(orderRepo)
	escrow := &fakeEscrow{}
	uc := newTestUsecase(orderRepo, disputeRepo, escrow, now)

	disputeID := openTestDispute(t, uc, "ORD-1102-PP")

	if err := uc.ResolveStaleDisputes(); err != nil {
		t.Fatalf("ResolveStaleDisputes: %v", err)
	}
	dispute, _ := uc.GetDisputeByID(disputeID)
	if dispute.Status != domain.DisputeUnderReview {
		t.Errorf("fresh dispute must stay under review, got %s", dispute.Status)
	}
	if escrow.refundCalls != 0 {
		t.Errorf("refundCalls = %d, want 0", escrow.refundCalls)
	}
}
