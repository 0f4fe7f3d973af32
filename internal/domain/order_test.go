package domain

import (
	"testing"
	"time"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusCreated, StatusEscrowLocked, true},
		{StatusCreated, StatusCancelled, true},
		{StatusCreated, StatusDelivered, false},
		{StatusEscrowLocked, StatusDelivered, true},
		{StatusEscrowLocked, StatusCancelled, true},
		{StatusEscrowLocked, StatusCompleted, false},
		{StatusDelivered, StatusCompleted, true},
		{StatusDelivered, StatusDisputed, true},
		{StatusDelivered, StatusCancelled, false},
		{StatusDisputed, StatusResolvedBuyer, true},
		{StatusDisputed, StatusResolvedSeller, true},
		{StatusDisputed, StatusCompleted, false},
		{StatusCompleted, StatusDisputed, false},
		{StatusCancelled, StatusCreated, false},
		{StatusResolvedBuyer, StatusCompleted, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTerminal(t *testing.T) {
	terminal := []OrderStatus{StatusCompleted, StatusCancelled, StatusResolvedBuyer, StatusResolvedSeller}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	active := []OrderStatus{StatusCreated, StatusEscrowLocked, StatusDelivered, StatusDisputed}
	for _, s := range active {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestNextStatusesTerminalEmpty(t *testing.T) {
	if got := StatusCompleted.NextStatuses(); len(got) != 0 {
		t.Errorf("expected no next statuses for COMPLETED, got %v", got)
	}
}

func TestOrderFilterMatches(t *testing.T) {
	now := time.Date(2023, 11, 23, 12, 0, 0, 0, time.UTC)
	order := &Order{
		ID:           "ORD-7829-XJ",
		ProductTitle: "Steam Gift Card $50",
		SellerName:   "KeyMasterPro",
		Status:       StatusDelivered,
		CreatedAt:    now.Add(-48 * time.Hour),
	}

	cases := []struct {
		name   string
		filter OrderFilter
		want   bool
	}{
		{"empty filter", OrderFilter{}, true},
		{"status match", OrderFilter{Status: StatusDelivered}, true},
		{"status mismatch", OrderFilter{Status: StatusCompleted}, false},
		{"search by id fragment", OrderFilter{Search: "7829"}, true},
		{"search by title case-insensitive", OrderFilter{Search: "steam gift"}, true},
		{"search by seller name", OrderFilter{Search: "keymaster"}, true},
		{"search no match", OrderFilter{Search: "minecraft"}, false},
		{"window includes", OrderFilter{Window: Window7Days}, true},
		{"all fields must match", OrderFilter{Status: StatusDelivered, Search: "minecraft"}, false},
		{"explicit range includes", OrderFilter{
			DateFrom: now.Add(-72 * time.Hour),
			DateTo:   now,
		}, true},
		{"explicit range excludes", OrderFilter{
			DateFrom: now.Add(-24 * time.Hour),
			DateTo:   now,
		}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.filter.Matches(order, now); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestOrderFilterWindowCutoff(t *testing.T) {
	now := time.Date(2023, 11, 23, 12, 0, 0, 0, time.UTC)
	old := &Order{ID: "ORD-0001-AA", CreatedAt: now.Add(-10 * 24 * time.Hour)}

	if (OrderFilter{Window: Window7Days}).Matches(old, now) {
		t.Error("order older than 7 days should not match the 7d window")
	}
	if !(OrderFilter{Window: Window30Days}).Matches(old, now) {
		t.Error("order within 30 days should match the 30d window")
	}
}

func TestOrderFilterExplicitRangeBeatsWindow(t *testing.T) {
	now := time.Date(2023, 11, 23, 12, 0, 0, 0, time.UTC)
	old := &Order{ID: "ORD-0002-BB", CreatedAt: now.Add(-20 * 24 * time.Hour)}

	// The 7d window alone would exclude this order; an explicit range wins.
	filter := OrderFilter{
		Window:   Window7Days,
		DateFrom: now.Add(-30 * 24 * time.Hour),
		DateTo:   now,
	}
	if !filter.Matches(old, now) {
		t.Error("explicit date range should take precedence over the window")
	}
}
