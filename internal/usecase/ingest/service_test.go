package ingest

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain"
)

type mockCatalogWriter struct {
	upsertFn      func(ctx context.Context, item domain.CatalogItem) error
	upsertBatchFn func(ctx context.Context, items []domain.CatalogItem) error
	deleteFn      func(ctx context.Context, id string) error
}

func (m *mockCatalogWriter) Upsert(ctx context.Context, item domain.CatalogItem) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, item)
	}
	return nil
}

func (m *mockCatalogWriter) UpsertBatch(ctx context.Context, items []domain.CatalogItem) error {
	if m.upsertBatchFn != nil {
		return m.upsertBatchFn(ctx, items)
	}
	return nil
}

func (m *mockCatalogWriter) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockActivityWriter struct {
	calls []domain.Interaction
	err   error
}

func (m *mockActivityWriter) UpsertInteraction(_ context.Context, _ string, in domain.Interaction) error {
	m.calls = append(m.calls, in)
	return m.err
}

type mockBorrowLedger struct {
	recorded []string
	err      error
}

func (m *mockBorrowLedger) RecordBorrow(_ context.Context, itemID string) error {
	m.recorded = append(m.recorded, itemID)
	return m.err
}

func newService(c *mockCatalogWriter, a *mockActivityWriter, b *mockBorrowLedger) *Service {
	return New(c, a, b, zap.NewNop())
}

func TestUpsertItem_RequiresID(t *testing.T) {
	svc := newService(&mockCatalogWriter{}, &mockActivityWriter{}, &mockBorrowLedger{})

	err := svc.UpsertItem(context.Background(), domain.CatalogItem{Title: "Dune"})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestUpsertItem_RequiresTitleOrAuthor(t *testing.T) {
	svc := newService(&mockCatalogWriter{}, &mockActivityWriter{}, &mockBorrowLedger{})

	err := svc.UpsertItem(context.Background(), domain.CatalogItem{ID: "x"})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestUpsertItem_OK(t *testing.T) {
	var stored domain.CatalogItem
	c := &mockCatalogWriter{
		upsertFn: func(_ context.Context, item domain.CatalogItem) error {
			stored = item
			return nil
		},
	}
	svc := newService(c, &mockActivityWriter{}, &mockBorrowLedger{})

	item := domain.CatalogItem{ID: "x", Title: "Dune"}
	if err := svc.UpsertItem(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != item {
		t.Errorf("stored = %+v, want %+v", stored, item)
	}
}

func TestUpsertItems_Batch(t *testing.T) {
	var stored []domain.CatalogItem
	c := &mockCatalogWriter{
		upsertBatchFn: func(_ context.Context, items []domain.CatalogItem) error {
			stored = items
			return nil
		},
	}
	svc := newService(c, &mockActivityWriter{}, &mockBorrowLedger{})

	items := []domain.CatalogItem{
		{ID: "a", Title: "Dune"},
		{ID: "b", AuthorName: "Lem"},
	}
	if err := svc.UpsertItems(context.Background(), items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 2 {
		t.Errorf("stored %d items, want 2", len(stored))
	}
}

func TestUpsertItems_RejectsWholeBatchOnInvalidItem(t *testing.T) {
	called := false
	c := &mockCatalogWriter{
		upsertBatchFn: func(_ context.Context, _ []domain.CatalogItem) error {
			called = true
			return nil
		},
	}
	svc := newService(c, &mockActivityWriter{}, &mockBorrowLedger{})

	items := []domain.CatalogItem{
		{ID: "a", Title: "Dune"},
		{ID: "b"},
	}
	err := svc.UpsertItems(context.Background(), items)
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if called {
		t.Error("invalid batch must not reach the store")
	}
}

func TestUpsertItems_EmptyBatchRejected(t *testing.T) {
	svc := newService(&mockCatalogWriter{}, &mockActivityWriter{}, &mockBorrowLedger{})

	err := svc.UpsertItems(context.Background(), nil)
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRecordInteraction_Validation(t *testing.T) {
	svc := newService(&mockCatalogWriter{}, &mockActivityWriter{}, &mockBorrowLedger{})

	cases := []struct {
		name     string
		readerID string
		in       domain.Interaction
	}{
		{"missing reader", "", domain.Interaction{ItemID: "x"}},
		{"missing item", "r1", domain.Interaction{}},
		{"rating too high", "r1", domain.Interaction{ItemID: "x", Rating: 6}},
		{"negative rating", "r1", domain.Interaction{ItemID: "x", Rating: -1}},
		{"negative counter", "r1", domain.Interaction{ItemID: "x", BorrowCount: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.RecordInteraction(context.Background(), tc.readerID, tc.in)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestRecordInteraction_BorrowBumpsLeaderboard(t *testing.T) {
	activity := &mockActivityWriter{}
	borrows := &mockBorrowLedger{}
	svc := newService(&mockCatalogWriter{}, activity, borrows)

	in := domain.Interaction{ItemID: "x", Borrowed: true, BorrowCount: 1}
	if err := svc.RecordInteraction(context.Background(), "r1", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activity.calls) != 1 {
		t.Fatalf("expected 1 interaction write, got %d", len(activity.calls))
	}
	if len(borrows.recorded) != 1 || borrows.recorded[0] != "x" {
		t.Errorf("leaderboard records = %v", borrows.recorded)
	}
}

func TestRecordInteraction_NoBorrowSkipsLeaderboard(t *testing.T) {
	borrows := &mockBorrowLedger{}
	svc := newService(&mockCatalogWriter{}, &mockActivityWriter{}, borrows)

	in := domain.Interaction{ItemID: "x", Favorite: true}
	if err := svc.RecordInteraction(context.Background(), "r1", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(borrows.recorded) != 0 {
		t.Errorf("leaderboard records = %v, want none", borrows.recorded)
	}
}

func TestRecordInteraction_ActivityErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	activity := &mockActivityWriter{err: boom}
	borrows := &mockBorrowLedger{}
	svc := newService(&mockCatalogWriter{}, activity, borrows)

	in := domain.Interaction{ItemID: "x", Borrowed: true}
	if err := svc.RecordInteraction(context.Background(), "r1", in); !errors.Is(err, boom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
	if len(borrows.recorded) != 0 {
		t.Error("leaderboard must not be bumped when the interaction write fails")
	}
}
