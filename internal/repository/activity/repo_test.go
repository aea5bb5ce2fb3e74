package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfwise/shelfwise/internal/domain"
)

func TestReaderExists(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		s := &mockStore{
			existsFn: func(_ context.Context, key string) (bool, error) {
				if key != "shelfwise:reader:r1" {
					t.Errorf("key = %q", key)
				}
				return true, nil
			},
		}
		exists, err := New(s).ReaderExists(context.Background(), "r1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected reader to exist")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		exists, err := New(&mockStore{}).ReaderExists(context.Background(), "ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected reader to be unknown")
		}
	})

	t.Run("store error", func(t *testing.T) {
		boom := errors.New("connection reset")
		s := &mockStore{
			existsFn: func(_ context.Context, _ string) (bool, error) {
				return false, boom
			},
		}
		if _, err := New(s).ReaderExists(context.Background(), "r1"); !errors.Is(err, boom) {
			t.Errorf("expected wrapped store error, got %v", err)
		}
	})
}

func TestUpsertInteraction_RegistersReader(t *testing.T) {
	var keys []string
	var gotFields map[string]string
	s := &mockStore{
		hsetFn: func(_ context.Context, key string, fields map[string]string) error {
			keys = append(keys, key)
			gotFields = fields
			return nil
		},
	}
	repo := New(s)

	in := domain.Interaction{ItemID: "item-1", Borrowed: true, BorrowCount: 2, Rating: 4}
	if err := repo.UpsertInteraction(context.Background(), "r1", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(keys) != 2 || keys[0] != "shelfwise:reader:r1" {
		t.Errorf("keys = %v, want the registration marker first", keys)
	}
	if keys[1] != "shelfwise:reader:r1:interaction:item-1" {
		t.Errorf("hash key = %q", keys[1])
	}
	if gotFields[fieldBorrowed] != "1" || gotFields[fieldBorrowCount] != "2" || gotFields[fieldRating] != "4" {
		t.Errorf("fields = %v", gotFields)
	}
	if gotFields[fieldFavorite] != "0" || gotFields[fieldReserved] != "0" {
		t.Errorf("cleared flags must be written explicitly, got %v", gotFields)
	}
}

func TestUpsertInteraction_RecordsReturn(t *testing.T) {
	s := newMergingStore()
	repo := New(s)

	borrow := domain.Interaction{ItemID: "item-1", Borrowed: true, BorrowCount: 1}
	if err := repo.UpsertInteraction(context.Background(), "r1", borrow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	returned := domain.Interaction{ItemID: "item-1", Borrowed: false, BorrowCount: 1}
	if err := repo.UpsertInteraction(context.Background(), "r1", returned); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.ReaderInteractions(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 interaction, got %d", len(got))
	}
	if got[0].Borrowed {
		t.Error("Borrowed still set after the return was recorded")
	}
	if got[0].BorrowCount != 1 {
		t.Errorf("BorrowCount = %d, want 1", got[0].BorrowCount)
	}
}

func TestReaderInteractions(t *testing.T) {
	s := &mockStore{
		scanFn: func(_ context.Context, pattern string) ([]string, error) {
			if pattern != "shelfwise:reader:r1:interaction:*" {
				t.Errorf("pattern = %q", pattern)
			}
			return []string{
				"shelfwise:reader:r1:interaction:a",
				"shelfwise:reader:r1:interaction:b",
			}, nil
		},
		hgetAllMultiFn: func(_ context.Context, _ []string) ([]map[string]string, error) {
			return []map[string]string{
				{fieldBorrowed: "1", fieldBorrowCount: "3"},
				{fieldFavorite: "1", fieldRating: "5"},
			}, nil
		},
	}
	repo := New(s)

	got, err := repo.ReaderInteractions(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 interactions, got %d", len(got))
	}
	if got[0].ItemID != "a" || !got[0].Borrowed || got[0].BorrowCount != 3 {
		t.Errorf("interaction a = %+v", got[0])
	}
	if got[1].ItemID != "b" || !got[1].Favorite || got[1].Rating != 5 {
		t.Errorf("interaction b = %+v", got[1])
	}
}

func TestReaderInteractions_NoHistory(t *testing.T) {
	got, err := New(&mockStore{}).ReaderInteractions(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no interactions, got %d", len(got))
	}
}

func TestHashFieldsRoundTrip(t *testing.T) {
	in := domain.Interaction{
		ItemID:       "x",
		Borrowed:     true,
		BorrowCount:  2,
		Reserved:     true,
		ReserveCount: 1,
		Favorite:     true,
		Rating:       5,
	}
	if got := parseHashFields("x", buildHashFields(in)); got != in {
		t.Errorf("round trip = %+v, want %+v", got, in)
	}
}

func TestParseHashFields_MalformedCounter(t *testing.T) {
	got := parseHashFields("x", map[string]string{fieldBorrowCount: "many"})
	if got.BorrowCount != 0 {
		t.Errorf("BorrowCount = %d, want 0", got.BorrowCount)
	}
}
