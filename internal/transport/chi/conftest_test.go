package chi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain"
	healthuc "github.com/shelfwise/shelfwise/internal/usecase/health"
	ingestuc "github.com/shelfwise/shelfwise/internal/usecase/ingest"
	popularityuc "github.com/shelfwise/shelfwise/internal/usecase/popularity"
	recommenduc "github.com/shelfwise/shelfwise/internal/usecase/recommend"
)

// fakeBackend is an in-memory stand-in for the whole repository layer.
// It backs every usecase service so handler tests run the real services
// end to end.
type fakeBackend struct {
	items        map[string]domain.CatalogItem
	itemOrder    []string
	interactions map[string][]domain.Interaction
	leaderboard  []string
	pingErr      error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		items:        make(map[string]domain.CatalogItem),
		interactions: make(map[string][]domain.Interaction),
	}
}

func (f *fakeBackend) addItem(item domain.CatalogItem) {
	if _, ok := f.items[item.ID]; !ok {
		f.itemOrder = append(f.itemOrder, item.ID)
	}
	f.items[item.ID] = item
}

func (f *fakeBackend) CandidateItems(context.Context) ([]domain.CatalogItem, error) {
	out := make([]domain.CatalogItem, 0, len(f.itemOrder))
	for _, id := range f.itemOrder {
		item, ok := f.items[id]
		if !ok || item.Withdrawn {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeBackend) PrimaryAuthor(_ context.Context, itemID string) (string, error) {
	return f.items[itemID].AuthorName, nil
}

func (f *fakeBackend) ClassificationCodes(_ context.Context, itemIDs []string) ([]string, error) {
	codes := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		codes[i] = f.items[id].ClassificationCode
	}
	return codes, nil
}

func (f *fakeBackend) ItemsByID(_ context.Context, ids []string) ([]domain.CatalogItem, error) {
	out := make([]domain.CatalogItem, 0, len(ids))
	for _, id := range ids {
		item, ok := f.items[id]
		if !ok || item.Withdrawn {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeBackend) ReaderExists(_ context.Context, readerID string) (bool, error) {
	_, ok := f.interactions[readerID]
	return ok, nil
}

func (f *fakeBackend) ReaderInteractions(_ context.Context, readerID string) ([]domain.Interaction, error) {
	return f.interactions[readerID], nil
}

func (f *fakeBackend) Upsert(_ context.Context, item domain.CatalogItem) error {
	f.addItem(item)
	return nil
}

func (f *fakeBackend) UpsertBatch(_ context.Context, items []domain.CatalogItem) error {
	for _, item := range items {
		f.addItem(item)
	}
	return nil
}

func (f *fakeBackend) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeBackend) UpsertInteraction(_ context.Context, readerID string, in domain.Interaction) error {
	f.interactions[readerID] = append(f.interactions[readerID], in)
	return nil
}

func (f *fakeBackend) RecordBorrow(_ context.Context, itemID string) error {
	f.leaderboard = append(f.leaderboard, itemID)
	return nil
}

func (f *fakeBackend) TopItems(_ context.Context, offset, count int) ([]string, error) {
	if offset >= len(f.leaderboard) {
		return nil, nil
	}
	end := offset + count
	if end > len(f.leaderboard) {
		end = len(f.leaderboard)
	}
	return f.leaderboard[offset:end], nil
}

func (f *fakeBackend) Count(context.Context) (int, error) {
	return len(f.leaderboard), nil
}

func (f *fakeBackend) Ping(context.Context) error {
	return f.pingErr
}

// newTestRouter wires the real services over the fake backend.
func newTestRouter(backend *fakeBackend) http.Handler {
	log := zap.NewNop()

	popularSvc := popularityuc.New(backend, backend, log)
	recommendSvc := recommenduc.New(backend, backend, popularSvc, log)
	ingestSvc := ingestuc.New(backend, backend, backend, log)
	healthSvc := healthuc.New(backend)

	server := NewServer(recommendSvc, popularSvc, ingestSvc, healthSvc, log)

	r := chi.NewRouter()
	server.Routes(r)
	return r
}
