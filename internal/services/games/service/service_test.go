package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"palpite/internal/modkit/repokit"
	perr "palpite/internal/platform/errors"
	"palpite/internal/platform/store"
	"palpite/internal/services/games/domain"
	"palpite/internal/services/games/repo"
)

// fakeDB satisfies TxRunner; the query surface is never used because the
// storage fake bypasses SQL entirely
type fakeDB struct{}

func (fakeDB) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	var z store.CommandTag
	return z, nil
}
func (fakeDB) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (fakeDB) QueryRow(context.Context, string, ...any) store.Row        { return nil }
func (db fakeDB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	return fn(db)
}

// memStorage is an in-memory repo.Storage
type memStorage struct {
	games map[uuid.UUID]domain.SavedGame
	order []uuid.UUID
}

func newMem() *memStorage {
	return &memStorage{games: map[uuid.UUID]domain.SavedGame{}}
}

func (m *memStorage) Insert(_ context.Context, g domain.SavedGame) error {
	m.games[g.ID] = g
	m.order = append(m.order, g.ID)
	return nil
}

func (m *memStorage) List(_ context.Context, pinnedOnly bool) ([]domain.SavedGame, error) {
	var out []domain.SavedGame
	for _, id := range m.order {
		g := m.games[id]
		if pinnedOnly && !g.Pinned {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (m *memStorage) SetPinned(_ context.Context, id uuid.UUID, pinned bool) (*domain.SavedGame, error) {
	g, ok := m.games[id]
	if !ok {
		return nil, nil
	}
	g.Pinned = pinned
	m.games[id] = g
	return &g, nil
}

func (m *memStorage) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.games[id]; !ok {
		return false, nil
	}
	delete(m.games, id)
	return true, nil
}

func newService(mem *memStorage) *Service {
	binder := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return mem })
	return New(fakeDB{}, binder)
}

func game(lo int) []int {
	xs := make([]int, 15)
	for i := range xs {
		xs[i] = lo + i
	}
	return xs
}

func TestSaveAssignsIDs(t *testing.T) {
	mem := newMem()
	svc := newService(mem)

	saved, err := svc.Save(context.Background(), domain.SaveInput{Games: [][]int{game(1), game(5)}})
	if err != nil {
		t.Fatal(err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved %d games, want 2", len(saved))
	}
	if saved[0].ID == saved[1].ID {
		t.Fatalf("duplicate ids assigned")
	}
	if len(mem.games) != 2 {
		t.Fatalf("storage holds %d games, want 2", len(mem.games))
	}
}

func TestSaveRejectsInvalidGame(t *testing.T) {
	mem := newMem()
	svc := newService(mem)

	_, err := svc.Save(context.Background(), domain.SaveInput{Games: [][]int{{1, 2, 3}}})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("got %v, want invalid argument", err)
	}
	if len(mem.games) != 0 {
		t.Fatalf("invalid batch must not persist anything")
	}
}

func TestListPinnedOnly(t *testing.T) {
	mem := newMem()
	svc := newService(mem)

	saved, err := svc.Save(context.Background(), domain.SaveInput{Games: [][]int{game(1), game(5)}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SetPinned(context.Background(), domain.PinInput{ID: saved[0].ID.String(), Pinned: true}); err != nil {
		t.Fatal(err)
	}

	pinned, err := svc.List(context.Background(), domain.ListInput{PinnedOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(pinned) != 1 || pinned[0].ID != saved[0].ID {
		t.Fatalf("pinned list = %+v, want only %s", pinned, saved[0].ID)
	}
}

func TestSetPinnedUnknownID(t *testing.T) {
	svc := newService(newMem())
	_, err := svc.SetPinned(context.Background(), domain.PinInput{ID: uuid.NewString(), Pinned: true})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestSetPinnedMalformedID(t *testing.T) {
	svc := newService(newMem())
	_, err := svc.SetPinned(context.Background(), domain.PinInput{ID: "nope"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("got %v, want invalid argument", err)
	}
}

func TestDelete(t *testing.T) {
	mem := newMem()
	svc := newService(mem)

	saved, err := svc.Save(context.Background(), domain.SaveInput{Games: [][]int{game(1)}})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(context.Background(), domain.DeleteInput{ID: saved[0].ID.String()}); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(context.Background(), domain.DeleteInput{ID: saved[0].ID.String()}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("second delete got %v, want not found", err)
	}
}
