// Package service provides the games service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"palpite/internal/core/lotto"
	"palpite/internal/modkit/repokit"
	perr "palpite/internal/platform/errors"
	"palpite/internal/services/games/domain"
	"palpite/internal/services/games/repo"
)

// Service implements domain.GamesPort against the PG repo
type Service struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[repo.Storage]

	// now is swappable for tests
	now func() time.Time
}

// New constructs a games service bound to a TxRunner
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Service {
	return &Service{DB: db, Repo: binder, now: time.Now}
}

// Save implements domain.GamesPort
// the batch goes through one transaction so a partial save never surfaces
func (s *Service) Save(ctx context.Context, in domain.SaveInput) ([]domain.SavedGame, error) {
	saved := make([]domain.SavedGame, 0, len(in.Games))
	at := s.now().UTC()
	for _, xs := range in.Games {
		ns, err := lotto.NewNumbers(xs)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid game")
		}
		saved = append(saved, domain.SavedGame{
			ID:        uuid.New(),
			Numbers:   ns,
			CreatedAt: at,
		})
	}

	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Repo.Bind(q)
		for _, g := range saved {
			if err := st.Insert(ctx, g); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// List implements domain.GamesPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.SavedGame, error) {
	return s.Repo.Bind(s.DB).List(ctx, in.PinnedOnly)
}

// SetPinned implements domain.GamesPort
func (s *Service) SetPinned(ctx context.Context, in domain.PinInput) (domain.SavedGame, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return domain.SavedGame{}, perr.InvalidArgf("malformed game id")
	}
	g, err := s.Repo.Bind(s.DB).SetPinned(ctx, id, in.Pinned)
	if err != nil {
		return domain.SavedGame{}, err
	}
	if g == nil {
		return domain.SavedGame{}, perr.NotFoundf("game %s not found", id)
	}
	return *g, nil
}

// Delete implements domain.GamesPort
func (s *Service) Delete(ctx context.Context, in domain.DeleteInput) error {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return perr.InvalidArgf("malformed game id")
	}
	ok, err := s.Repo.Bind(s.DB).Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return perr.NotFoundf("game %s not found", id)
	}
	return nil
}
