package service

import (
	"context"
	"fmt"

	"arcade-royale/internal/constants"
	"arcade-royale/internal/domain"
	"arcade-royale/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type CatalogService struct {
	repo   *repository.ScoreRepository
	logger zerolog.Logger
}

func NewCatalogService(repo *repository.ScoreRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// GameSummary is a catalog entry plus the game's current best record.
// TopScore is nil when nobody has a score yet, and always nil for
// quickmath, which the submission API does not accept.
type GameSummary struct {
	domain.GameInfo
	TopScore *domain.ScoreRecord `json:"topScore,omitempty"`
}

// Games returns the full game listing with each game's top score,
// fetched concurrently.
func (s *CatalogService) Games(ctx context.Context) ([]GameSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	catalog := domain.Catalog()
	summaries := make([]GameSummary, len(catalog))

	valid := map[domain.GameID]bool{}
	for _, id := range domain.ValidGameIDs {
		valid[id] = true
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, info := range catalog {
		i, info := i, info
		summaries[i].GameInfo = info
		if !valid[info.ID] {
			continue
		}
		g.Go(func() error {
			top, err := s.repo.TopForGame(ctx, info.ID, 1)
			if err != nil {
				return fmt.Errorf("failed to load top score for %s: %w", info.ID, err)
			}
			// each goroutine owns its own slice slot
			if len(top) > 0 {
				summaries[i].TopScore = &top[0]
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug().Int("games", len(summaries)).Msg("game catalog fetched")
	return summaries, nil
}
