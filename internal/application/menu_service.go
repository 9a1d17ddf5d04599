package application

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/ports"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// MenuService loads the canonical menu and keeps a special of the day
// designated.
type MenuService struct {
	menu   ports.MenuStorePort
	logger *zap.Logger
	now    func() time.Time
	pick   func(n int) int
}

func NewMenuService(menu ports.MenuStorePort, logger *zap.Logger) *MenuService {
	return &MenuService{menu: menu, logger: logger, now: time.Now, pick: rand.Intn}
}

// FetchMenu reads the whole menu. On failure the caller gets ErrRead and no
// items; the cached list is always replaced wholesale, never kept stale.
func (s *MenuService) FetchMenu(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.menu.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: menu: %v", domain.ErrRead, err)
	}
	return items, nil
}

// EnsureDailySpecial makes sure exactly one item is the special for today.
// An item already flagged for today's date is adopted without a write
// (first in snapshot order wins). Otherwise one item is picked uniformly at
// random and claimed through the store's conditional write; losing the claim
// adopts the winner instead. Items flagged for a previous day are cleared
// when a new special is claimed.
func (s *MenuService) EnsureDailySpecial(ctx context.Context) (*domain.MenuItem, error) {
	today := s.now().Format(dateLayout)
	items, err := s.menu.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: menu: %v", domain.ErrRead, err)
	}
	for i := range items {
		if items[i].SpecialFor(today) {
			return &items[i], nil
		}
	}
	if len(items) == 0 {
		return nil, nil
	}

	chosen := items[s.pick(len(items))]
	winnerID, err := s.menu.ClaimSpecial(ctx, today, chosen.ID)
	if err != nil {
		return nil, fmt.Errorf("claim special: %w", err)
	}
	if winnerID != chosen.ID {
		// Another device claimed first; adopt its pick without writing.
		for i := range items {
			if items[i].ID == winnerID {
				adopted := items[i]
				adopted.IsSpecial = true
				adopted.SpecialDate = today
				return &adopted, nil
			}
		}
		s.logger.Warn("special claim winner not in menu snapshot", zap.String("item_id", winnerID))
		return nil, nil
	}

	for i := range items {
		if items[i].IsSpecial && items[i].SpecialDate != today {
			if cerr := s.menu.ClearSpecial(ctx, items[i].ID); cerr != nil {
				s.logger.Warn("failed to clear stale special",
					zap.String("item_id", items[i].ID), zap.Error(cerr))
			}
		}
	}
	if err := s.menu.MarkSpecial(ctx, chosen.ID, today); err != nil {
		return nil, fmt.Errorf("mark special: %w", err)
	}
	chosen.IsSpecial = true
	chosen.SpecialDate = today
	s.logger.Info("new daily special set", zap.String("item", chosen.Name), zap.String("date", today))
	return &chosen, nil
}
