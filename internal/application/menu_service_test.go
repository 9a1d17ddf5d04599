package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/ports"
)

func fixedMenuService(menu ports.MenuStorePort, pick int) *MenuService {
	svc := NewMenuService(menu, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	svc.pick = func(n int) int { return pick % n }
	return svc
}

const today = "2026-08-29"

func TestMenuService_FetchMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMenu := ports.NewMockMenuStorePort(ctrl)
	svc := fixedMenuService(mockMenu, 0)

	t.Run("Success returns the snapshot", func(t *testing.T) {
		mockMenu.EXPECT().ListItems(gomock.Any()).
			Return([]domain.MenuItem{{ID: "a"}, {ID: "b"}}, nil)
		items, err := svc.FetchMenu(context.Background())
		if err != nil {
			t.Fatalf("FetchMenu() unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("FetchMenu() returned %d items, want 2", len(items))
		}
	})

	t.Run("Read failure returns kind and no items", func(t *testing.T) {
		mockMenu.EXPECT().ListItems(gomock.Any()).Return(nil, errors.New("network down"))
		items, err := svc.FetchMenu(context.Background())
		if !errors.Is(err, domain.ErrRead) {
			t.Errorf("FetchMenu() error = %v, want kind %v", err, domain.ErrRead)
		}
		if items != nil {
			t.Errorf("FetchMenu() items = %v, want nil on failure", items)
		}
	})
}

func TestMenuService_EnsureDailySpecial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMenu := ports.NewMockMenuStorePort(ctrl)

	menu := []domain.MenuItem{
		{ID: "a", Name: "Masala Dosa", Price: 60},
		{ID: "b", Name: "Veg Thali", Price: 120},
		{ID: "c", Name: "Paneer Roll", Price: 80},
	}

	t.Run("Adopts todays flagged item without writing", func(t *testing.T) {
		svc := fixedMenuService(mockMenu, 0)
		flagged := append([]domain.MenuItem(nil), menu...)
		flagged[1].IsSpecial = true
		flagged[1].SpecialDate = today
		// Repeated calls stay read-only.
		mockMenu.EXPECT().ListItems(gomock.Any()).Return(flagged, nil).Times(2)
		for i := 0; i < 2; i++ {
			special, err := svc.EnsureDailySpecial(context.Background())
			if err != nil {
				t.Fatalf("EnsureDailySpecial() unexpected error: %v", err)
			}
			if special == nil || special.ID != "b" {
				t.Errorf("EnsureDailySpecial() = %v, want item b", special)
			}
		}
	})

	t.Run("No special claims one item with exactly one write", func(t *testing.T) {
		svc := fixedMenuService(mockMenu, 2)
		mockMenu.EXPECT().ListItems(gomock.Any()).Return(append([]domain.MenuItem(nil), menu...), nil)
		mockMenu.EXPECT().ClaimSpecial(gomock.Any(), today, "c").Return("c", nil)
		mockMenu.EXPECT().MarkSpecial(gomock.Any(), "c", today).Return(nil).Times(1)
		special, err := svc.EnsureDailySpecial(context.Background())
		if err != nil {
			t.Fatalf("EnsureDailySpecial() unexpected error: %v", err)
		}
		if special == nil || special.ID != "c" || !special.SpecialFor(today) {
			t.Errorf("EnsureDailySpecial() = %+v, want item c flagged for today", special)
		}
	})

	t.Run("Lost claim adopts the winner without writing", func(t *testing.T) {
		svc := fixedMenuService(mockMenu, 0)
		mockMenu.EXPECT().ListItems(gomock.Any()).Return(append([]domain.MenuItem(nil), menu...), nil)
		mockMenu.EXPECT().ClaimSpecial(gomock.Any(), today, "a").Return("b", nil)
		special, err := svc.EnsureDailySpecial(context.Background())
		if err != nil {
			t.Fatalf("EnsureDailySpecial() unexpected error: %v", err)
		}
		if special == nil || special.ID != "b" {
			t.Errorf("EnsureDailySpecial() = %v, want claim winner b", special)
		}
	})

	t.Run("Stale flag from yesterday is cleared and replaced", func(t *testing.T) {
		svc := fixedMenuService(mockMenu, 0)
		stale := append([]domain.MenuItem(nil), menu...)
		stale[2].IsSpecial = true
		stale[2].SpecialDate = "2026-08-28"
		mockMenu.EXPECT().ListItems(gomock.Any()).Return(stale, nil)
		mockMenu.EXPECT().ClaimSpecial(gomock.Any(), today, "a").Return("a", nil)
		mockMenu.EXPECT().ClearSpecial(gomock.Any(), "c").Return(nil)
		mockMenu.EXPECT().MarkSpecial(gomock.Any(), "a", today).Return(nil)
		special, err := svc.EnsureDailySpecial(context.Background())
		if err != nil {
			t.Fatalf("EnsureDailySpecial() unexpected error: %v", err)
		}
		if special == nil || special.ID != "a" {
			t.Errorf("EnsureDailySpecial() = %v, want freshly claimed a", special)
		}
	})

	t.Run("Empty menu selects nothing", func(t *testing.T) {
		svc := fixedMenuService(mockMenu, 0)
		mockMenu.EXPECT().ListItems(gomock.Any()).Return(nil, nil)
		special, err := svc.EnsureDailySpecial(context.Background())
		if err != nil {
			t.Fatalf("EnsureDailySpecial() unexpected error: %v", err)
		}
		if special != nil {
			t.Errorf("EnsureDailySpecial() = %v, want nil for empty menu", special)
		}
	})

	t.Run("Read failure selects nothing", func(t *testing.T) {
		svc := fixedMenuService(mockMenu, 0)
		mockMenu.EXPECT().ListItems(gomock.Any()).Return(nil, errors.New("network down"))
		special, err := svc.EnsureDailySpecial(context.Background())
		if !errors.Is(err, domain.ErrRead) {
			t.Errorf("EnsureDailySpecial() error = %v, want kind %v", err, domain.ErrRead)
		}
		if special != nil {
			t.Errorf("EnsureDailySpecial() = %v, want nil on read failure", special)
		}
	})
}
