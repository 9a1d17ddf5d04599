package menustore

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
)

const (
	itemKeyPrefix  = "menu:item:"
	itemIndexKey   = "menu:items"
	specialKeyBase = "menu:special:"
)

// Store is the realtime keyed menu store: one hash per item, a set of item
// ids as the index, and a per-date key holding the daily-special claim.
type Store struct {
	client *redis.Client
}

func NewStore(addr, username, password string, db int) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &Store{client: client}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// ListItems reads every item hash. Ids are sorted so snapshot order is
// stable across calls and devices.
func (s *Store) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	ids, err := s.client.SMembers(ctx, itemIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list item ids: %w", err)
	}
	sort.Strings(ids)
	items := make([]domain.MenuItem, 0, len(ids))
	for _, id := range ids {
		fields, err := s.client.HGetAll(ctx, itemKeyPrefix+id).Result()
		if err != nil {
			return nil, fmt.Errorf("read item %s: %w", id, err)
		}
		if len(fields) == 0 {
			continue
		}
		items = append(items, itemFromFields(id, fields))
	}
	return items, nil
}

// ClaimSpecial claims the special slot for date with SETNX and returns the
// id that holds the claim afterwards, which is itemID only when this call
// won.
func (s *Store) ClaimSpecial(ctx context.Context, date, itemID string) (string, error) {
	key := specialKeyBase + date
	won, err := s.client.SetNX(ctx, key, itemID, 0).Result()
	if err != nil {
		return "", fmt.Errorf("claim special: %w", err)
	}
	if won {
		return itemID, nil
	}
	winner, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("read special claim: %w", err)
	}
	return winner, nil
}

func (s *Store) MarkSpecial(ctx context.Context, itemID, date string) error {
	err := s.client.HSet(ctx, itemKeyPrefix+itemID, "is_special", "1", "special_date", date).Err()
	if err != nil {
		return fmt.Errorf("mark special %s: %w", itemID, err)
	}
	return nil
}

func (s *Store) ClearSpecial(ctx context.Context, itemID string) error {
	err := s.client.HSet(ctx, itemKeyPrefix+itemID, "is_special", "0", "special_date", "").Err()
	if err != nil {
		return fmt.Errorf("clear special %s: %w", itemID, err)
	}
	return nil
}

// AddItem stores a new item hash and indexes it. The id is minted here when
// the item does not carry one.
func (s *Store) AddItem(ctx context.Context, item *domain.MenuItem) (string, error) {
	id := item.ID
	if id == "" {
		id = uuid.NewString()
	}
	fields := map[string]interface{}{
		"name":         item.Name,
		"price":        strconv.FormatFloat(item.Price, 'f', 2, 64),
		"is_veg":       boolField(item.IsVeg),
		"is_special":   boolField(item.IsSpecial),
		"special_date": item.SpecialDate,
		"image_url":    item.ImageURL,
		"description":  item.Description,
	}
	if err := s.client.HSet(ctx, itemKeyPrefix+id, fields).Err(); err != nil {
		return "", fmt.Errorf("write item: %w", err)
	}
	if err := s.client.SAdd(ctx, itemIndexKey, id).Err(); err != nil {
		return "", fmt.Errorf("index item: %w", err)
	}
	return id, nil
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func itemFromFields(id string, fields map[string]string) domain.MenuItem {
	price, _ := strconv.ParseFloat(fields["price"], 64)
	return domain.MenuItem{
		ID:          id,
		Name:        fields["name"],
		Price:       price,
		IsVeg:       fields["is_veg"] == "1",
		IsSpecial:   fields["is_special"] == "1",
		SpecialDate: fields["special_date"],
		ImageURL:    fields["image_url"],
		Description: fields["description"],
	}
}
