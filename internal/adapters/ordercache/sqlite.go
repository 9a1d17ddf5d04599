package ordercache

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	local_id    INTEGER PRIMARY KEY AUTOINCREMENT,
	item_id     TEXT NOT NULL,
	name        TEXT NOT NULL,
	price       REAL NOT NULL,
	is_veg      INTEGER NOT NULL DEFAULT 0,
	image_url   TEXT NOT NULL DEFAULT '',
	sync_status TEXT NOT NULL DEFAULT 'pending',
	placed_at   TIMESTAMP NOT NULL
);`

// Cache is the embedded per-device order log. Every insert is a new row;
// there is no unique constraint on item_id, so repeat orders of the same
// menu item persist as distinct records.
type Cache struct {
	db *sqlx.DB
}

// Open opens (or creates) the cache database at path. Use ":memory:" for an
// ephemeral cache in tests.
func Open(path string) (*Cache, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open order cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init order cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) Insert(ctx context.Context, rec *domain.OrderRecord) (int64, error) {
	res, err := c.db.ExecContext(ctx, `
		INSERT INTO orders (item_id, name, price, is_veg, image_url, sync_status, placed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ItemID, rec.Name, rec.Price, rec.IsVeg, rec.ImageURL, rec.SyncStatus, rec.PlacedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

func (c *Cache) ListAll(ctx context.Context) ([]domain.OrderRecord, error) {
	recs := make([]domain.OrderRecord, 0)
	err := c.db.SelectContext(ctx, &recs, `
		SELECT local_id, item_id, name, price, is_veg, image_url, sync_status, placed_at
		FROM orders ORDER BY local_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return recs, nil
}

func (c *Cache) ListPending(ctx context.Context) ([]domain.OrderRecord, error) {
	recs := make([]domain.OrderRecord, 0)
	err := c.db.SelectContext(ctx, &recs, `
		SELECT local_id, item_id, name, price, is_veg, image_url, sync_status, placed_at
		FROM orders WHERE sync_status = ? ORDER BY local_id ASC`, domain.OrderPending)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	return recs, nil
}

func (c *Cache) MarkSynced(ctx context.Context, localID int64) error {
	res, err := c.db.ExecContext(ctx,
		"UPDATE orders SET sync_status = ? WHERE local_id = ?", domain.OrderSynced, localID)
	if err != nil {
		return fmt.Errorf("mark order synced: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("order %d not found", localID)
	}
	return nil
}

func (c *Cache) DeleteByID(ctx context.Context, localID int64) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM orders WHERE local_id = ?", localID)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", localID, err)
	}
	return nil
}

func (c *Cache) DeleteAll(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM orders")
	if err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	return nil
}
