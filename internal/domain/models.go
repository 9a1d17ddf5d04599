package domain

import "time"

// StartingBalance is credited to every account at signup.
const StartingBalance = 2000.00

// User is a credential row in the identity store. UID is what the rest of
// the system keys accounts by; the numeric ID is internal to the store.
type User struct {
	ID       int64
	UID      string
	Email    string
	Password string
}

// Account is the remote account document for a signed-up user.
type Account struct {
	UID          string
	Name         string
	Email        string
	ProfilePhoto string
	Balance      float64
}

type MenuItem struct {
	ID          string
	Name        string
	Price       float64
	IsVeg       bool
	IsSpecial   bool
	SpecialDate string // YYYY-MM-DD of the day the item was made special
	ImageURL    string
	Description string
}

// SpecialFor reports whether the item is the designated special for the
// given date. A flag carried over from a previous day does not count.
func (m *MenuItem) SpecialFor(date string) bool {
	return m.IsSpecial && m.SpecialDate == date
}

// Sync states of a local order record.
const (
	OrderPending = "pending"
	OrderSynced  = "synced"
)

// OrderRecord is a per-device snapshot of a menu item at the moment it was
// ordered. Records are append-only; ordering the same item twice yields two
// rows. SyncStatus stays pending until the remote balance deduction is
// confirmed.
type OrderRecord struct {
	LocalID    int64     `db:"local_id"`
	ItemID     string    `db:"item_id"`
	Name       string    `db:"name"`
	Price      float64   `db:"price"`
	IsVeg      bool      `db:"is_veg"`
	ImageURL   string    `db:"image_url"`
	SyncStatus string    `db:"sync_status"`
	PlacedAt   time.Time `db:"placed_at"`
}

// NewOrderRecord snapshots a menu item into a pending order record.
func NewOrderRecord(item *MenuItem, now time.Time) *OrderRecord {
	return &OrderRecord{
		ItemID:     item.ID,
		Name:       item.Name,
		Price:      item.Price,
		IsVeg:      item.IsVeg,
		ImageURL:   item.ImageURL,
		SyncStatus: OrderPending,
		PlacedAt:   now,
	}
}
