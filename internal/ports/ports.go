package ports

import (
	"context"
	"io"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
)

// IdentityPort is the credential store behind signup/login. CreateUser mints
// the UID; FindUserByEmail returns (nil, nil) when no such user exists.
type IdentityPort interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AccountStorePort is the remote account document store. GetAccount returns
// (nil, nil) when the document does not exist. DeductBalance is conditional:
// it reports false without modifying anything when the stored balance is
// below amount.
type AccountStorePort interface {
	GetAccount(ctx context.Context, uid string) (*domain.Account, error)
	SetAccount(ctx context.Context, acct *domain.Account) error
	UpdateAccountFields(ctx context.Context, uid string, fields map[string]interface{}) error
	AddBalance(ctx context.Context, uid string, amount float64) error
	DeductBalance(ctx context.Context, uid string, amount float64) (bool, error)
}

// MenuStorePort is the realtime keyed store holding the canonical menu.
// ClaimSpecial atomically claims the special slot for date and returns the
// id that holds the claim, whether or not it is itemID.
type MenuStorePort interface {
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	ClaimSpecial(ctx context.Context, date, itemID string) (string, error)
	MarkSpecial(ctx context.Context, itemID, date string) error
	ClearSpecial(ctx context.Context, itemID string) error
	AddItem(ctx context.Context, item *domain.MenuItem) (string, error)
}

// OrderCachePort is the embedded per-device order log. Insert returns the
// auto-assigned local id; repeated inserts of the same menu item are
// distinct rows.
type OrderCachePort interface {
	Insert(ctx context.Context, rec *domain.OrderRecord) (int64, error)
	ListAll(ctx context.Context) ([]domain.OrderRecord, error)
	ListPending(ctx context.Context) ([]domain.OrderRecord, error)
	MarkSynced(ctx context.Context, localID int64) error
	DeleteByID(ctx context.Context, localID int64) error
	DeleteAll(ctx context.Context) error
}

// ImageHostPort uploads an image and returns its public URL.
type ImageHostPort interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
}

// NotifierPort delivers a reminder to the user.
type NotifierPort interface {
	Notify(title, message string)
}
