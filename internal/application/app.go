package application

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
	"go.uber.org/zap"
)

// Session holds the cached state of one signed-in user. Its context is
// cancelled on logout; refreshes that complete after that are discarded, so
// a late network result can never mutate a dead session.
type Session struct {
	UID   string
	Email string
	Token string

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	account *domain.Account
	menu    []domain.MenuItem
	special *domain.MenuItem
	orders  []domain.OrderRecord
}

func newSession(uid, email, token string) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{UID: uid, Email: email, Token: token, ctx: ctx, cancel: cancel}
}

// Context returns the session lifetime context. Operations issued for this
// session should derive from it so they die with the session.
func (s *Session) Context() context.Context { return s.ctx }

func (s *Session) Account() *domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

func (s *Session) Menu() []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menu
}

func (s *Session) DailySpecial() *domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.special
}

func (s *Session) Orders() []domain.OrderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders
}

// commit applies fn to the cached state unless the session is already torn
// down.
func (s *Session) commit(fn func()) {
	if s.ctx.Err() != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// App is the client state coordinator: it owns the current session and fans
// operations out to the auth, order and menu services.
type App struct {
	auth    *AuthService
	orders  *OrderService
	menus   *MenuService
	logger  *zap.Logger
	mu      sync.RWMutex
	current *Session
}

func NewApp(auth *AuthService, orders *OrderService, menus *MenuService, logger *zap.Logger) *App {
	return &App{auth: auth, orders: orders, menus: menus, logger: logger}
}

// Session returns the current session, or nil when logged out.
func (a *App) Session() *Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// LoggedIn reports whether a session is open.
func (a *App) LoggedIn() bool { return a.Session() != nil }

// SignUp creates the identity and account, opens a session and runs the
// refresh cascade.
func (a *App) SignUp(ctx context.Context, name, email, password string) (*Session, error) {
	acct, token, err := a.auth.SignUp(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	return a.open(acct.UID, email, token, acct), nil
}

// LogIn verifies credentials, opens a session and runs the refresh cascade.
func (a *App) LogIn(ctx context.Context, email, password string) (*Session, error) {
	user, acct, token, err := a.auth.LogIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.open(user.UID, email, token, acct), nil
}

func (a *App) open(uid, email, token string, acct *domain.Account) *Session {
	sess := newSession(uid, email, token)
	sess.account = acct
	a.mu.Lock()
	if a.current != nil {
		a.current.cancel()
	}
	a.current = sess
	a.mu.Unlock()
	a.RefreshAll(sess)
	return sess
}

// LogOut cancels the session context and drops cached state. The local
// order cache is intentionally kept: orders persist across logins on a
// device.
func (a *App) LogOut() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return
	}
	a.current.cancel()
	a.current = nil
}

// RefreshAll runs the login cascade: menu, daily special, account and local
// orders, concurrently, each bound to the session lifetime.
func (a *App) RefreshAll(sess *Session) {
	var wg sync.WaitGroup
	for _, fn := range []func(*Session){
		a.RefreshMenu,
		a.RefreshDailySpecial,
		a.RefreshAccount,
		a.RefreshOrders,
	} {
		wg.Add(1)
		go func(fn func(*Session)) {
			defer wg.Done()
			fn(sess)
		}(fn)
	}
	wg.Wait()
}

// RefreshMenu replaces the cached menu wholesale; on failure it becomes
// empty, never stale.
func (a *App) RefreshMenu(sess *Session) {
	items, err := a.menus.FetchMenu(sess.ctx)
	if err != nil {
		a.logger.Warn("menu refresh failed", zap.Error(err))
		sess.commit(func() { sess.menu = nil })
		return
	}
	sess.commit(func() { sess.menu = items })
}

// RefreshDailySpecial adopts (or claims) today's special.
func (a *App) RefreshDailySpecial(sess *Session) {
	special, err := a.menus.EnsureDailySpecial(sess.ctx)
	if err != nil {
		a.logger.Warn("daily special refresh failed", zap.Error(err))
		return
	}
	sess.commit(func() { sess.special = special })
}

// RefreshAccount re-reads the account document. Read failures keep the
// previous snapshot in place.
func (a *App) RefreshAccount(sess *Session) {
	if sess.UID == "" {
		return
	}
	acct, err := a.auth.FetchAccount(sess.ctx, sess.UID)
	if err != nil || acct == nil {
		a.logger.Warn("account refresh failed, keeping stale snapshot",
			zap.String("uid", sess.UID), zap.Error(err))
		return
	}
	sess.commit(func() { sess.account = acct })
}

// RefreshOrders reloads the local order log.
func (a *App) RefreshOrders(sess *Session) {
	recs, err := a.orders.Orders(sess.ctx)
	if err != nil {
		a.logger.Warn("order cache read failed", zap.Error(err))
		return
	}
	sess.commit(func() { sess.orders = recs })
}

// PlaceOrder places an order for the signed-in user against the cached
// balance and refreshes the account and order snapshots on success.
func (a *App) PlaceOrder(item *domain.MenuItem) (*domain.OrderRecord, error) {
	sess := a.Session()
	if sess == nil {
		return nil, fmt.Errorf("%w: not logged in", domain.ErrAuth)
	}
	acct := sess.Account()
	if acct == nil {
		return nil, fmt.Errorf("%w: account not loaded", domain.ErrRead)
	}
	rec, err := a.orders.PlaceOrder(sess.ctx, sess.UID, acct.Balance, item)
	if err != nil {
		return rec, err
	}
	a.RefreshAccount(sess)
	a.RefreshOrders(sess)
	return rec, nil
}

// TopUp credits the wallet and refreshes the account snapshot.
func (a *App) TopUp(amount float64) error {
	sess := a.Session()
	if sess == nil {
		return fmt.Errorf("%w: not logged in", domain.ErrAuth)
	}
	if err := a.orders.TopUp(sess.ctx, sess.UID, amount); err != nil {
		return err
	}
	a.RefreshAccount(sess)
	return nil
}

// RetryPendingOrders drains the pending-sync outbox for the signed-in user.
func (a *App) RetryPendingOrders() (synced, voided int, err error) {
	sess := a.Session()
	if sess == nil {
		return 0, 0, fmt.Errorf("%w: not logged in", domain.ErrAuth)
	}
	synced, voided, err = a.orders.RetryPending(sess.ctx, sess.UID)
	if err == nil && (synced > 0 || voided > 0) {
		a.RefreshAccount(sess)
		a.RefreshOrders(sess)
	}
	return synced, voided, err
}

// RemoveOrder deletes one local order record and refreshes the snapshot.
func (a *App) RemoveOrder(localID int64) error {
	sess := a.Session()
	if sess == nil {
		return fmt.Errorf("%w: not logged in", domain.ErrAuth)
	}
	if err := a.orders.RemoveOrder(sess.ctx, localID); err != nil {
		return err
	}
	a.RefreshOrders(sess)
	return nil
}

// ClearOrders empties the local order log.
func (a *App) ClearOrders() error {
	sess := a.Session()
	if sess == nil {
		return fmt.Errorf("%w: not logged in", domain.ErrAuth)
	}
	if err := a.orders.ClearOrders(sess.ctx); err != nil {
		return err
	}
	a.RefreshOrders(sess)
	return nil
}

// UpdateProfile edits name/email and optionally the photo, then refreshes
// the account snapshot.
func (a *App) UpdateProfile(photo io.Reader, name, email string) error {
	sess := a.Session()
	if sess == nil {
		return fmt.Errorf("%w: not logged in", domain.ErrAuth)
	}
	if err := a.auth.UpdateProfile(sess.ctx, sess.UID, photo, name, email); err != nil {
		return err
	}
	a.RefreshAccount(sess)
	return nil
}
