package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/ports"
	"go.uber.org/zap"
)

// OrderService coordinates order placement and the wallet: local order cache
// writes, remote balance mutations, and the pending-sync outbox.
type OrderService struct {
	accounts ports.AccountStorePort
	cache    ports.OrderCachePort
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrderService(accounts ports.AccountStorePort, cache ports.OrderCachePort, logger *zap.Logger) *OrderService {
	return &OrderService{accounts: accounts, cache: cache, logger: logger, now: time.Now}
}

// PlaceOrder runs the two-step placement: a pending record in the local
// cache first, then the remote balance deduction. The order is strictly
// local-insert then remote-deduct, so a failure leaves money undeducted
// rather than an unrecorded charge.
//
// cachedBalance is the caller's current account snapshot; an item costing
// more than it is rejected before any write. The remote deduction is itself
// conditional, so a stale snapshot cannot drive the balance negative: a
// guard miss voids the pending record and reports ErrInsufficientBalance,
// while an I/O failure leaves the record pending for RetryPending and
// reports ErrBalanceSync.
func (s *OrderService) PlaceOrder(ctx context.Context, uid string, cachedBalance float64, item *domain.MenuItem) (*domain.OrderRecord, error) {
	if item.Price > cachedBalance {
		return nil, fmt.Errorf("%w: price %.2f, balance %.2f", domain.ErrInsufficientBalance, item.Price, cachedBalance)
	}
	rec := domain.NewOrderRecord(item, s.now())
	localID, err := s.cache.Insert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLocalPersist, err)
	}
	rec.LocalID = localID

	ok, err := s.accounts.DeductBalance(ctx, uid, item.Price)
	if err != nil {
		s.logger.Error("balance deduction failed, order left pending",
			zap.Int64("local_id", localID), zap.String("item", item.Name), zap.Error(err))
		return rec, fmt.Errorf("%w: %v", domain.ErrBalanceSync, err)
	}
	if !ok {
		if derr := s.cache.DeleteByID(ctx, localID); derr != nil {
			s.logger.Error("failed to void order after deduction guard miss",
				zap.Int64("local_id", localID), zap.Error(derr))
		}
		return nil, fmt.Errorf("%w: remote balance below %.2f", domain.ErrInsufficientBalance, item.Price)
	}
	if err := s.cache.MarkSynced(ctx, localID); err != nil {
		// The money moved; keep the record and log the stale status.
		s.logger.Error("order deducted but not marked synced", zap.Int64("local_id", localID), zap.Error(err))
	} else {
		rec.SyncStatus = domain.OrderSynced
	}
	return rec, nil
}

// RetryPending drains the outbox: every pending record gets another
// deduction attempt. A guard miss voids the record; an I/O failure leaves
// it for the next pass. Returns how many records were synced and voided.
func (s *OrderService) RetryPending(ctx context.Context, uid string) (synced, voided int, err error) {
	pending, err := s.cache.ListPending(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list pending orders: %w", err)
	}
	for i := range pending {
		rec := &pending[i]
		ok, derr := s.accounts.DeductBalance(ctx, uid, rec.Price)
		if derr != nil {
			s.logger.Warn("pending order retry failed", zap.Int64("local_id", rec.LocalID), zap.Error(derr))
			continue
		}
		if !ok {
			if verr := s.cache.DeleteByID(ctx, rec.LocalID); verr != nil {
				s.logger.Error("failed to void unaffordable pending order",
					zap.Int64("local_id", rec.LocalID), zap.Error(verr))
				continue
			}
			voided++
			continue
		}
		if merr := s.cache.MarkSynced(ctx, rec.LocalID); merr != nil {
			s.logger.Error("retried order deducted but not marked synced",
				zap.Int64("local_id", rec.LocalID), zap.Error(merr))
		}
		synced++
	}
	return synced, voided, nil
}

// Orders lists the local order log in insertion order.
func (s *OrderService) Orders(ctx context.Context) ([]domain.OrderRecord, error) {
	recs, err := s.cache.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return recs, nil
}

// RemoveOrder deletes one record from the local log.
func (s *OrderService) RemoveOrder(ctx context.Context, localID int64) error {
	return s.cache.DeleteByID(ctx, localID)
}

// ClearOrders empties the local log.
func (s *OrderService) ClearOrders(ctx context.Context) error {
	return s.cache.DeleteAll(ctx)
}

// TopUp credits the wallet. The update is additive on the store side, so
// concurrent top-ups and orders cannot lose each other's writes.
func (s *OrderService) TopUp(ctx context.Context, uid string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("top up amount must be positive, got %.2f", amount)
	}
	if err := s.accounts.AddBalance(ctx, uid, amount); err != nil {
		return fmt.Errorf("%w: top up: %v", domain.ErrBalanceSync, err)
	}
	return nil
}
