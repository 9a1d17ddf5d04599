package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/ports"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := ports.NewMockAccountStorePort(ctrl)
	mockCache := ports.NewMockOrderCachePort(ctrl)
	svc := NewOrderService(mockAccounts, mockCache, zap.NewNop())

	item := &domain.MenuItem{ID: "item-1", Name: "Veg Thali", Price: 120.00, IsVeg: true}

	tests := []struct {
		name       string
		balance    float64
		mockSetup  func()
		wantKind   error
		wantRec    bool
		wantStatus string
	}{
		{
			name:    "Successful order deducts exactly the price",
			balance: 2000.00,
			mockSetup: func() {
				mockCache.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *domain.OrderRecord) (int64, error) {
						if rec.SyncStatus != domain.OrderPending {
							t.Errorf("inserted record status = %q, want pending", rec.SyncStatus)
						}
						if rec.ItemID != "item-1" || rec.Price != 120.00 {
							t.Errorf("inserted record = %+v, want snapshot of item-1 at 120.00", rec)
						}
						return 7, nil
					})
				mockAccounts.EXPECT().DeductBalance(gomock.Any(), "uid-1", 120.00).Return(true, nil)
				mockCache.EXPECT().MarkSynced(gomock.Any(), int64(7)).Return(nil)
			},
			wantRec:    true,
			wantStatus: domain.OrderSynced,
		},
		{
			name:      "Insufficient balance makes no writes",
			balance:   50.00,
			mockSetup: func() {},
			wantKind:  domain.ErrInsufficientBalance,
		},
		{
			name:    "Local persist failure skips the remote call",
			balance: 2000.00,
			mockSetup: func() {
				mockCache.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("disk full"))
			},
			wantKind: domain.ErrLocalPersist,
		},
		{
			name:    "Remote failure leaves the record pending",
			balance: 2000.00,
			mockSetup: func() {
				mockCache.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(8), nil)
				mockAccounts.EXPECT().DeductBalance(gomock.Any(), "uid-1", 120.00).
					Return(false, errors.New("network down"))
			},
			wantKind:   domain.ErrBalanceSync,
			wantRec:    true,
			wantStatus: domain.OrderPending,
		},
		{
			name:    "Deduction guard miss voids the record",
			balance: 2000.00,
			mockSetup: func() {
				mockCache.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(9), nil)
				mockAccounts.EXPECT().DeductBalance(gomock.Any(), "uid-1", 120.00).Return(false, nil)
				mockCache.EXPECT().DeleteByID(gomock.Any(), int64(9)).Return(nil)
			},
			wantKind: domain.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rec, err := svc.PlaceOrder(context.Background(), "uid-1", tt.balance, item)
			if tt.wantKind != nil {
				if !errors.Is(err, tt.wantKind) {
					t.Errorf("PlaceOrder() error = %v, want kind %v", err, tt.wantKind)
				}
			} else if err != nil {
				t.Fatalf("PlaceOrder() unexpected error: %v", err)
			}
			if (rec != nil) != tt.wantRec {
				t.Fatalf("PlaceOrder() record = %v, wantRec %v", rec, tt.wantRec)
			}
			if rec != nil && rec.SyncStatus != tt.wantStatus {
				t.Errorf("PlaceOrder() record status = %q, want %q", rec.SyncStatus, tt.wantStatus)
			}
		})
	}
}

func TestOrderService_RetryPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := ports.NewMockAccountStorePort(ctrl)
	mockCache := ports.NewMockOrderCachePort(ctrl)
	svc := NewOrderService(mockAccounts, mockCache, zap.NewNop())

	pending := []domain.OrderRecord{
		{LocalID: 1, ItemID: "item-1", Price: 120.00, SyncStatus: domain.OrderPending},
		{LocalID: 2, ItemID: "item-2", Price: 500.00, SyncStatus: domain.OrderPending},
		{LocalID: 3, ItemID: "item-3", Price: 60.00, SyncStatus: domain.OrderPending},
	}
	mockCache.EXPECT().ListPending(gomock.Any()).Return(pending, nil)
	// 1 syncs, 2 is unaffordable and gets voided, 3 hits an I/O failure and
	// stays pending.
	mockAccounts.EXPECT().DeductBalance(gomock.Any(), "uid-1", 120.00).Return(true, nil)
	mockCache.EXPECT().MarkSynced(gomock.Any(), int64(1)).Return(nil)
	mockAccounts.EXPECT().DeductBalance(gomock.Any(), "uid-1", 500.00).Return(false, nil)
	mockCache.EXPECT().DeleteByID(gomock.Any(), int64(2)).Return(nil)
	mockAccounts.EXPECT().DeductBalance(gomock.Any(), "uid-1", 60.00).
		Return(false, errors.New("network down"))

	synced, voided, err := svc.RetryPending(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("RetryPending() unexpected error: %v", err)
	}
	if synced != 1 || voided != 1 {
		t.Errorf("RetryPending() = (%d synced, %d voided), want (1, 1)", synced, voided)
	}
}

func TestOrderService_TopUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := ports.NewMockAccountStorePort(ctrl)
	mockCache := ports.NewMockOrderCachePort(ctrl)
	svc := NewOrderService(mockAccounts, mockCache, zap.NewNop())

	t.Run("Positive amount credits the wallet", func(t *testing.T) {
		mockAccounts.EXPECT().AddBalance(gomock.Any(), "uid-1", 300.00).Return(nil)
		if err := svc.TopUp(context.Background(), "uid-1", 300.00); err != nil {
			t.Fatalf("TopUp() unexpected error: %v", err)
		}
	})

	t.Run("Non-positive amount is rejected locally", func(t *testing.T) {
		if err := svc.TopUp(context.Background(), "uid-1", 0); err == nil {
			t.Error("TopUp(0) expected an error")
		}
	})

	t.Run("Store failure maps to balance sync kind", func(t *testing.T) {
		mockAccounts.EXPECT().AddBalance(gomock.Any(), "uid-1", 300.00).
			Return(errors.New("network down"))
		err := svc.TopUp(context.Background(), "uid-1", 300.00)
		if !errors.Is(err, domain.ErrBalanceSync) {
			t.Errorf("TopUp() error = %v, want kind %v", err, domain.ErrBalanceSync)
		}
	})
}
