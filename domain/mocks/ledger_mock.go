package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/swaplabs/swaprouter/domain"
)

var _ domain.Ledger = &LedgerMock{}

// LedgerMock is a mock implementation of the domain.Ledger interface
type LedgerMock struct {
	TransferFunc func(ctx context.Context, from, to domain.Account, asset domain.Asset, amount math.Int) error
	BalanceFunc  func(ctx context.Context, account domain.Account, asset domain.Asset) (math.Int, error)
}

func (m *LedgerMock) Transfer(ctx context.Context, from, to domain.Account, asset domain.Asset, amount math.Int) error {
	if m.TransferFunc != nil {
		return m.TransferFunc(ctx, from, to, asset, amount)
	}
	panic("unimplemented")
}

func (m *LedgerMock) Balance(ctx context.Context, account domain.Account, asset domain.Asset) (math.Int, error) {
	if m.BalanceFunc != nil {
		return m.BalanceFunc(ctx, account, asset)
	}
	panic("unimplemented")
}
