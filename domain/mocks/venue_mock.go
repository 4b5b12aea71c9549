package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/swaplabs/swaprouter/domain"
)

var _ domain.Venue = &VenueMock{}

// VenueMock is a mock implementation of the domain.Venue interface
type VenueMock struct {
	CanHandlePairFunc func(ctx context.Context, assetIn, assetOut domain.Asset) bool
	QuotePriceFunc    func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (math.Int, bool)
	ExecuteSwapFunc   func(ctx context.Context, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error)
	NameValue         string
	TypeValue         domain.VenueType
}

func (m *VenueMock) CanHandlePair(ctx context.Context, assetIn, assetOut domain.Asset) bool {
	if m.CanHandlePairFunc != nil {
		return m.CanHandlePairFunc(ctx, assetIn, assetOut)
	}
	panic("unimplemented")
}

func (m *VenueMock) QuotePrice(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (math.Int, bool) {
	if m.QuotePriceFunc != nil {
		return m.QuotePriceFunc(ctx, assetIn, assetOut, amountIn)
	}
	panic("unimplemented")
}

func (m *VenueMock) ExecuteSwap(ctx context.Context, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
	if m.ExecuteSwapFunc != nil {
		return m.ExecuteSwapFunc(ctx, account, assetIn, assetOut, amountIn, minAmountOut)
	}
	panic("unimplemented")
}

func (m *VenueMock) Name() string {
	return m.NameValue
}

func (m *VenueMock) Type() domain.VenueType {
	return m.TypeValue
}
