package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/swaplabs/swaprouter/domain"
)

var _ domain.PoolEngine = &PoolEngineMock{}

// PoolEngineMock is a mock implementation of the domain.PoolEngine interface
type PoolEngineMock struct {
	HasPoolFunc      func(ctx context.Context, assetIn, assetOut domain.Asset) (bool, error)
	QuoteExactInFunc func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (math.Int, error)
	SwapExactInFunc  func(ctx context.Context, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error)
}

func (m *PoolEngineMock) HasPool(ctx context.Context, assetIn, assetOut domain.Asset) (bool, error) {
	if m.HasPoolFunc != nil {
		return m.HasPoolFunc(ctx, assetIn, assetOut)
	}
	panic("unimplemented")
}

func (m *PoolEngineMock) QuoteExactIn(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (math.Int, error) {
	if m.QuoteExactInFunc != nil {
		return m.QuoteExactInFunc(ctx, assetIn, assetOut, amountIn)
	}
	panic("unimplemented")
}

func (m *PoolEngineMock) SwapExactIn(ctx context.Context, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
	if m.SwapExactInFunc != nil {
		return m.SwapExactInFunc(ctx, account, assetIn, assetOut, amountIn, minAmountOut)
	}
	panic("unimplemented")
}
