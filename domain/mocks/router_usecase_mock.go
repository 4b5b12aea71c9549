package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/domain/mvc"
)

var _ mvc.RouterUsecase = &RouterUsecaseMock{}

// RouterUsecaseMock is a mock implementation of the RouterUsecase interface
type RouterUsecaseMock struct {
	SwapFunc      func(ctx context.Context, req domain.SwapRequest) (domain.SwapOutcome, error)
	QuoteFunc     func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.RouterQuote, error)
	GetConfigFunc func() domain.RouterConfig
}

func (m *RouterUsecaseMock) Swap(ctx context.Context, req domain.SwapRequest) (domain.SwapOutcome, error) {
	if m.SwapFunc != nil {
		return m.SwapFunc(ctx, req)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) Quote(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.RouterQuote, error) {
	if m.QuoteFunc != nil {
		return m.QuoteFunc(ctx, assetIn, assetOut, amountIn)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) GetConfig() domain.RouterConfig {
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc()
	}
	return domain.RouterConfig{}
}
