package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/domain/mvc"
)

var _ mvc.VenuesUsecase = &VenuesUsecaseMock{}

// VenuesUsecaseMock is a mock implementation of the VenuesUsecase interface
type VenuesUsecaseMock struct {
	GetBestQuoteFunc func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error)
	ExecuteSwapFunc  func(ctx context.Context, venueType domain.VenueType, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error)
}

func (m *VenuesUsecaseMock) GetBestQuote(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error) {
	if m.GetBestQuoteFunc != nil {
		return m.GetBestQuoteFunc(ctx, assetIn, assetOut, amountIn)
	}
	panic("unimplemented")
}

func (m *VenuesUsecaseMock) ExecuteSwap(ctx context.Context, venueType domain.VenueType, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
	if m.ExecuteSwapFunc != nil {
		return m.ExecuteSwapFunc(ctx, venueType, account, assetIn, assetOut, amountIn, minAmountOut)
	}
	panic("unimplemented")
}
