package usecase

import (
	"context"

	"cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/log"
)

// venueBase carries the behavior shared by all venue adapters: bridging the
// capability contract to an external pool engine. Pricing math and reserve
// storage live in the engine; adapters only add pair-feasibility rules and
// the minimum-output re-validation.
type venueBase struct {
	engine    domain.PoolEngine
	logger    log.Logger
	name      string
	venueType domain.VenueType
}

// hasEnginePool probes the engine for a pool backing the pair.
// Probe errors are treated as "cannot handle": the pair may still be
// routable through another venue.
func (v *venueBase) hasEnginePool(ctx context.Context, assetIn, assetOut domain.Asset) bool {
	has, err := v.engine.HasPool(ctx, assetIn, assetOut)
	if err != nil {
		v.logger.Warn("pair probe failed", zap.String("venue", v.name), zap.Error(err))
		return false
	}
	return has
}

// QuotePrice implements domain.Venue. A zero hypothetical input always
// quotes zero without reaching the engine.
func (v *venueBase) QuotePrice(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (math.Int, bool) {
	if amountIn.IsZero() {
		return math.ZeroInt(), true
	}

	amountOut, err := v.engine.QuoteExactIn(ctx, assetIn, assetOut, amountIn)
	if err != nil {
		return math.Int{}, false
	}

	return amountOut, true
}

// ExecuteSwap implements domain.Venue. The quote obtained before execution
// is advisory only, so the minimum-output guarantee is re-derived here and
// enforced again by the engine at settlement time.
func (v *venueBase) ExecuteSwap(ctx context.Context, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
	amountOut, ok := v.QuotePrice(ctx, assetIn, assetOut, amountIn)
	if !ok {
		return math.Int{}, &domain.VenueExecutionError{Venue: v.venueType, Err: domain.ErrNoLiquidityAvailable}
	}

	if amountOut.LT(minAmountOut) {
		return math.Int{}, &domain.VenueExecutionError{Venue: v.venueType, Err: domain.ErrNoLiquidityAvailable}
	}

	realizedOut, err := v.engine.SwapExactIn(ctx, account, assetIn, assetOut, amountIn, minAmountOut)
	if err != nil {
		return math.Int{}, &domain.VenueExecutionError{Venue: v.venueType, Err: err}
	}

	return realizedOut, nil
}

// Name implements domain.Venue.
func (v *venueBase) Name() string {
	return v.name
}

// Type implements domain.Venue.
func (v *venueBase) Type() domain.VenueType {
	return v.venueType
}
