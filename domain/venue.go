package domain

import (
	"context"

	"cosmossdk.io/math"
)

// Venue is the capability contract every liquidity backend must satisfy to
// be routed through. CanHandlePair and QuotePrice are pure with respect to
// ledger state; ExecuteSwap is the only effectful operation.
type Venue interface {
	// CanHandlePair is a cheap feasibility probe. It must not mutate state.
	// A self-pair (assetIn == assetOut) returns false.
	CanHandlePair(ctx context.Context, assetIn, assetOut Asset) bool

	// QuotePrice estimates the output for a hypothetical input.
	// The boolean is false when the venue has no liquidity or route for the
	// pair. A zero input maps to a zero quote, never to false.
	QuotePrice(ctx context.Context, assetIn, assetOut Asset, amountIn math.Int) (math.Int, bool)

	// ExecuteSwap performs the real settlement. It independently re-validates
	// the minimum-output guarantee and fails without partial execution if the
	// achievable output is below minAmountOut.
	ExecuteSwap(ctx context.Context, account Account, assetIn, assetOut Asset, amountIn, minAmountOut math.Int) (math.Int, error)

	// Name returns a static label for diagnostics and events.
	Name() string

	// Type identifies the venue in quotes and events.
	Type() VenueType
}

// FeeCollector charges and moves the protocol fee. A zero amount is a
// successful no-op; a nonzero amount moves funds from the payer to the
// configured protocol-fee sink.
type FeeCollector interface {
	CollectFee(ctx context.Context, payer Account, asset Asset, amount math.Int) error
}

// RoutingStrategy picks one venue among the collected quotes.
// Implementations must be pure functions of (assetIn, assetOut, quotes).
type RoutingStrategy interface {
	// SelectBestVenue returns false when quotes is empty.
	SelectBestVenue(quotes []Quote, assetIn, assetOut Asset) (VenueType, bool)
}

// Ledger is the outbound funds-transfer contract owned by the external
// ledger service. Each call is atomic: it either fully applies or fully
// fails.
type Ledger interface {
	Transfer(ctx context.Context, from, to Account, asset Asset, amount math.Int) error
	Balance(ctx context.Context, account Account, asset Asset) (math.Int, error)
}

// PoolEngine is the outbound contract implemented by an external
// liquidity-pool engine. The engine owns the concrete pricing math and the
// pool-reserve storage; venue adapters only bridge to it.
type PoolEngine interface {
	// HasPool reports whether the engine has a pool for the pair.
	HasPool(ctx context.Context, assetIn, assetOut Asset) (bool, error)

	// QuoteExactIn returns the output amount the engine would produce for
	// amountIn, inclusive of the engine's own fee.
	QuoteExactIn(ctx context.Context, assetIn, assetOut Asset, amountIn math.Int) (math.Int, error)

	// SwapExactIn executes the swap on behalf of account and returns the
	// realized output amount.
	SwapExactIn(ctx context.Context, account Account, assetIn, assetOut Asset, amountIn, minAmountOut math.Int) (math.Int, error)
}
