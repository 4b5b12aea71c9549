package mvc

import (
	"context"

	"cosmossdk.io/math"

	"github.com/swaplabs/swaprouter/domain"
)

// RouterUsecase represent the router's usecases
type RouterUsecase interface {
	// Swap executes the dual-fee swap protocol: it validates the request,
	// deducts the protocol fee, obtains the best quote on the fee-reduced
	// amount, enforces the caller's minimum-output guarantee, executes the
	// swap through the winning venue and collects the protocol fee.
	//
	// If fee collection fails after the swap executed, the executed outcome
	// is returned together with a *domain.FeeCollectionFailedError.
	Swap(ctx context.Context, req domain.SwapRequest) (domain.SwapOutcome, error)

	// Quote returns the best advisory quote for the pair on the fee-reduced
	// amount without executing. The result is never binding at execution
	// time.
	Quote(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.RouterQuote, error)

	// GetConfig returns the router config.
	GetConfig() domain.RouterConfig
}

// VenuesUsecase represent the multi-venue manager's usecases
type VenuesUsecase interface {
	// GetBestQuote iterates the configured venues, collects quotes for those
	// that can handle the pair and delegates venue selection to the routing
	// strategy. Returns domain.ErrNoCompatibleVenue if no venue claims the
	// pair and domain.ErrNoLiquidityAvailable if venues claim it but none
	// can quote.
	GetBestQuote(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error)

	// ExecuteSwap dispatches directly to the venue identified by venueType,
	// bypassing re-quoting. The venue must be the one chosen by the prior
	// quoting step.
	ExecuteSwap(ctx context.Context, venueType domain.VenueType, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error)
}
