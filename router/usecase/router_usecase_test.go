package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/domain/mocks"
	"github.com/swaplabs/swaprouter/domain/mvc"
	"github.com/swaplabs/swaprouter/log"
	routerusecase "github.com/swaplabs/swaprouter/router/usecase"
)

const (
	testAccount = domain.Account("alice")
	testFeeSink = "fee-sink"

	assetUSDC = domain.Asset("USDC")
	assetDOT  = domain.Asset("DOT")
)

func defaultRouterConfig() domain.RouterConfig {
	return domain.RouterConfig{
		FeeRatePpm:     3000, // 0.3%
		FeeSinkAccount: testFeeSink,
	}
}

func defaultSwapRequest(amountIn int64) domain.SwapRequest {
	return domain.SwapRequest{
		Account:      testAccount,
		AssetIn:      assetUSDC,
		AssetOut:     assetDOT,
		AmountIn:     math.NewInt(amountIn),
		MinAmountOut: math.ZeroInt(),
	}
}

func newRouter(t *testing.T, config domain.RouterConfig, venues *mocks.VenuesUsecaseMock, collector *mocks.FeeCollectorMock, emitter *mocks.EmitterMock) mvc.RouterUsecase {
	t.Helper()

	router, err := routerusecase.NewRouterUsecase(config, nil, venues, collector, emitter, &log.NoOpLogger{})
	require.NoError(t, err)
	return router
}

func TestSwap_DeductsFeeBeforeQuoting(t *testing.T) {
	tests := []struct {
		name string

		amountIn int64

		expectedFee            int64
		expectedAmountAfterFee int64
	}{
		{
			name:                   "0.3% of 1000",
			amountIn:               1000,
			expectedFee:            3,
			expectedAmountAfterFee: 997,
		},
		{
			name:                   "0.3% of 1000000",
			amountIn:               1_000_000,
			expectedFee:            3000,
			expectedAmountAfterFee: 997_000,
		},
		{
			name:                   "fee floors to zero for small amounts",
			amountIn:               100,
			expectedFee:            0,
			expectedAmountAfterFee: 100,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var (
				quotedAmount   math.Int
				executedAmount math.Int
				collectedFee   math.Int
			)

			venues := &mocks.VenuesUsecaseMock{
				GetBestQuoteFunc: func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error) {
					quotedAmount = amountIn
					return domain.Quote{Venue: domain.VenueConstantProduct, AmountOut: amountIn}, nil
				},
				ExecuteSwapFunc: func(ctx context.Context, venueType domain.VenueType, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
					executedAmount = amountIn
					return amountIn, nil
				},
			}
			collector := &mocks.FeeCollectorMock{
				CollectFeeFunc: func(ctx context.Context, payer domain.Account, asset domain.Asset, amount math.Int) error {
					collectedFee = amount
					require.Equal(t, testAccount, payer)
					require.Equal(t, assetUSDC, asset)
					return nil
				},
			}
			emitter := &mocks.EmitterMock{}

			router := newRouter(t, defaultRouterConfig(), venues, collector, emitter)

			outcome, err := router.Swap(context.Background(), defaultSwapRequest(tc.amountIn))
			require.NoError(t, err)

			require.Equal(t, math.NewInt(tc.expectedAmountAfterFee), quotedAmount)
			require.Equal(t, math.NewInt(tc.expectedAmountAfterFee), executedAmount)
			require.Truef(t, math.NewInt(tc.expectedFee).Equal(collectedFee), "expected collected fee %d, got %s", tc.expectedFee, collectedFee)

			// The outcome reports the original user-facing amount.
			require.Equal(t, math.NewInt(tc.amountIn), outcome.AmountIn)
			require.Truef(t, math.NewInt(tc.expectedFee).Equal(outcome.ProtocolFee), "expected protocol fee %d, got %s", tc.expectedFee, outcome.ProtocolFee)
			require.Equal(t, domain.VenueConstantProduct, outcome.VenueUsed)
		})
	}
}

func TestSwap_RequestValidation(t *testing.T) {
	tests := []struct {
		name string

		request domain.SwapRequest

		expectedError error
	}{
		{
			name: "zero amount is rejected",
			request: domain.SwapRequest{
				Account:      testAccount,
				AssetIn:      assetUSDC,
				AssetOut:     assetDOT,
				AmountIn:     math.ZeroInt(),
				MinAmountOut: math.ZeroInt(),
			},
			expectedError: domain.ErrZeroAmountIn,
		},
		{
			name: "missing account is rejected",
			request: domain.SwapRequest{
				AssetIn:      assetUSDC,
				AssetOut:     assetDOT,
				AmountIn:     math.NewInt(1000),
				MinAmountOut: math.ZeroInt(),
			},
			expectedError: domain.ErrAccountNotSpecified,
		},
		{
			name: "missing asset is rejected",
			request: domain.SwapRequest{
				Account:      testAccount,
				AssetIn:      assetUSDC,
				AmountIn:     math.NewInt(1000),
				MinAmountOut: math.ZeroInt(),
			},
			expectedError: domain.ErrInvalidPath,
		},
		{
			name: "negative min amount out is rejected",
			request: domain.SwapRequest{
				Account:      testAccount,
				AssetIn:      assetUSDC,
				AssetOut:     assetDOT,
				AmountIn:     math.NewInt(1000),
				MinAmountOut: math.NewInt(-1),
			},
			expectedError: domain.ErrNegativeMinAmountOut,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Unset mock funcs panic if called: validation failures must
			// produce no side effect of any kind.
			venues := &mocks.VenuesUsecaseMock{}
			collector := &mocks.FeeCollectorMock{}
			emitter := &mocks.EmitterMock{}

			router := newRouter(t, defaultRouterConfig(), venues, collector, emitter)

			_, err := router.Swap(context.Background(), tc.request)
			require.ErrorIs(t, err, tc.expectedError)
			require.Empty(t, emitter.Events)
		})
	}
}

func TestSwap_MinAmountOutEnforced(t *testing.T) {
	venues := &mocks.VenuesUsecaseMock{
		GetBestQuoteFunc: func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error) {
			return domain.Quote{Venue: domain.VenueConstantProduct, AmountOut: math.NewInt(900)}, nil
		},
		// ExecuteSwapFunc left unset: execution must not be reached.
	}
	collector := &mocks.FeeCollectorMock{}
	emitter := &mocks.EmitterMock{}

	router := newRouter(t, defaultRouterConfig(), venues, collector, emitter)

	request := defaultSwapRequest(1000)
	request.MinAmountOut = math.NewInt(901)

	_, err := router.Swap(context.Background(), request)
	require.ErrorIs(t, err, domain.ErrNoLiquidityAvailable)
	require.Empty(t, emitter.Events)
}

func TestSwap_PropagatesVenueErrors(t *testing.T) {
	tests := []struct {
		name string

		quoteError error

		expectedError error
	}{
		{
			name:          "no compatible venue",
			quoteError:    domain.ErrNoCompatibleVenue,
			expectedError: domain.ErrNoCompatibleVenue,
		},
		{
			name:          "no liquidity",
			quoteError:    domain.ErrNoLiquidityAvailable,
			expectedError: domain.ErrNoLiquidityAvailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			venues := &mocks.VenuesUsecaseMock{
				GetBestQuoteFunc: func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error) {
					return domain.Quote{}, tc.quoteError
				},
			}
			collector := &mocks.FeeCollectorMock{}
			emitter := &mocks.EmitterMock{}

			router := newRouter(t, defaultRouterConfig(), venues, collector, emitter)

			_, err := router.Swap(context.Background(), defaultSwapRequest(1000))
			require.ErrorIs(t, err, tc.expectedError)
			require.Empty(t, emitter.Events)
		})
	}
}

func TestSwap_FeeCollectionFailureReturnsOutcome(t *testing.T) {
	transferError := errors.New("insufficient funds for fee")

	venues := &mocks.VenuesUsecaseMock{
		GetBestQuoteFunc: func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error) {
			return domain.Quote{Venue: domain.VenueConstantProduct, AmountOut: amountIn}, nil
		},
		ExecuteSwapFunc: func(ctx context.Context, venueType domain.VenueType, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
			return amountIn, nil
		},
	}
	collector := &mocks.FeeCollectorMock{
		CollectFeeFunc: func(ctx context.Context, payer domain.Account, asset domain.Asset, amount math.Int) error {
			return transferError
		},
	}
	emitter := &mocks.EmitterMock{}

	router := newRouter(t, defaultRouterConfig(), venues, collector, emitter)

	outcome, err := router.Swap(context.Background(), defaultSwapRequest(1000))

	// The swap already executed: the outcome is returned alongside the error
	// and the event is still emitted.
	var feeCollectionErr *domain.FeeCollectionFailedError
	require.ErrorAs(t, err, &feeCollectionErr)
	require.ErrorIs(t, err, transferError)
	require.Equal(t, outcome, feeCollectionErr.Outcome)
	require.Equal(t, math.NewInt(1000), outcome.AmountIn)
	require.Len(t, emitter.Events, 1)
}

func TestSwap_EmitsEventWithOriginalAmount(t *testing.T) {
	// 0.2% protocol fee on 1000000 leaves 998000 for the venue. The venue
	// applies its own 0.3% internally: 998000 * 0.997 = 995006.
	config := domain.RouterConfig{
		FeeRatePpm:     2000, // 0.2%
		FeeSinkAccount: testFeeSink,
	}

	venues := &mocks.VenuesUsecaseMock{
		GetBestQuoteFunc: func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error) {
			require.Equal(t, math.NewInt(998_000), amountIn)
			return domain.Quote{Venue: domain.VenueConstantProduct, AmountOut: math.NewInt(995_006)}, nil
		},
		ExecuteSwapFunc: func(ctx context.Context, venueType domain.VenueType, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
			return math.NewInt(995_006), nil
		},
	}
	collector := &mocks.FeeCollectorMock{
		CollectFeeFunc: func(ctx context.Context, payer domain.Account, asset domain.Asset, amount math.Int) error {
			require.Equal(t, math.NewInt(2000), amount)
			return nil
		},
	}
	emitter := &mocks.EmitterMock{}

	router := newRouter(t, config, venues, collector, emitter)

	request := defaultSwapRequest(1_000_000)
	request.Recipient = domain.Account("bob")

	outcome, err := router.Swap(context.Background(), request)
	require.NoError(t, err)

	require.Equal(t, domain.SwapOutcome{
		AmountIn:    math.NewInt(1_000_000),
		AmountOut:   math.NewInt(995_006),
		ProtocolFee: math.NewInt(2000),
		VenueUsed:   domain.VenueConstantProduct,
	}, outcome)

	require.Len(t, emitter.Events, 1)
	require.Equal(t, domain.SwapEvent{
		Payer:       testAccount,
		Recipient:   domain.Account("bob"),
		AssetIn:     assetUSDC,
		AssetOut:    assetDOT,
		AmountIn:    math.NewInt(1_000_000),
		AmountOut:   math.NewInt(995_006),
		ProtocolFee: math.NewInt(2000),
		VenueUsed:   domain.VenueConstantProduct,
	}, emitter.Events[0])
}

func TestSwap_RecipientDefaultsToPayer(t *testing.T) {
	venues := &mocks.VenuesUsecaseMock{
		GetBestQuoteFunc: func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error) {
			return domain.Quote{Venue: domain.VenueConstantProduct, AmountOut: amountIn}, nil
		},
		ExecuteSwapFunc: func(ctx context.Context, venueType domain.VenueType, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
			return amountIn, nil
		},
	}
	collector := &mocks.FeeCollectorMock{
		CollectFeeFunc: func(ctx context.Context, payer domain.Account, asset domain.Asset, amount math.Int) error {
			return nil
		},
	}
	emitter := &mocks.EmitterMock{}

	router := newRouter(t, defaultRouterConfig(), venues, collector, emitter)

	_, err := router.Swap(context.Background(), defaultSwapRequest(1000))
	require.NoError(t, err)

	require.Len(t, emitter.Events, 1)
	require.Equal(t, testAccount, emitter.Events[0].Recipient)
}

func TestQuote(t *testing.T) {
	venueFeeRates := map[domain.VenueType]math.LegacyDec{
		domain.VenueConstantProduct: math.LegacyNewDecWithPrec(3, 3), // 0.3%
	}

	venues := &mocks.VenuesUsecaseMock{
		GetBestQuoteFunc: func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error) {
			require.Equal(t, math.NewInt(998_000), amountIn)
			return domain.Quote{Venue: domain.VenueConstantProduct, AmountOut: math.NewInt(995_006)}, nil
		},
	}

	config := domain.RouterConfig{
		FeeRatePpm:     2000, // 0.2%
		FeeSinkAccount: testFeeSink,
	}

	router, err := routerusecase.NewRouterUsecase(config, venueFeeRates, venues, &mocks.FeeCollectorMock{}, &mocks.EmitterMock{}, &log.NoOpLogger{})
	require.NoError(t, err)

	quote, err := router.Quote(context.Background(), assetUSDC, assetDOT, math.NewInt(1_000_000))
	require.NoError(t, err)

	require.Equal(t, math.NewInt(1_000_000), quote.AmountIn)
	require.Equal(t, math.NewInt(2000), quote.ProtocolFee)
	require.Equal(t, math.NewInt(998_000), quote.AmountInAfterFee)
	require.Equal(t, math.NewInt(995_006), quote.AmountOut)
	require.Equal(t, domain.VenueConstantProduct, quote.Venue)
	// 1 - 0.998 * 0.997 = 0.004994
	require.Equal(t, math.LegacyNewDecWithPrec(4994, 6), quote.EffectiveFeeRate)
}

func TestQuote_Validation(t *testing.T) {
	router := newRouter(t, defaultRouterConfig(), &mocks.VenuesUsecaseMock{}, &mocks.FeeCollectorMock{}, &mocks.EmitterMock{})

	_, err := router.Quote(context.Background(), "", assetDOT, math.NewInt(1000))
	require.ErrorIs(t, err, domain.ErrInvalidPath)

	_, err = router.Quote(context.Background(), assetUSDC, assetDOT, math.ZeroInt())
	require.ErrorIs(t, err, domain.ErrZeroAmountIn)
}

func TestNewRouterUsecase_InvalidFeeRate(t *testing.T) {
	config := domain.RouterConfig{
		FeeRatePpm: 1_000_000, // 100%
	}

	_, err := routerusecase.NewRouterUsecase(config, nil, &mocks.VenuesUsecaseMock{}, &mocks.FeeCollectorMock{}, &mocks.EmitterMock{}, &log.NoOpLogger{})
	require.Error(t, err)

	var invalidFeeRateErr domain.InvalidFeeRateError
	require.ErrorAs(t, err, &invalidFeeRateErr)
	require.Equal(t, uint64(1_000_000), invalidFeeRateErr.RatePpm)
}
