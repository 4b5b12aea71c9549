package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/domain/mocks"
	routerdelivery "github.com/swaplabs/swaprouter/router/delivery/http"
)

func newHandler(routerUsecase *mocks.RouterUsecaseMock) (*routerdelivery.RouterHandler, *echo.Echo) {
	e := echo.New()
	return &routerdelivery.RouterHandler{
		RUsecase: routerUsecase,
	}, e
}

const validSwapBody = `{
	"account": "alice",
	"path": ["USDC", "DOT"],
	"amount_in": "1000",
	"min_amount_out": "990"
}`

func TestExecuteSwapHandler(t *testing.T) {
	tests := []struct {
		name string

		body     string
		swapFunc func(ctx context.Context, req domain.SwapRequest) (domain.SwapOutcome, error)

		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful swap",
			body: validSwapBody,
			swapFunc: func(ctx context.Context, req domain.SwapRequest) (domain.SwapOutcome, error) {
				return domain.SwapOutcome{
					AmountIn:    req.AmountIn,
					AmountOut:   math.NewInt(997),
					ProtocolFee: math.NewInt(3),
					VenueUsed:   domain.VenueConstantProduct,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"venue_used":"ConstantProduct"`,
		},
		{
			name:           "multi-hop path is rejected before the usecase",
			body:           `{"account": "alice", "path": ["USDC", "DOT", "KSM"], "amount_in": "1000"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrInvalidPath.Error(),
		},
		{
			name: "no liquidity maps to bad request",
			body: validSwapBody,
			swapFunc: func(ctx context.Context, req domain.SwapRequest) (domain.SwapOutcome, error) {
				return domain.SwapOutcome{}, domain.ErrNoLiquidityAvailable
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrNoLiquidityAvailable.Error(),
		},
		{
			name: "no compatible venue maps to bad request",
			body: validSwapBody,
			swapFunc: func(ctx context.Context, req domain.SwapRequest) (domain.SwapOutcome, error) {
				return domain.SwapOutcome{}, domain.ErrNoCompatibleVenue
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrNoCompatibleVenue.Error(),
		},
		{
			name: "fee collection failure maps to internal error",
			body: validSwapBody,
			swapFunc: func(ctx context.Context, req domain.SwapRequest) (domain.SwapOutcome, error) {
				outcome := domain.SwapOutcome{
					AmountIn:    req.AmountIn,
					AmountOut:   math.NewInt(997),
					ProtocolFee: math.NewInt(3),
					VenueUsed:   domain.VenueConstantProduct,
				}
				return outcome, &domain.FeeCollectionFailedError{Outcome: outcome, Err: domain.ErrInternalServerError}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "collection failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, e := newHandler(&mocks.RouterUsecaseMock{SwapFunc: tc.swapFunc})

			req := httptest.NewRequest(http.MethodPost, "/router/swap", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.ExecuteSwap(c)
			require.NoError(t, err)

			require.Equal(t, tc.expectedStatus, rec.Code)
			require.Contains(t, rec.Body.String(), tc.expectedBody)
		})
	}
}

func TestGetQuoteHandler(t *testing.T) {
	tests := []struct {
		name string

		target    string
		quoteFunc func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.RouterQuote, error)

		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "successful quote",
			target: "/router/quote?assetIn=USDC&assetOut=DOT&amountIn=1000000",
			quoteFunc: func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.RouterQuote, error) {
				return domain.RouterQuote{
					AmountIn:         amountIn,
					ProtocolFee:      math.NewInt(2000),
					AmountInAfterFee: math.NewInt(998_000),
					AmountOut:        math.NewInt(995_006),
					Venue:            domain.VenueStableSwap,
					EffectiveFeeRate: math.LegacyNewDecWithPrec(4994, 6),
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"venue":"StableSwap"`,
		},
		{
			name:           "missing amount is rejected",
			target:         "/router/quote?assetIn=USDC&assetOut=DOT",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "amountIn is invalid",
		},
		{
			name:   "no compatible venue maps to bad request",
			target: "/router/quote?assetIn=USDC&assetOut=DOT&amountIn=1000",
			quoteFunc: func(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.RouterQuote, error) {
				return domain.RouterQuote{}, domain.ErrNoCompatibleVenue
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrNoCompatibleVenue.Error(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, e := newHandler(&mocks.RouterUsecaseMock{QuoteFunc: tc.quoteFunc})

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.GetQuote(c)
			require.NoError(t, err)

			require.Equal(t, tc.expectedStatus, rec.Code)
			require.Contains(t, rec.Body.String(), tc.expectedBody)
		})
	}
}

func TestGetConfigHandler(t *testing.T) {
	routerUsecase := &mocks.RouterUsecaseMock{
		GetConfigFunc: func() domain.RouterConfig {
			return domain.RouterConfig{
				FeeRatePpm:     3000,
				FeeSinkAccount: "fee-sink",
			}
		},
	}

	handler, e := newHandler(routerUsecase)

	req := httptest.NewRequest(http.MethodGet, "/router/config", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetConfig(c)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "fee-sink")
}
