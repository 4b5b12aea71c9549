package usecase

import (
	"context"
	"errors"

	"cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/domain/mvc"
	"github.com/swaplabs/swaprouter/log"
)

var _ mvc.RouterUsecase = &routerUseCaseImpl{}

type routerUseCaseImpl struct {
	config  domain.RouterConfig
	feeRate math.LegacyDec
	feeSink domain.Account

	// Venue-internal fee rates by type, used only for reporting the combined
	// effective rate on quotes.
	venueFeeRates map[domain.VenueType]math.LegacyDec

	venuesUsecase mvc.VenuesUsecase
	feeCollector  domain.FeeCollector
	emitter       domain.Emitter
	logger        log.Logger
}

// NewRouterUsecase creates the router over the multi-venue manager, the fee
// collector and the event emitter. Returns an error if the configured fee
// rate is invalid; the fee rate is parsed once here and never re-read.
func NewRouterUsecase(config domain.RouterConfig, venueFeeRates map[domain.VenueType]math.LegacyDec, venuesUsecase mvc.VenuesUsecase, feeCollector domain.FeeCollector, emitter domain.Emitter, logger log.Logger) (mvc.RouterUsecase, error) {
	feeRate, err := config.FeeRate()
	if err != nil {
		return nil, err
	}

	return &routerUseCaseImpl{
		config:        config,
		feeRate:       feeRate,
		feeSink:       domain.Account(config.FeeSinkAccount),
		venueFeeRates: venueFeeRates,
		venuesUsecase: venuesUsecase,
		feeCollector:  feeCollector,
		emitter:       emitter,
		logger:        logger,
	}, nil
}

// Swap implements mvc.RouterUsecase.
//
// The protocol is fixed-order: validate, deduct the protocol fee, quote on
// the fee-reduced amount, enforce the caller's minimum, execute through the
// winning venue, then collect the fee. No funds move before the execution
// step, so every failure up to that point leaves the caller untouched.
func (u *routerUseCaseImpl) Swap(ctx context.Context, req domain.SwapRequest) (domain.SwapOutcome, error) {
	if err := req.Validate(); err != nil {
		u.recordSwapError(err)
		return domain.SwapOutcome{}, err
	}

	recipient := req.Recipient
	if recipient == "" {
		recipient = req.Account
	}

	protocolFee := computeProtocolFee(req.AmountIn, u.feeRate)
	amountAfterFee, err := deductFee(req.AmountIn, protocolFee)
	if err != nil {
		u.recordSwapError(err)
		return domain.SwapOutcome{}, err
	}

	quote, err := u.venuesUsecase.GetBestQuote(ctx, req.AssetIn, req.AssetOut, amountAfterFee)
	if err != nil {
		u.recordSwapError(err)
		return domain.SwapOutcome{}, err
	}

	// The minimum applies to the quoted output after all fees. The venue
	// re-checks it at execution time against its own fresh quote.
	if quote.AmountOut.LT(req.MinAmountOut) {
		u.recordSwapError(domain.ErrNoLiquidityAvailable)
		return domain.SwapOutcome{}, domain.ErrNoLiquidityAvailable
	}

	amountOut, err := u.venuesUsecase.ExecuteSwap(ctx, quote.Venue, req.Account, req.AssetIn, req.AssetOut, amountAfterFee, req.MinAmountOut)
	if err != nil {
		u.recordSwapError(err)
		return domain.SwapOutcome{}, err
	}

	outcome := domain.SwapOutcome{
		AmountIn:    req.AmountIn,
		AmountOut:   amountOut,
		ProtocolFee: protocolFee,
		VenueUsed:   quote.Venue,
	}

	// Fee collection happens after execution. The swap itself is already
	// done and is never rolled back for a fee transfer failure: the outcome
	// is returned alongside the error so callers can reconcile.
	feeErr := u.feeCollector.CollectFee(ctx, req.Account, req.AssetIn, protocolFee)

	u.emitter.EmitSwapExecuted(domain.SwapEvent{
		Payer:       req.Account,
		Recipient:   recipient,
		AssetIn:     req.AssetIn,
		AssetOut:    req.AssetOut,
		AmountIn:    req.AmountIn,
		AmountOut:   amountOut,
		ProtocolFee: protocolFee,
		VenueUsed:   quote.Venue,
	})
	domain.SwapRouterSwapsTotalCounter.WithLabelValues(quote.Venue.String()).Inc()

	if feeErr != nil {
		domain.SwapRouterFeeCollectionFailuresCounter.Inc()
		u.logger.Error("protocol fee collection failed after swap execution",
			zap.String("payer", string(req.Account)),
			zap.Stringer("protocol_fee", protocolFee),
			zap.Stringer("venue", quote.Venue),
			zap.Error(feeErr),
		)
		return outcome, &domain.FeeCollectionFailedError{Outcome: outcome, Err: feeErr}
	}

	u.logger.Info("swap executed",
		zap.String("payer", string(req.Account)),
		zap.String("asset_in", string(req.AssetIn)),
		zap.String("asset_out", string(req.AssetOut)),
		zap.Stringer("amount_in", req.AmountIn),
		zap.Stringer("amount_out", amountOut),
		zap.Stringer("protocol_fee", protocolFee),
		zap.Stringer("venue", quote.Venue),
	)

	return outcome, nil
}

// Quote implements mvc.RouterUsecase.
func (u *routerUseCaseImpl) Quote(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.RouterQuote, error) {
	if assetIn == "" || assetOut == "" {
		return domain.RouterQuote{}, domain.ErrInvalidPath
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return domain.RouterQuote{}, domain.ErrZeroAmountIn
	}

	protocolFee := computeProtocolFee(amountIn, u.feeRate)
	amountAfterFee, err := deductFee(amountIn, protocolFee)
	if err != nil {
		return domain.RouterQuote{}, err
	}

	quote, err := u.venuesUsecase.GetBestQuote(ctx, assetIn, assetOut, amountAfterFee)
	if err != nil {
		return domain.RouterQuote{}, err
	}

	domain.SwapRouterQuotesTotalCounter.WithLabelValues(quote.Venue.String()).Inc()

	venueFeeRate, ok := u.venueFeeRates[quote.Venue]
	if !ok {
		venueFeeRate = math.LegacyZeroDec()
	}

	return domain.RouterQuote{
		AmountIn:         amountIn,
		ProtocolFee:      protocolFee,
		AmountInAfterFee: amountAfterFee,
		AmountOut:        quote.AmountOut,
		Venue:            quote.Venue,
		EffectiveFeeRate: combinedFeeRate(u.feeRate, venueFeeRate),
	}, nil
}

// GetConfig implements mvc.RouterUsecase.
func (u *routerUseCaseImpl) GetConfig() domain.RouterConfig {
	return u.config
}

// deductFee subtracts the protocol fee from the input amount. With a fee
// rate below 100% the fee can never exceed the amount, so a negative result
// signals misconfiguration rather than a user error.
func deductFee(amountIn, protocolFee math.Int) (math.Int, error) {
	amountAfterFee := amountIn.Sub(protocolFee)
	if amountAfterFee.IsNegative() {
		return math.Int{}, domain.ErrFeeCalculationFailed
	}
	return amountAfterFee, nil
}

func (u *routerUseCaseImpl) recordSwapError(err error) {
	domain.SwapRouterSwapErrorsTotalCounter.WithLabelValues(swapErrorReason(err)).Inc()
}

// swapErrorReason buckets errors into low-cardinality metric labels.
func swapErrorReason(err error) string {
	var venueErr *domain.VenueExecutionError
	if errors.As(err, &venueErr) {
		return "venue_execution"
	}

	switch {
	case errors.Is(err, domain.ErrAccountNotSpecified),
		errors.Is(err, domain.ErrInvalidPath),
		errors.Is(err, domain.ErrZeroAmountIn),
		errors.Is(err, domain.ErrNegativeMinAmountOut):
		return "invalid_request"
	case errors.Is(err, domain.ErrNoCompatibleVenue):
		return "no_compatible_venue"
	case errors.Is(err, domain.ErrNoLiquidityAvailable):
		return "no_liquidity"
	case errors.Is(err, domain.ErrFeeCalculationFailed):
		return "fee_calculation"
	default:
		return "internal"
	}
}
