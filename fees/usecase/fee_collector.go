package usecase

import (
	"context"

	"cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/log"
)

var (
	_ domain.FeeCollector = &fixedFeeCollector{}
	_ domain.FeeCollector = &dynamicFeeCollector{}
	_ domain.FeeCollector = &tieredFeeCollector{}
)

// fixedFeeCollector transfers the charged fee unmodified from the payer to
// the protocol fee sink.
type fixedFeeCollector struct {
	ledger  domain.Ledger
	feeSink domain.Account
	logger  log.Logger
}

// NewFixedFeeCollector creates a collector that charges the fee as given.
func NewFixedFeeCollector(ledger domain.Ledger, feeSink domain.Account, logger log.Logger) domain.FeeCollector {
	return &fixedFeeCollector{
		ledger:  ledger,
		feeSink: feeSink,
		logger:  logger,
	}
}

// CollectFee implements domain.FeeCollector. A zero amount is a successful
// no-op: a zero-value transfer is never attempted.
func (c *fixedFeeCollector) CollectFee(ctx context.Context, payer domain.Account, asset domain.Asset, amount math.Int) error {
	return collect(ctx, c.ledger, c.logger, payer, c.feeSink, asset, amount)
}

// MarketRateFunc supplies the market-condition multiplier for dynamic fee
// collection. It is the explicit signal source: implementations may read
// volatility or congestion data, but must be injected at construction.
type MarketRateFunc func(asset domain.Asset) math.LegacyDec

// dynamicFeeCollector recomputes the charged amount from a market-condition
// signal before transferring it.
type dynamicFeeCollector struct {
	ledger     domain.Ledger
	feeSink    domain.Account
	marketRate MarketRateFunc
	logger     log.Logger
}

// NewDynamicFeeCollector creates a collector whose charged amount is scaled
// by the injected market-rate signal.
func NewDynamicFeeCollector(ledger domain.Ledger, feeSink domain.Account, marketRate MarketRateFunc, logger log.Logger) domain.FeeCollector {
	return &dynamicFeeCollector{
		ledger:     ledger,
		feeSink:    feeSink,
		marketRate: marketRate,
		logger:     logger,
	}
}

// CollectFee implements domain.FeeCollector.
func (c *dynamicFeeCollector) CollectFee(ctx context.Context, payer domain.Account, asset domain.Asset, amount math.Int) error {
	adjusted := scaleFee(amount, c.marketRate(asset))
	return collect(ctx, c.ledger, c.logger, payer, c.feeSink, asset, adjusted)
}

// TierRateFunc supplies the payer-specific multiplier for tiered fee
// collection (volume tier, stake). Injected at construction.
type TierRateFunc func(payer domain.Account) math.LegacyDec

// tieredFeeCollector scales the charged amount by a payer-specific tier.
type tieredFeeCollector struct {
	ledger   domain.Ledger
	feeSink  domain.Account
	tierRate TierRateFunc
	logger   log.Logger
}

// NewTieredFeeCollector creates a collector whose charged amount is scaled
// by the payer's tier.
func NewTieredFeeCollector(ledger domain.Ledger, feeSink domain.Account, tierRate TierRateFunc, logger log.Logger) domain.FeeCollector {
	return &tieredFeeCollector{
		ledger:   ledger,
		feeSink:  feeSink,
		tierRate: tierRate,
		logger:   logger,
	}
}

// CollectFee implements domain.FeeCollector.
func (c *tieredFeeCollector) CollectFee(ctx context.Context, payer domain.Account, asset domain.Asset, amount math.Int) error {
	adjusted := scaleFee(amount, c.tierRate(payer))
	return collect(ctx, c.ledger, c.logger, payer, c.feeSink, asset, adjusted)
}

// scaleFee applies a multiplier with floor rounding. The result is clamped
// to the original amount so a misbehaving signal can never charge more than
// the fee the router computed.
func scaleFee(amount math.Int, rate math.LegacyDec) math.Int {
	if rate.IsNil() || rate.IsNegative() {
		return math.ZeroInt()
	}

	scaled := rate.MulInt(amount).TruncateInt()
	if scaled.GT(amount) {
		return amount
	}
	return scaled
}

func collect(ctx context.Context, ledger domain.Ledger, logger log.Logger, payer, feeSink domain.Account, asset domain.Asset, amount math.Int) error {
	if amount.IsNil() || amount.IsZero() {
		return nil
	}

	if err := ledger.Transfer(ctx, payer, feeSink, asset, amount); err != nil {
		return err
	}

	logger.Debug("protocol fee collected",
		zap.String("payer", string(payer)),
		zap.String("asset", string(asset)),
		zap.Stringer("amount", amount),
	)

	return nil
}
