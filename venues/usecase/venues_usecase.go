package usecase

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/domain/mvc"
	"github.com/swaplabs/swaprouter/log"
)

var _ mvc.VenuesUsecase = &venuesUseCaseImpl{}

type venuesUseCaseImpl struct {
	venues       []domain.Venue
	venuesByType map[domain.VenueType]domain.Venue
	strategy     domain.RoutingStrategy
	logger       log.Logger

	// Caches pair-routability probe results only. Quotes are never cached:
	// they are advisory and must be recomputed per request.
	pairCache *expirable.LRU[string, bool]
}

// NewVenuesUsecase creates the multi-venue manager over the given ordered
// venue set. The order is significant: the routing strategy breaks ties by
// first-encountered order.
func NewVenuesUsecase(venues []domain.Venue, strategy domain.RoutingStrategy, config domain.RouterConfig, logger log.Logger) mvc.VenuesUsecase {
	venuesByType := make(map[domain.VenueType]domain.Venue, len(venues))
	for _, venue := range venues {
		venuesByType[venue.Type()] = venue
	}

	var pairCache *expirable.LRU[string, bool]
	if config.PairCacheSize > 0 {
		pairCache = expirable.NewLRU[string, bool](config.PairCacheSize, nil, time.Duration(config.PairCacheExpirySecs)*time.Second)
	}

	return &venuesUseCaseImpl{
		venues:       venues,
		venuesByType: venuesByType,
		strategy:     strategy,
		logger:       logger,
		pairCache:    pairCache,
	}
}

// GetBestQuote implements mvc.VenuesUsecase.
func (u *venuesUseCaseImpl) GetBestQuote(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (domain.Quote, error) {
	var (
		quotes        = make([]domain.Quote, 0, len(u.venues))
		anyCompatible bool
	)

	for _, venue := range u.venues {
		if !u.canHandlePair(ctx, venue, assetIn, assetOut) {
			continue
		}
		anyCompatible = true

		amountOut, ok := venue.QuotePrice(ctx, assetIn, assetOut, amountIn)
		if !ok {
			u.logger.Debug("venue returned no quote", zap.String("venue", venue.Name()))
			continue
		}

		quotes = append(quotes, domain.Quote{Venue: venue.Type(), AmountOut: amountOut})
	}

	if !anyCompatible {
		return domain.Quote{}, domain.ErrNoCompatibleVenue
	}

	winner, ok := u.strategy.SelectBestVenue(quotes, assetIn, assetOut)
	if !ok {
		return domain.Quote{}, domain.ErrNoLiquidityAvailable
	}

	winningQuote, ok := findQuote(quotes, winner)
	if !ok {
		// The strategy selected a venue it was not given a quote for.
		return domain.Quote{}, fmt.Errorf("strategy selected venue (%s) with no quote", winner)
	}

	u.logger.Debug("best quote selected",
		zap.Stringer("venue", winningQuote.Venue),
		zap.Int("num_quotes", len(quotes)),
	)

	return winningQuote, nil
}

// ExecuteSwap implements mvc.VenuesUsecase. It dispatches to the exact
// venue chosen at quote time; re-quoting here could silently move the
// execution to a different venue than the one the caller was quoted.
func (u *venuesUseCaseImpl) ExecuteSwap(ctx context.Context, venueType domain.VenueType, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
	venue, ok := u.venuesByType[venueType]
	if !ok {
		return math.Int{}, domain.VenueNotConfiguredError{Venue: venueType}
	}

	return venue.ExecuteSwap(ctx, account, assetIn, assetOut, amountIn, minAmountOut)
}

func (u *venuesUseCaseImpl) canHandlePair(ctx context.Context, venue domain.Venue, assetIn, assetOut domain.Asset) bool {
	if u.pairCache == nil {
		return venue.CanHandlePair(ctx, assetIn, assetOut)
	}

	cacheKey := formatPairCacheKey(venue.Name(), assetIn, assetOut)
	if canHandle, ok := u.pairCache.Get(cacheKey); ok {
		domain.SwapRouterPairCacheHitsCounter.Inc()
		return canHandle
	}
	domain.SwapRouterPairCacheMissesCounter.Inc()

	canHandle := venue.CanHandlePair(ctx, assetIn, assetOut)
	u.pairCache.Add(cacheKey, canHandle)

	return canHandle
}

const pairCacheKeySeparator = "|"

func formatPairCacheKey(venueName string, assetIn, assetOut domain.Asset) string {
	return venueName + pairCacheKeySeparator + string(assetIn) + pairCacheKeySeparator + string(assetOut)
}
