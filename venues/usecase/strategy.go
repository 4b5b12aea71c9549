package usecase

import (
	"cosmossdk.io/math"

	"github.com/swaplabs/swaprouter/domain"
)

var (
	_ domain.RoutingStrategy = BestPriceStrategy{}
	_ domain.RoutingStrategy = &PolicyStrategy{}
)

// BestPriceStrategy picks the quote with the strictly greatest output
// amount. Ties are broken by first-encountered order over the input slice,
// which makes selection deterministic for a fixed venue ordering.
type BestPriceStrategy struct{}

// SelectBestVenue implements domain.RoutingStrategy.
func (BestPriceStrategy) SelectBestVenue(quotes []domain.Quote, _, _ domain.Asset) (domain.VenueType, bool) {
	if len(quotes) == 0 {
		return 0, false
	}

	best := quotes[0]
	for _, quote := range quotes[1:] {
		if quote.AmountOut.GT(best.AmountOut) {
			best = quote
		}
	}

	return best.Venue, true
}

// stableToleranceNumerator and stableToleranceDenominator define the
// tolerance band for the stable-pair override: the stable-swap venue wins
// as long as its quote is at least 99% of the best quote.
const (
	stableToleranceNumerator   = 99
	stableToleranceDenominator = 100
)

// PolicyStrategy overrides the pure best-price choice under explicit,
// named conditions:
//   - a pair of flagged stable assets prefers the stable-swap venue as long
//     as its quote is within the tolerance band of the best quote;
//   - a pair touching a flagged new/thin asset prefers the bonding-curve
//     venue regardless of price.
//
// Both overrides are pure functions of (assetIn, assetOut, quotes).
type PolicyStrategy struct {
	stableAssets map[domain.Asset]struct{}
	newAssets    map[domain.Asset]struct{}
}

// NewPolicyStrategy creates a policy-aware strategy from explicit asset
// sets. No hidden global state is consulted at selection time.
func NewPolicyStrategy(stableAssets, newAssets []domain.Asset) *PolicyStrategy {
	stableSet := make(map[domain.Asset]struct{}, len(stableAssets))
	for _, asset := range stableAssets {
		stableSet[asset] = struct{}{}
	}

	newSet := make(map[domain.Asset]struct{}, len(newAssets))
	for _, asset := range newAssets {
		newSet[asset] = struct{}{}
	}

	return &PolicyStrategy{
		stableAssets: stableSet,
		newAssets:    newSet,
	}
}

// SelectBestVenue implements domain.RoutingStrategy.
func (s *PolicyStrategy) SelectBestVenue(quotes []domain.Quote, assetIn, assetOut domain.Asset) (domain.VenueType, bool) {
	if len(quotes) == 0 {
		return 0, false
	}

	if s.isNewAsset(assetIn) || s.isNewAsset(assetOut) {
		for _, quote := range quotes {
			if quote.Venue == domain.VenueBondingCurve {
				return quote.Venue, true
			}
		}
	}

	if s.isStablePair(assetIn, assetOut) {
		if stableQuote, ok := findQuote(quotes, domain.VenueStableSwap); ok {
			bestAmount := bestAmountOut(quotes)
			// within the band when quote*100 >= best*99
			if stableQuote.AmountOut.MulRaw(stableToleranceDenominator).GTE(bestAmount.MulRaw(stableToleranceNumerator)) {
				return stableQuote.Venue, true
			}
		}
	}

	return BestPriceStrategy{}.SelectBestVenue(quotes, assetIn, assetOut)
}

func (s *PolicyStrategy) isStablePair(assetIn, assetOut domain.Asset) bool {
	_, inStable := s.stableAssets[assetIn]
	_, outStable := s.stableAssets[assetOut]
	return inStable && outStable
}

func (s *PolicyStrategy) isNewAsset(asset domain.Asset) bool {
	_, ok := s.newAssets[asset]
	return ok
}

func findQuote(quotes []domain.Quote, venueType domain.VenueType) (domain.Quote, bool) {
	for _, quote := range quotes {
		if quote.Venue == venueType {
			return quote, true
		}
	}
	return domain.Quote{}, false
}

func bestAmountOut(quotes []domain.Quote) math.Int {
	best := quotes[0].AmountOut
	for _, quote := range quotes[1:] {
		if quote.AmountOut.GT(best) {
			best = quote.AmountOut
		}
	}
	return best
}
