package usecase

import (
	"context"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/log"
)

var _ domain.Venue = &stableSwapVenue{}

// stableSwapVenue bridges to an external stable-swap curve engine. It only
// handles pairs where both assets are in its configured stable set.
type stableSwapVenue struct {
	venueBase

	stableAssets map[domain.Asset]struct{}
}

// NewStableSwapVenue creates a venue adapter over a stable-swap engine for
// the given set of stable assets.
func NewStableSwapVenue(engine domain.PoolEngine, stableAssets []domain.Asset, logger log.Logger) domain.Venue {
	stableSet := make(map[domain.Asset]struct{}, len(stableAssets))
	for _, asset := range stableAssets {
		stableSet[asset] = struct{}{}
	}

	return &stableSwapVenue{
		venueBase: venueBase{
			engine:    engine,
			logger:    logger,
			name:      "StableSwap",
			venueType: domain.VenueStableSwap,
		},
		stableAssets: stableSet,
	}
}

// CanHandlePair implements domain.Venue.
func (v *stableSwapVenue) CanHandlePair(ctx context.Context, assetIn, assetOut domain.Asset) bool {
	if assetIn == assetOut {
		return false
	}

	if _, ok := v.stableAssets[assetIn]; !ok {
		return false
	}
	if _, ok := v.stableAssets[assetOut]; !ok {
		return false
	}

	return v.hasEnginePool(ctx, assetIn, assetOut)
}
