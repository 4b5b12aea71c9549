package usecase

import (
	"context"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/log"
)

var _ domain.Venue = &bondingCurveVenue{}

// bondingCurveVenue bridges to an external bonding-curve engine. Curves are
// priced against the native reserve asset, so one side of the pair must be
// the native asset.
type bondingCurveVenue struct {
	venueBase
}

// NewBondingCurveVenue creates a venue adapter over a bonding-curve engine.
func NewBondingCurveVenue(engine domain.PoolEngine, logger log.Logger) domain.Venue {
	return &bondingCurveVenue{
		venueBase: venueBase{
			engine:    engine,
			logger:    logger,
			name:      "BondingCurve",
			venueType: domain.VenueBondingCurve,
		},
	}
}

// CanHandlePair implements domain.Venue.
func (v *bondingCurveVenue) CanHandlePair(ctx context.Context, assetIn, assetOut domain.Asset) bool {
	if assetIn == assetOut {
		return false
	}
	if assetIn != domain.AssetNative && assetOut != domain.AssetNative {
		return false
	}
	return v.hasEnginePool(ctx, assetIn, assetOut)
}
