package usecase

import (
	"context"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/log"
)

var _ domain.Venue = &constantProductVenue{}

// constantProductVenue bridges to an external constant-product (x*y=k)
// pool engine. It handles any pair the engine has a pool for.
type constantProductVenue struct {
	venueBase
}

// NewConstantProductVenue creates a venue adapter over a constant-product
// pool engine.
func NewConstantProductVenue(engine domain.PoolEngine, logger log.Logger) domain.Venue {
	return &constantProductVenue{
		venueBase: venueBase{
			engine:    engine,
			logger:    logger,
			name:      "ConstantProduct",
			venueType: domain.VenueConstantProduct,
		},
	}
}

// CanHandlePair implements domain.Venue.
func (v *constantProductVenue) CanHandlePair(ctx context.Context, assetIn, assetOut domain.Asset) bool {
	if assetIn == assetOut {
		return false
	}
	return v.hasEnginePool(ctx, assetIn, assetOut)
}
