package domain

import (
	"cosmossdk.io/math"
)

// SwapEvent is the structured record emitted once per successful swap for
// external consumption (analytics/audit). It is the only durable artifact
// the router produces.
type SwapEvent struct {
	Payer       Account   `json:"payer"`
	Recipient   Account   `json:"recipient"`
	AssetIn     Asset     `json:"asset_in"`
	AssetOut    Asset     `json:"asset_out"`
	AmountIn    math.Int  `json:"amount_in"`
	AmountOut   math.Int  `json:"amount_out"`
	ProtocolFee math.Int  `json:"protocol_fee"`
	VenueUsed   VenueType `json:"venue_used"`
}

// Emitter publishes swap events.
type Emitter interface {
	EmitSwapExecuted(event SwapEvent)
}
