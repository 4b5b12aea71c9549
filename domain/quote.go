package domain

import (
	"cosmossdk.io/math"
)

// RouterQuote is the dry-run result of the routing protocol: the protocol
// fee that would be charged, the winning venue and its advisory quote on
// the fee-reduced amount. No state is mutated to produce it.
type RouterQuote struct {
	AmountIn         math.Int       `json:"amount_in"`
	ProtocolFee      math.Int       `json:"protocol_fee"`
	AmountInAfterFee math.Int       `json:"amount_in_after_fee"`
	AmountOut        math.Int       `json:"amount_out"`
	Venue            VenueType      `json:"venue"`
	EffectiveFeeRate math.LegacyDec `json:"effective_fee_rate"`
}
