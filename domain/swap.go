package domain

import (
	"cosmossdk.io/math"
)

// VenueType identifies which venue adapter produced a quote or executed a swap.
type VenueType int

const (
	VenueConstantProduct VenueType = iota
	VenueBondingCurve
	VenueStableSwap
)

// String returns the string representation of the VenueType.
func (v VenueType) String() string {
	switch v {
	case VenueConstantProduct:
		return "ConstantProduct"
	case VenueBondingCurve:
		return "BondingCurve"
	case VenueStableSwap:
		return "StableSwap"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so that venue types
// serialize by name in JSON responses and event records.
func (v VenueType) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Config-file identifiers for the venue types.
const (
	VenueTypeStrConstantProduct = "constant-product"
	VenueTypeStrBondingCurve    = "bonding-curve"
	VenueTypeStrStableSwap      = "stable-swap"
)

// ParseVenueType parses a config-file venue type identifier.
func ParseVenueType(s string) (VenueType, error) {
	switch s {
	case VenueTypeStrConstantProduct:
		return VenueConstantProduct, nil
	case VenueTypeStrBondingCurve:
		return VenueBondingCurve, nil
	case VenueTypeStrStableSwap:
		return VenueStableSwap, nil
	default:
		return 0, UnsupportedVenueTypeError{VenueType: s}
	}
}

// Quote pairs a venue with the amount of output asset it claims it would
// produce for a given input. Quotes are advisory and ephemeral: they are
// computed on demand and never persisted.
type Quote struct {
	Venue     VenueType `json:"venue"`
	AmountOut math.Int  `json:"amount_out"`
}

// SwapRequest is a caller-supplied request to exchange AmountIn of AssetIn
// for at least MinAmountOut of AssetOut. It is validated before any side
// effect occurs.
type SwapRequest struct {
	Account      Account  `json:"account"`
	Recipient    Account  `json:"recipient"`
	AssetIn      Asset    `json:"asset_in"`
	AssetOut     Asset    `json:"asset_out"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	// KeepAlive is accepted for wire compatibility with ledgers that
	// distinguish allow-death transfers. It does not alter routing.
	KeepAlive bool `json:"keep_alive"`
}

// Validate checks the request shape. All failures here occur before any
// side effect.
func (r SwapRequest) Validate() error {
	if r.Account == "" {
		return ErrAccountNotSpecified
	}
	if r.AssetIn == "" || r.AssetOut == "" {
		return ErrInvalidPath
	}
	if r.AmountIn.IsNil() || !r.AmountIn.IsPositive() {
		return ErrZeroAmountIn
	}
	if r.MinAmountOut.IsNil() || r.MinAmountOut.IsNegative() {
		return ErrNegativeMinAmountOut
	}
	return nil
}

// SwapOutcome is produced once per successful swap. AmountIn is the
// original user-facing amount, before the protocol fee deduction.
type SwapOutcome struct {
	AmountIn    math.Int  `json:"amount_in"`
	AmountOut   math.Int  `json:"amount_out"`
	ProtocolFee math.Int  `json:"protocol_fee"`
	VenueUsed   VenueType `json:"venue_used"`
}
