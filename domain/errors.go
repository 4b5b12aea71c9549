package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternalServerError will throw if any internal server error happens
	ErrInternalServerError = errors.New("internal server error")
	// ErrInvalidPath will throw if the swap path is not exactly a single hop
	ErrInvalidPath = errors.New("invalid path: exactly one input and one output asset are required")
	// ErrZeroAmountIn will throw if the swap amount is zero or negative
	ErrZeroAmountIn = errors.New("amount in must be positive")
	// ErrNegativeMinAmountOut will throw if the minimum output is negative
	ErrNegativeMinAmountOut = errors.New("min amount out must not be negative")
	// ErrAccountNotSpecified will throw if the request has no account
	ErrAccountNotSpecified = errors.New("account is required")
	// ErrNoCompatibleVenue will throw if no configured venue claims the pair
	ErrNoCompatibleVenue = errors.New("no compatible venue for the asset pair")
	// ErrNoLiquidityAvailable will throw if venues exist but cannot satisfy
	// the amount or the minimum-output constraint
	ErrNoLiquidityAvailable = errors.New("no liquidity available")
	// ErrFeeCalculationFailed will throw if the protocol fee arithmetic fails;
	// it indicates a misconfigured fee rate
	ErrFeeCalculationFailed = errors.New("fee calculation failed")
)

// GetStatusCode returns the HTTP status code for a given error.
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var feeCollectionErr *FeeCollectionFailedError
	if errors.As(err, &feeCollectionErr) {
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(err, ErrInvalidPath),
		errors.Is(err, ErrZeroAmountIn),
		errors.Is(err, ErrNegativeMinAmountOut),
		errors.Is(err, ErrAccountNotSpecified),
		errors.Is(err, ErrNoCompatibleVenue),
		errors.Is(err, ErrNoLiquidityAvailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// InvalidFeeRateError is an error type for a configured protocol fee rate
// at or above 100%. It is a configuration defect, surfaced at startup.
type InvalidFeeRateError struct {
	RatePpm uint64
}

func (e InvalidFeeRateError) Error() string {
	return fmt.Sprintf("protocol fee rate (%d ppm) must be below 1000000", e.RatePpm)
}

// UnsupportedVenueTypeError is an error type for an unknown venue type in
// configuration or dispatch.
type UnsupportedVenueTypeError struct {
	VenueType string
}

func (e UnsupportedVenueTypeError) Error() string {
	return fmt.Sprintf("unsupported venue type (%s)", e.VenueType)
}

// VenueNotConfiguredError is an error type for dispatching to a venue that
// is not part of the configured set.
type VenueNotConfiguredError struct {
	Venue VenueType
}

func (e VenueNotConfiguredError) Error() string {
	return fmt.Sprintf("venue (%s) is not configured", e.Venue)
}

// VenueExecutionError wraps a venue-level execution failure. No funds have
// moved when it is returned: the venue rejected execution after quoting.
type VenueExecutionError struct {
	Venue VenueType
	Err   error
}

func (e *VenueExecutionError) Error() string {
	return fmt.Sprintf("venue (%s) failed to execute swap: %s", e.Venue, e.Err)
}

func (e *VenueExecutionError) Unwrap() error {
	return e.Err
}

// FeeCollectionFailedError reports the one case where the system has
// produced a side effect (the executed swap) without completing its own
// invariant (the protocol fee transfer). The executed outcome is carried so
// operators can reconcile.
type FeeCollectionFailedError struct {
	Outcome SwapOutcome
	Err     error
}

func (e *FeeCollectionFailedError) Error() string {
	return fmt.Sprintf("swap executed through venue (%s) but protocol fee (%s) collection failed: %s", e.Outcome.VenueUsed, e.Outcome.ProtocolFee, e.Err)
}

func (e *FeeCollectionFailedError) Unwrap() error {
	return e.Err
}
