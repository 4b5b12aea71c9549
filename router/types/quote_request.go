package types

import (
	"cosmossdk.io/math"
	"github.com/labstack/echo/v4"

	"github.com/swaplabs/swaprouter/domain"
)

// QuoteRequest represents the dry-run quote request for the /router/quote
// endpoint.
type QuoteRequest struct {
	AssetIn  domain.Asset
	AssetOut domain.Asset
	AmountIn math.Int
}

// UnmarshalHTTPRequest unmarshals the HTTP request into the QuoteRequest.
func (r *QuoteRequest) UnmarshalHTTPRequest(c echo.Context) error {
	r.AssetIn = domain.Asset(c.QueryParam("assetIn"))
	r.AssetOut = domain.Asset(c.QueryParam("assetOut"))

	if amountIn := c.QueryParam("amountIn"); amountIn != "" {
		parsed, ok := math.NewIntFromString(amountIn)
		if !ok {
			return ErrAmountInNotValid
		}
		r.AmountIn = parsed
	}

	return nil
}

// Validate validates the QuoteRequest.
func (r *QuoteRequest) Validate() error {
	if r.AssetIn == "" {
		return ErrAssetInNotSpecified
	}
	if r.AssetOut == "" {
		return ErrAssetOutNotSpecified
	}
	if r.AmountIn.IsNil() || !r.AmountIn.IsPositive() {
		return ErrAmountInNotValid
	}
	return nil
}
