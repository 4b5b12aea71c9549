package types

import (
	"cosmossdk.io/math"
	"github.com/labstack/echo/v4"

	"github.com/swaplabs/swaprouter/domain"
)

// SwapRequest represents the JSON body of the /router/swap endpoint. The
// swap path is wire-compatible with multi-hop callers but only single-hop
// paths (exactly two assets) are accepted.
type SwapRequest struct {
	Account      string   `json:"account"`
	Recipient    string   `json:"recipient"`
	Path         []string `json:"path"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	KeepAlive    bool     `json:"keep_alive"`
}

// UnmarshalHTTPRequest unmarshals the HTTP request body into the SwapRequest.
func (r *SwapRequest) UnmarshalHTTPRequest(c echo.Context) error {
	if err := c.Bind(r); err != nil {
		return err
	}

	if r.MinAmountOut.IsNil() {
		r.MinAmountOut = math.ZeroInt()
	}

	return nil
}

// Validate validates the SwapRequest.
func (r *SwapRequest) Validate() error {
	if len(r.Path) != 2 {
		return domain.ErrInvalidPath
	}
	return r.ToDomain().Validate()
}

// ToDomain converts the wire request into the domain request.
func (r *SwapRequest) ToDomain() domain.SwapRequest {
	var assetIn, assetOut domain.Asset
	if len(r.Path) == 2 {
		assetIn = domain.Asset(r.Path[0])
		assetOut = domain.Asset(r.Path[1])
	}

	return domain.SwapRequest{
		Account:      domain.Account(r.Account),
		Recipient:    domain.Account(r.Recipient),
		AssetIn:      assetIn,
		AssetOut:     assetOut,
		AmountIn:     r.AmountIn,
		MinAmountOut: r.MinAmountOut,
		KeepAlive:    r.KeepAlive,
	}
}
