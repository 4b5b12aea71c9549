package client

import (
	"context"
	"net/http"
	"net/url"

	"cosmossdk.io/math"

	deliveryhttp "github.com/swaplabs/swaprouter/delivery/http"
	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/swaputil/swaphttp"
)

var _ domain.PoolEngine = &poolEngineClient{}

const (
	poolEndpoint  = "/pool"
	quoteEndpoint = "/quote"
	swapEndpoint  = "/swap"
)

// poolEngineClient implements domain.PoolEngine over an external pool
// engine's JSON API. The engine owns the pricing math and reserve storage;
// this client only bridges to it.
type poolEngineClient struct {
	httpClient *http.Client
	url        string
}

// NewPoolEngineClient creates a pool engine client for the given engine URL.
func NewPoolEngineClient(url string) domain.PoolEngine {
	return &poolEngineClient{
		httpClient: deliveryhttp.DefaultClient,
		url:        url,
	}
}

type poolResponse struct {
	Exists bool `json:"exists"`
}

type quoteResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

type swapRequest struct {
	Account      domain.Account `json:"account"`
	AssetIn      domain.Asset   `json:"asset_in"`
	AssetOut     domain.Asset   `json:"asset_out"`
	AmountIn     math.Int       `json:"amount_in"`
	MinAmountOut math.Int       `json:"min_amount_out"`
}

type swapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// HasPool implements domain.PoolEngine.
func (c *poolEngineClient) HasPool(ctx context.Context, assetIn, assetOut domain.Asset) (bool, error) {
	response, err := swaphttp.Get[poolResponse](ctx, c.httpClient, c.url, poolEndpoint+"?"+formatPairQuery(assetIn, assetOut).Encode())
	if err != nil {
		return false, err
	}

	return response.Exists, nil
}

// QuoteExactIn implements domain.PoolEngine.
func (c *poolEngineClient) QuoteExactIn(ctx context.Context, assetIn, assetOut domain.Asset, amountIn math.Int) (math.Int, error) {
	query := formatPairQuery(assetIn, assetOut)
	query.Set("amountIn", amountIn.String())

	response, err := swaphttp.Get[quoteResponse](ctx, c.httpClient, c.url, quoteEndpoint+"?"+query.Encode())
	if err != nil {
		return math.Int{}, err
	}

	return response.AmountOut, nil
}

// SwapExactIn implements domain.PoolEngine.
func (c *poolEngineClient) SwapExactIn(ctx context.Context, account domain.Account, assetIn, assetOut domain.Asset, amountIn, minAmountOut math.Int) (math.Int, error) {
	request := swapRequest{
		Account:      account,
		AssetIn:      assetIn,
		AssetOut:     assetOut,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	}

	response, err := swaphttp.Post[swapRequest, swapResponse](ctx, c.httpClient, c.url, swapEndpoint, request)
	if err != nil {
		return math.Int{}, err
	}

	return response.AmountOut, nil
}

func formatPairQuery(assetIn, assetOut domain.Asset) url.Values {
	return url.Values{
		"assetIn":  {string(assetIn)},
		"assetOut": {string(assetOut)},
	}
}
