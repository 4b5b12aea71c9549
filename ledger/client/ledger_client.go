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

var _ domain.Ledger = &ledgerClient{}

const (
	transferEndpoint = "/transfer"
	balanceEndpoint  = "/balance"
)

// ledgerClient implements domain.Ledger over the external ledger service's
// JSON API. Each transfer is atomic on the ledger side.
type ledgerClient struct {
	httpClient *http.Client
	url        string
}

// NewLedgerClient creates a ledger client for the given service URL.
func NewLedgerClient(url string) domain.Ledger {
	return &ledgerClient{
		httpClient: deliveryhttp.DefaultClient,
		url:        url,
	}
}

type transferRequest struct {
	From   domain.Account `json:"from"`
	To     domain.Account `json:"to"`
	Asset  domain.Asset   `json:"asset"`
	Amount math.Int       `json:"amount"`
}

type transferResponse struct {
	Applied bool `json:"applied"`
}

type balanceResponse struct {
	Balance math.Int `json:"balance"`
}

// Transfer implements domain.Ledger.
func (c *ledgerClient) Transfer(ctx context.Context, from, to domain.Account, asset domain.Asset, amount math.Int) error {
	request := transferRequest{
		From:   from,
		To:     to,
		Asset:  asset,
		Amount: amount,
	}

	_, err := swaphttp.Post[transferRequest, transferResponse](ctx, c.httpClient, c.url, transferEndpoint, request)
	return err
}

// Balance implements domain.Ledger.
func (c *ledgerClient) Balance(ctx context.Context, account domain.Account, asset domain.Asset) (math.Int, error) {
	query := url.Values{
		"account": {string(account)},
		"asset":   {string(asset)},
	}

	response, err := swaphttp.Get[balanceResponse](ctx, c.httpClient, c.url, balanceEndpoint+"?"+query.Encode())
	if err != nil {
		return math.Int{}, err
	}

	return response.Balance, nil
}
