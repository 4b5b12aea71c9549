package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliveryhttp "github.com/swaplabs/swaprouter/delivery/http"
	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/domain/mvc"
	"github.com/swaplabs/swaprouter/log"
	"github.com/swaplabs/swaprouter/router/types"
)

// RouterHandler  represent the httphandler for the router
type RouterHandler struct {
	RUsecase mvc.RouterUsecase
	logger   log.Logger
}

const routerResource = "/router"

func formatRouterResource(resource string) string {
	return routerResource + resource
}

// NewRouterHandler will initialize the router/ resources endpoint
func NewRouterHandler(e *echo.Echo, us mvc.RouterUsecase, logger log.Logger) {
	handler := &RouterHandler{
		RUsecase: us,
		logger:   logger,
	}
	e.POST(formatRouterResource("/swap"), handler.ExecuteSwap)
	e.GET(formatRouterResource("/quote"), handler.GetQuote)
	e.GET(formatRouterResource("/config"), handler.GetConfig)
}

// @Summary Execute Swap
// @Description routes a single-hop swap to the best liquidity venue, deducts the protocol fee
// and enforces the caller's minimum-output guarantee. The path must contain exactly one input
// and one output asset.
// @ID execute-swap
// @Accept  json
// @Produce  json
// @Param  request  body  types.SwapRequest  true  "The swap request."
// @Success 200  {object}  domain.SwapOutcome  "The executed swap outcome"
// @Router /router/swap [post]
func (a *RouterHandler) ExecuteSwap(c echo.Context) error {
	ctx, span := deliveryhttp.Span(c)

	var req types.SwapRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	outcome, err := a.RUsecase.Swap(ctx, req.ToDomain())
	if err != nil {
		deliveryhttp.RecordSpanError(ctx, span, err)
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, outcome)
}

// @Summary Dry-Run Quote
// @Description returns the protocol fee and the best advisory venue quote for the given pair
// and amount without executing. The quote is not binding at execution time.
// @ID get-router-quote
// @Produce  json
// @Param  assetIn  query  string  true  "The input asset identifier."
// @Param  assetOut  query  string  true  "The output asset identifier."
// @Param  amountIn  query  string  true  "The input amount as a positive integer."
// @Success 200  {object}  domain.RouterQuote  "The computed quote"
// @Router /router/quote [get]
func (a *RouterHandler) GetQuote(c echo.Context) error {
	ctx, span := deliveryhttp.Span(c)

	var req types.QuoteRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	quote, err := a.RUsecase.Quote(ctx, req.AssetIn, req.AssetOut, req.AmountIn)
	if err != nil {
		deliveryhttp.RecordSpanError(ctx, span, err)
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quote)
}

// @Summary Router Config
// @Description returns the router's fee and strategy configuration.
// @ID get-router-config
// @Produce  json
// @Success 200  {object}  domain.RouterConfig  "The router config"
// @Router /router/config [get]
func (a *RouterHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, a.RUsecase.GetConfig())
}
