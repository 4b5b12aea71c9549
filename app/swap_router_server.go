package main

import (
	"context"
	"time"

	"cosmossdk.io/math"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/domain/mvc"
	"github.com/swaplabs/swaprouter/events"
	feesUseCase "github.com/swaplabs/swaprouter/fees/usecase"
	ledgerclient "github.com/swaplabs/swaprouter/ledger/client"
	"github.com/swaplabs/swaprouter/log"
	"github.com/swaplabs/swaprouter/middleware"
	poolsclient "github.com/swaplabs/swaprouter/pools/client"

	routerHttpDelivery "github.com/swaplabs/swaprouter/router/delivery/http"
	routerUseCase "github.com/swaplabs/swaprouter/router/usecase"
	venuesUseCase "github.com/swaplabs/swaprouter/venues/usecase"

	systemhttpdelivery "github.com/swaplabs/swaprouter/system/delivery/http"
)

// SwapRouterServer defines an interface for the swap router server.
// It wires the configured liquidity venues, the routing strategy and the fee
// collection into the HTTP delivery layer.
type SwapRouterServer interface {
	GetRouterUsecase() mvc.RouterUsecase
	GetVenuesUsecase() mvc.VenuesUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type swapRouterServer struct {
	routerUsecase mvc.RouterUsecase
	venuesUsecase mvc.VenuesUsecase
	e             *echo.Echo
	serverAddress string
	logger        log.Logger
}

// GetRouterUsecase implements SwapRouterServer.
func (s *swapRouterServer) GetRouterUsecase() mvc.RouterUsecase {
	return s.routerUsecase
}

// GetVenuesUsecase implements SwapRouterServer.
func (s *swapRouterServer) GetVenuesUsecase() mvc.VenuesUsecase {
	return s.venuesUsecase
}

// GetLogger implements SwapRouterServer.
func (s *swapRouterServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements SwapRouterServer.
func (s *swapRouterServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// Start implements SwapRouterServer.
func (s *swapRouterServer) Start(context.Context) error {
	s.logger.Info("Starting swap router server", zap.String("address", s.serverAddress))
	err := s.e.Start(s.serverAddress)
	if err != nil {
		return err
	}

	return nil
}

// NewSwapRouterServer creates a new swap router server from config.
func NewSwapRouterServer(config domain.Config, logger log.Logger) (SwapRouterServer, error) {
	if config.Router == nil {
		config.Router = &domain.RouterConfig{}
	}
	if config.CORS == nil {
		config.CORS = &domain.CORSConfig{}
	}

	// Setup echo server
	e := echo.New()
	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	e.Use(middleware.TraceWithParamsMiddleware("swaprouter"))

	if config.ServerTimeoutDurationSecs > 0 {
		timeout := time.Duration(config.ServerTimeoutDurationSecs) * time.Second
		e.Server.ReadTimeout = timeout
		e.Server.WriteTimeout = timeout
	}

	stableAssets := toAssets(config.Router.StableAssets)
	newAssets := toAssets(config.Router.NewAssets)

	// Initialize one venue adapter per configured venue, each bridging to its
	// own external pool engine.
	venues := make([]domain.Venue, 0, len(config.Venues))
	venueFeeRates := make(map[domain.VenueType]math.LegacyDec, len(config.Venues))
	for _, venueConfig := range config.Venues {
		venueType, err := domain.ParseVenueType(venueConfig.Type)
		if err != nil {
			return nil, err
		}

		feeRate, err := venueConfig.FeeRate()
		if err != nil {
			return nil, err
		}
		venueFeeRates[venueType] = feeRate

		engine := poolsclient.NewPoolEngineClient(venueConfig.EngineEndpoint)

		switch venueType {
		case domain.VenueConstantProduct:
			venues = append(venues, venuesUseCase.NewConstantProductVenue(engine, logger))
		case domain.VenueBondingCurve:
			venues = append(venues, venuesUseCase.NewBondingCurveVenue(engine, logger))
		case domain.VenueStableSwap:
			venues = append(venues, venuesUseCase.NewStableSwapVenue(engine, stableAssets, logger))
		}
	}

	var strategy domain.RoutingStrategy
	switch config.Router.Strategy {
	case "policy":
		strategy = venuesUseCase.NewPolicyStrategy(stableAssets, newAssets)
	default:
		strategy = venuesUseCase.BestPriceStrategy{}
	}

	ledger := ledgerclient.NewLedgerClient(config.LedgerEndpoint)
	feeCollector := feesUseCase.NewFixedFeeCollector(ledger, domain.Account(config.Router.FeeSinkAccount), logger)
	emitter := events.NewLogEmitter(logger)

	venuesUsecase := venuesUseCase.NewVenuesUsecase(venues, strategy, *config.Router, logger)
	routerUsecase, err := routerUseCase.NewRouterUsecase(*config.Router, venueFeeRates, venuesUsecase, feeCollector, emitter, logger)
	if err != nil {
		return nil, err
	}

	routerHttpDelivery.NewRouterHandler(e, routerUsecase, logger)
	systemhttpdelivery.NewSystemHandler(e, config, logger, ledger)

	return &swapRouterServer{
		routerUsecase: routerUsecase,
		venuesUsecase: venuesUsecase,
		e:             e,
		serverAddress: config.ServerAddress,
		logger:        logger,
	}, nil
}

func toAssets(assets []string) []domain.Asset {
	result := make([]domain.Asset, 0, len(assets))
	for _, asset := range assets {
		result = append(result, domain.Asset(asset))
	}
	return result
}
