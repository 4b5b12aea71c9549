package domain

import (
	"cosmossdk.io/math"
)

// Config defines the config for the swap router server.
type Config struct {
	// Defines the web server configuration.
	ServerAddress             string `mapstructure:"server-address"`
	ServerTimeoutDurationSecs int    `mapstructure:"timeout-duration-secs"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// Endpoint of the external ledger service used for fee collection.
	LedgerEndpoint string `mapstructure:"ledger-endpoint"`

	// Router encapsulates the router config.
	Router *RouterConfig `mapstructure:"router"`

	// Venues is the deployment-time set of liquidity venues.
	Venues []VenueConfig `mapstructure:"venues"`

	CORS *CORSConfig `mapstructure:"cors"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// RouterConfig defines the protocol fee and venue-selection policy.
// It is built once at startup and immutable thereafter.
type RouterConfig struct {
	// Protocol fee rate in parts per million (e.g. 2000 = 0.2%).
	FeeRatePpm uint64 `mapstructure:"fee-rate-ppm"`

	// Account that receives protocol fees.
	FeeSinkAccount string `mapstructure:"fee-sink-account"`

	// Venue-selection strategy: "best-price" (default) or "policy".
	Strategy string `mapstructure:"strategy"`

	// Assets flagged as stable for the policy strategy.
	StableAssets []string `mapstructure:"stable-assets"`

	// Assets flagged as new/thin for the policy strategy.
	NewAssets []string `mapstructure:"new-assets"`

	// Pair-routability probe cache. Quotes are never cached.
	PairCacheSize       int    `mapstructure:"pair-cache-size"`
	PairCacheExpirySecs uint64 `mapstructure:"pair-cache-expiry-secs"`
}

const feeRatePpmDenominator = 1_000_000

// FeeRate converts the configured parts-per-million rate into a decimal.
// Returns InvalidFeeRateError for rates at or above 100%.
func (c RouterConfig) FeeRate() (math.LegacyDec, error) {
	if c.FeeRatePpm >= feeRatePpmDenominator {
		return math.LegacyDec{}, InvalidFeeRateError{RatePpm: c.FeeRatePpm}
	}
	return math.LegacyNewDec(int64(c.FeeRatePpm)).QuoInt64(feeRatePpmDenominator), nil
}

// VenueConfig defines a single liquidity venue entry.
type VenueConfig struct {
	// Venue type: "constant-product", "bonding-curve" or "stable-swap".
	Type string `mapstructure:"type"`

	// Endpoint of the external liquidity-pool engine backing the venue.
	EngineEndpoint string `mapstructure:"engine-endpoint"`

	// The venue's own fee in parts per million. Informational: it is applied
	// internally by the engine and only used for reporting the combined rate.
	FeeRatePpm uint64 `mapstructure:"fee-rate-ppm"`
}

// FeeRate converts the venue fee into a decimal for combined-rate reporting.
func (c VenueConfig) FeeRate() (math.LegacyDec, error) {
	if c.FeeRatePpm >= feeRatePpmDenominator {
		return math.LegacyDec{}, InvalidFeeRateError{RatePpm: c.FeeRatePpm}
	}
	return math.LegacyNewDec(int64(c.FeeRatePpm)).QuoInt64(feeRatePpmDenominator), nil
}

// CORSConfig defines the CORS headers applied by the middleware.
type CORSConfig struct {
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
	AllowedOrigin  string `mapstructure:"allowed-origin"`
}

// OTELConfig defines the sentry/otel reporting configuration.
type OTELConfig struct {
	DSN                string  `mapstructure:"dsn"`
	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
	Environment        string  `mapstructure:"environment"`

	CustomSampleRate OTELCustomSampleRate `mapstructure:"custom-sample-rate"`
}

// OTELCustomSampleRate defines per-endpoint trace sampling rates.
type OTELCustomSampleRate struct {
	Swap  float64 `mapstructure:"swap"`
	Other float64 `mapstructure:"other"`
}
