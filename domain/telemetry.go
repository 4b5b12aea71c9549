package domain

import "github.com/prometheus/client_golang/prometheus"

var (
	// swaprouter_swaps_total
	//
	// counter that measures the number of successfully executed swaps
	//
	// Has the following labels:
	// * venue - the venue that executed the swap
	SwapRouterSwapsTotalMetricName = "swaprouter_swaps_total"

	// swaprouter_swap_errors_total
	//
	// counter that measures the number of failed swap requests
	//
	// Has the following labels:
	// * reason - the error kind
	SwapRouterSwapErrorsTotalMetricName = "swaprouter_swap_errors_total"

	// swaprouter_fee_collection_failures_total
	//
	// counter that measures the number of swaps that executed but whose
	// protocol fee transfer failed post-hoc
	SwapRouterFeeCollectionFailuresMetricName = "swaprouter_fee_collection_failures_total"

	// swaprouter_quotes_total
	//
	// counter that measures the number of quote requests served
	//
	// Has the following labels:
	// * venue - the venue that won the quote
	SwapRouterQuotesTotalMetricName = "swaprouter_quotes_total"

	// swaprouter_pair_cache_hits_total
	//
	// counter that measures the number of pair-routability cache hits
	SwapRouterPairCacheHitsMetricName = "swaprouter_pair_cache_hits_total"

	// swaprouter_pair_cache_misses_total
	//
	// counter that measures the number of pair-routability cache misses
	SwapRouterPairCacheMissesMetricName = "swaprouter_pair_cache_misses_total"

	SwapRouterSwapsTotalCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SwapRouterSwapsTotalMetricName,
			Help: "Total number of successfully executed swaps",
		},
		[]string{"venue"},
	)

	SwapRouterSwapErrorsTotalCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SwapRouterSwapErrorsTotalMetricName,
			Help: "Total number of failed swap requests",
		},
		[]string{"reason"},
	)

	SwapRouterFeeCollectionFailuresCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: SwapRouterFeeCollectionFailuresMetricName,
			Help: "Total number of swaps whose protocol fee transfer failed after execution",
		},
	)

	SwapRouterQuotesTotalCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SwapRouterQuotesTotalMetricName,
			Help: "Total number of quote requests served",
		},
		[]string{"venue"},
	)

	SwapRouterPairCacheHitsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: SwapRouterPairCacheHitsMetricName,
			Help: "Total number of pair-routability cache hits",
		},
	)

	SwapRouterPairCacheMissesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: SwapRouterPairCacheMissesMetricName,
			Help: "Total number of pair-routability cache misses",
		},
	)
)

func init() {
	prometheus.MustRegister(SwapRouterSwapsTotalCounter)
	prometheus.MustRegister(SwapRouterSwapErrorsTotalCounter)
	prometheus.MustRegister(SwapRouterFeeCollectionFailuresCounter)
	prometheus.MustRegister(SwapRouterQuotesTotalCounter)
	prometheus.MustRegister(SwapRouterPairCacheHitsCounter)
	prometheus.MustRegister(SwapRouterPairCacheMissesCounter)
}
