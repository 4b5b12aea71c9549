package events

import (
	"go.uber.org/zap"

	"github.com/swaplabs/swaprouter/domain"
	"github.com/swaplabs/swaprouter/log"
)

var _ domain.Emitter = &logEmitter{}

// logEmitter publishes swap events as structured log records. Downstream
// consumers (analytics, audit) tail the log stream.
type logEmitter struct {
	logger log.Logger
}

// NewLogEmitter creates an emitter that writes events to the given logger.
func NewLogEmitter(logger log.Logger) domain.Emitter {
	return &logEmitter{logger: logger}
}

// EmitSwapExecuted implements domain.Emitter.
func (e *logEmitter) EmitSwapExecuted(event domain.SwapEvent) {
	e.logger.Info("swap_executed",
		zap.String("payer", string(event.Payer)),
		zap.String("recipient", string(event.Recipient)),
		zap.String("asset_in", string(event.AssetIn)),
		zap.String("asset_out", string(event.AssetOut)),
		zap.Stringer("amount_in", event.AmountIn),
		zap.Stringer("amount_out", event.AmountOut),
		zap.Stringer("protocol_fee", event.ProtocolFee),
		zap.Stringer("venue_used", event.VenueUsed),
	)
}
