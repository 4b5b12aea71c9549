package mocks

import (
	"github.com/swaplabs/swaprouter/domain"
)

var _ domain.Emitter = &EmitterMock{}

// EmitterMock is a mock implementation of the domain.Emitter interface.
// It records every emitted event for assertions.
type EmitterMock struct {
	Events []domain.SwapEvent
}

func (m *EmitterMock) EmitSwapExecuted(event domain.SwapEvent) {
	m.Events = append(m.Events, event)
}
