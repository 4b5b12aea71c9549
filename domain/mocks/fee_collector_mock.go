package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/swaplabs/swaprouter/domain"
)

var _ domain.FeeCollector = &FeeCollectorMock{}

// FeeCollectorMock is a mock implementation of the domain.FeeCollector interface
type FeeCollectorMock struct {
	CollectFeeFunc func(ctx context.Context, payer domain.Account, asset domain.Asset, amount math.Int) error
}

func (m *FeeCollectorMock) CollectFee(ctx context.Context, payer domain.Account, asset domain.Asset, amount math.Int) error {
	if m.CollectFeeFunc != nil {
		return m.CollectFeeFunc(ctx, payer, asset, amount)
	}
	panic("unimplemented")
}
