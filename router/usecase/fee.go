package usecase

import (
	"cosmossdk.io/math"
)

// computeProtocolFee returns the protocol fee for a given input amount with
// floor rounding. Rounding down favors the user: for small amounts the fee
// truncates to zero rather than charging a full unit.
func computeProtocolFee(amountIn math.Int, feeRate math.LegacyDec) math.Int {
	return feeRate.MulInt(amountIn).TruncateInt()
}

// combinedFeeRate returns the total effective fee rate when the protocol
// fee and the venue's internal fee are applied sequentially:
//
//	combined = 1 - (1 - routerRate) * (1 - venueRate)
//
// The rates do not simply add because the venue fee applies to the already
// fee-reduced amount.
func combinedFeeRate(routerRate, venueRate math.LegacyDec) math.LegacyDec {
	one := math.LegacyOneDec()
	return one.Sub(one.Sub(routerRate).Mul(one.Sub(venueRate)))
}
