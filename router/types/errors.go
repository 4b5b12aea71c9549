package types

import "errors"

// Handler Errors
var (
	ErrAmountInNotValid     = errors.New("amountIn is invalid - must be a positive integer")
	ErrMinAmountOutNotValid = errors.New("minAmountOut is invalid - must be a non-negative integer")
	ErrAssetInNotSpecified  = errors.New("assetIn is required")
	ErrAssetOutNotSpecified = errors.New("assetOut is required")
)
