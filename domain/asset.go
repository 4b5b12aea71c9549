package domain

// Asset is an opaque identifier for a fungible asset kind.
// It is cheap to copy, totally ordered and usable as a map key.
type Asset string

// AssetNative is the base network asset.
const AssetNative Asset = "native"

// Account references an account on the external ledger.
type Account string
