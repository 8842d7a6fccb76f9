package types

// Token identity. The name and permit version are bound into permit sign
// docs, so changing either invalidates signatures issued before the change.
const (
	// TokenName is the human readable token name.
	TokenName = "TRAIL"
	// TokenSymbol is the display symbol.
	TokenSymbol = "TRAIL"
	// TokenDecimals is the number of display decimals.
	TokenDecimals = 18
	// PermitVersion is the permit sign doc version.
	PermitVersion = "1"
)
