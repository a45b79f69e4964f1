package its

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// TargetDecimals returns the decimals a token with sourceDecimals gets on a chain
// configured with dest.
func TargetDecimals(sourceDecimals uint8, dest ChainConfig) uint8 {
	return min(sourceDecimals, dest.MaxTargetDecimals)
}

// ScaleAmount converts amount from fromDecimals to toDecimals. Scaling up fails
// with ErrOverflow past dest.MaxUint; scaling down fails with ErrZeroAmount when
// nothing is left.
func ScaleAmount(amount Amount, fromDecimals, toDecimals uint8, dest ChainConfig) (Amount, error) {
	out := amount.Uint256()

	switch {
	case toDecimals > fromDecimals:
		factor, err := pow10(toDecimals - fromDecimals)
		if err != nil {
			return Amount{}, err
		}
		if _, overflow := out.MulOverflow(out, factor); overflow {
			return Amount{}, fmt.Errorf("%w: %s scaled by 10^%d", ErrOverflow, amount, toDecimals-fromDecimals)
		}
	case toDecimals < fromDecimals:
		factor, err := pow10(fromDecimals - toDecimals)
		if err != nil {
			// a divisor past 2^256 leaves nothing
			return Amount{}, fmt.Errorf("%w: %s scaled down by 10^%d", ErrZeroAmount, amount, fromDecimals-toDecimals)
		}
		out.Div(out, factor)
	}

	if !dest.MaxUint.IsZero() && out.Gt(dest.MaxUint.Uint256()) {
		return Amount{}, fmt.Errorf("%w: %s exceeds max uint %s", ErrOverflow, out.Dec(), dest.MaxUint)
	}
	scaled, err := NewAmount(out)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %s scaled down by 10^%d", ErrZeroAmount, amount, fromDecimals-toDecimals)
	}
	return scaled, nil
}

func pow10(exp uint8) (*uint256.Int, error) {
	ten := uint256.NewInt(10)
	out := uint256.NewInt(1)
	for i := uint8(0); i < exp; i++ {
		if _, overflow := out.MulOverflow(out, ten); overflow {
			return nil, fmt.Errorf("%w: 10^%d", ErrOverflow, exp)
		}
	}
	return out, nil
}

// FormatSupply renders a supply in whole tokens, e.g. "1.5" for 1500 with 3 decimals.
func FormatSupply(s TokenSupply, decimals *uint8) string {
	n, ok := s.Amount()
	if !ok {
		return supplyUntracked
	}
	d := decimal.NewFromBigInt(n.ToBig(), 0)
	if decimals != nil {
		d = decimal.NewFromBigInt(n.ToBig(), -int32(*decimals))
	}
	return d.String()
}

// SupplyFloat approximates a supply for gauges.
func SupplyFloat(n *uint256.Int) float64 {
	return decimal.NewFromBigInt(n.ToBig(), 0).InexactFloat64()
}
