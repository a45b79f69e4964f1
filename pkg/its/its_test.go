package its

import (
	"encoding/json"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maxUint256() *uint256.Int {
	return new(uint256.Int).SetAllOne()
}

func u8(v uint8) *uint8 {
	return &v
}

func TestAmount(t *testing.T) {
	_, err := NewAmount(uint256.NewInt(0))
	require.ErrorIs(t, err, ErrZeroAmount)

	_, err = NewAmount(nil)
	require.ErrorIs(t, err, ErrZeroAmount)

	_, err = ParseAmount("0")
	require.ErrorIs(t, err, ErrZeroAmount)

	_, err = ParseAmount("-1")
	require.Error(t, err)

	a, err := ParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)
	assert.Equal(t, maxUint256(), a.Uint256())

	raw, err := json.Marshal(MustAmount(42))
	require.NoError(t, err)
	assert.JSONEq(t, `"42"`, string(raw))

	var back Amount
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, MustAmount(42), back)
}

func TestTokenSupply_CheckedAdd(t *testing.T) {
	s, err := Tracked(uint256.NewInt(100)).CheckedAdd(MustAmount(50))
	require.NoError(t, err)
	assert.Equal(t, Tracked(uint256.NewInt(150)), s)

	full := Tracked(maxUint256())
	s, err = full.CheckedAdd(MustAmount(1))
	require.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, full, s)
}

func TestTokenSupply_CheckedSub(t *testing.T) {
	s, err := Tracked(uint256.NewInt(100)).CheckedSub(MustAmount(100))
	require.NoError(t, err)
	assert.Equal(t, Tracked(uint256.NewInt(0)), s)

	start := Tracked(uint256.NewInt(100))
	s, err = start.CheckedSub(MustAmount(150))
	require.ErrorIs(t, err, ErrUnderflow)
	assert.Equal(t, start, s)
}

func TestTokenSupply_DebitThenCreditRestores(t *testing.T) {
	for _, n := range []uint64{1, 7, 100, 1 << 40} {
		for _, amount := range []uint64{1, 3, 100} {
			if amount > n {
				continue
			}
			start := Tracked(uint256.NewInt(n))
			debited, err := start.CheckedSub(MustAmount(amount))
			require.NoError(t, err)

			got, ok := debited.Amount()
			require.True(t, ok)
			assert.Equal(t, uint256.NewInt(n-amount), got)

			restored, err := debited.CheckedAdd(MustAmount(amount))
			require.NoError(t, err)
			assert.Equal(t, start, restored)
		}
	}
}

func TestTokenSupply_UntrackedAbsorbs(t *testing.T) {
	for _, amount := range []Amount{MustAmount(1), MustAmount(1 << 62)} {
		s, err := Untracked().CheckedAdd(amount)
		require.NoError(t, err)
		assert.Equal(t, Untracked(), s)

		s, err = Untracked().CheckedSub(amount)
		require.NoError(t, err)
		assert.Equal(t, Untracked(), s)
	}

	huge, err := NewAmount(maxUint256())
	require.NoError(t, err)
	s, err := Untracked().CheckedSub(huge)
	require.NoError(t, err)
	assert.False(t, s.IsTracked())
}

func TestTokenSupply_JSON(t *testing.T) {
	tests := []struct {
		supply TokenSupply
		json   string
	}{
		{supply: Untracked(), json: `{"type":"untracked"}`},
		{supply: Tracked(nil), json: `{"type":"tracked","amount":"0"}`},
		{supply: Tracked(uint256.NewInt(12345)), json: `{"type":"tracked","amount":"12345"}`},
	}
	for _, tc := range tests {
		t.Run(tc.supply.String(), func(t *testing.T) {
			raw, err := json.Marshal(tc.supply)
			require.NoError(t, err)
			assert.JSONEq(t, tc.json, string(raw))

			var back TokenSupply
			require.NoError(t, json.Unmarshal(raw, &back))
			assert.Equal(t, tc.supply, back)
		})
	}

	var s TokenSupply
	require.Error(t, json.Unmarshal([]byte(`{"type":"minted"}`), &s))
	require.Error(t, json.Unmarshal([]byte(`{"type":"tracked","amount":"x"}`), &s))
}

func TestNewInstance(t *testing.T) {
	assert.Equal(t, Untracked(), NewOriginInstance(u8(18)).Supply)
	assert.Equal(t, Tracked(nil), NewInstance(DeploymentTrustless, u8(6)).Supply)
	assert.Equal(t, Untracked(), NewInstance(DeploymentCustomMinter, nil).Supply)
	assert.Equal(t, u8(6), NewInstance(DeploymentTrustless, u8(6)).Decimals)
}

func TestParseTokenID(t *testing.T) {
	hex := "0x00000000000000000000000000000000000000000000000000000000000000ff"
	id, err := ParseTokenID(hex)
	require.NoError(t, err)
	assert.Equal(t, hex, id.String())

	_, err = ParseTokenID("0xff")
	require.ErrorIs(t, err, ErrInvalidTokenID)

	_, err = ParseTokenID("not-hex")
	require.ErrorIs(t, err, ErrInvalidTokenID)

	raw, err := json.Marshal(id)
	require.NoError(t, err)
	var back TokenID
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, id, back)
}

func TestDeploymentType_Validate(t *testing.T) {
	require.NoError(t, DeploymentTrustless.Validate())
	require.NoError(t, DeploymentCustomMinter.Validate())
	require.ErrorIs(t, DeploymentType("lock_unlock").Validate(), ErrInvalidDeploymentType)
}

func TestTargetDecimals(t *testing.T) {
	dest := ChainConfig{MaxUint: MustAmount(1 << 62), MaxTargetDecimals: 6}
	assert.Equal(t, uint8(6), TargetDecimals(18, dest))
	assert.Equal(t, uint8(2), TargetDecimals(2, dest))
}

func TestScaleAmount(t *testing.T) {
	dest := ChainConfig{MaxUint: MustAmount(1_000_000_000), MaxTargetDecimals: 6}

	got, err := ScaleAmount(MustAmount(1_500_000_000_000_000_000), 18, 6, dest)
	require.NoError(t, err)
	assert.Equal(t, MustAmount(1_500_000), got)

	got, err = ScaleAmount(MustAmount(15), 1, 3, dest)
	require.NoError(t, err)
	assert.Equal(t, MustAmount(1500), got)

	got, err = ScaleAmount(MustAmount(7), 6, 6, dest)
	require.NoError(t, err)
	assert.Equal(t, MustAmount(7), got)

	_, err = ScaleAmount(MustAmount(999), 18, 6, dest)
	require.ErrorIs(t, err, ErrZeroAmount)

	_, err = ScaleAmount(MustAmount(2), 0, 9, dest)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = ScaleAmount(MustAmount(1), 0, 90, ChainConfig{MaxUint: MustAmount(1)})
	require.ErrorIs(t, err, ErrOverflow)

	_, err = ScaleAmount(MustAmount(1), 90, 0, dest)
	require.ErrorIs(t, err, ErrZeroAmount)
}

func TestFormatSupply(t *testing.T) {
	assert.Equal(t, "untracked", FormatSupply(Untracked(), u8(18)))
	assert.Equal(t, "1.5", FormatSupply(Tracked(uint256.NewInt(1500)), u8(3)))
	assert.Equal(t, "1500", FormatSupply(Tracked(uint256.NewInt(1500)), nil))
	assert.InDelta(t, 1500.0, SupplyFloat(uint256.NewInt(1500)), 0)
}
