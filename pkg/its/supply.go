package its

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
)

// Amount is a non-zero 256-bit quantity of tokens.
type Amount struct {
	v uint256.Int
}

// NewAmount returns v as an Amount, rejecting zero.
func NewAmount(v *uint256.Int) (Amount, error) {
	if v == nil || v.IsZero() {
		return Amount{}, ErrZeroAmount
	}
	var a Amount
	a.v.Set(v)
	return a, nil
}

// MustAmount is NewAmount for constants known to be non-zero.
func MustAmount(v uint64) Amount {
	a, err := NewAmount(uint256.NewInt(v))
	if err != nil {
		panic(err)
	}
	return a
}

// ParseAmount parses a base-10 amount.
func ParseAmount(s string) (Amount, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewAmount(v)
}

// Uint256 returns a copy of the amount.
func (a Amount) Uint256() *uint256.Int {
	return new(uint256.Int).Set(&a.v)
}

func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

func (a Amount) String() string {
	return a.v.Dec()
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.v.Dec()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// TokenSupply is the amount of a token bridged to a chain. An untracked supply
// absorbs every change, a tracked one never wraps.
type TokenSupply struct {
	tracked bool
	amount  uint256.Int
}

// Untracked returns a supply that is not accounted for.
func Untracked() TokenSupply {
	return TokenSupply{}
}

// Tracked returns a supply accounted at n.
func Tracked(n *uint256.Int) TokenSupply {
	s := TokenSupply{tracked: true}
	if n != nil {
		s.amount.Set(n)
	}
	return s
}

func (s TokenSupply) IsTracked() bool {
	return s.tracked
}

// Amount returns a copy of the tracked amount, or false for an untracked supply.
func (s TokenSupply) Amount() (*uint256.Int, bool) {
	if !s.tracked {
		return nil, false
	}
	return new(uint256.Int).Set(&s.amount), true
}

// CheckedAdd returns the supply increased by a. It fails with ErrOverflow
// instead of wrapping.
func (s TokenSupply) CheckedAdd(a Amount) (TokenSupply, error) {
	if !s.tracked {
		return s, nil
	}
	sum, overflow := new(uint256.Int).AddOverflow(&s.amount, &a.v)
	if overflow {
		return s, fmt.Errorf("%w: %s + %s", ErrOverflow, s.amount.Dec(), a)
	}
	return Tracked(sum), nil
}

// CheckedSub returns the supply decreased by a. It fails with ErrUnderflow
// when a exceeds the tracked amount.
func (s TokenSupply) CheckedSub(a Amount) (TokenSupply, error) {
	if !s.tracked {
		return s, nil
	}
	diff, underflow := new(uint256.Int).SubOverflow(&s.amount, &a.v)
	if underflow {
		return s, fmt.Errorf("%w: %s - %s", ErrUnderflow, s.amount.Dec(), a)
	}
	return Tracked(diff), nil
}

func (s TokenSupply) String() string {
	if !s.tracked {
		return "untracked"
	}
	return "tracked(" + s.amount.Dec() + ")"
}

const (
	supplyTracked   = "tracked"
	supplyUntracked = "untracked"
)

type supplyJSON struct {
	Type   string `json:"type"`
	Amount string `json:"amount,omitempty"`
}

func (s TokenSupply) MarshalJSON() ([]byte, error) {
	if !s.tracked {
		return json.Marshal(supplyJSON{Type: supplyUntracked})
	}
	return json.Marshal(supplyJSON{Type: supplyTracked, Amount: s.amount.Dec()})
}

func (s *TokenSupply) UnmarshalJSON(data []byte) error {
	var raw supplyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case supplyUntracked:
		*s = Untracked()
	case supplyTracked:
		n, err := uint256.FromDecimal(raw.Amount)
		if err != nil {
			return fmt.Errorf("invalid tracked supply %q: %w", raw.Amount, err)
		}
		*s = Tracked(n)
	default:
		return fmt.Errorf("unknown token supply type %q", raw.Type)
	}
	return nil
}
