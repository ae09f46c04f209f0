package store

import "fmt"

// Outcome is the per-item result of a purchase.
type Outcome int

const (
	Purchased Outcome = iota
	OutOfStock
	NotFound
)

// BuyResult is the result of buying one id. Entry holds the book and its stock right
// after that item was processed; it is zero when the outcome is NotFound.
type BuyResult struct {
	Outcome Outcome
	Entry   Entry
}

var outcomeNames = map[Outcome]string{
	Purchased:  "PURCHASED",
	OutOfStock: "OUT_OF_STOCK",
	NotFound:   "NOT_FOUND",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText encodes the outcome by name so JSON payloads stay readable.
func (o Outcome) MarshalText() ([]byte, error) {
	name, ok := outcomeNames[o]
	if !ok {
		return nil, fmt.Errorf("unknown purchase outcome %d", int(o))
	}
	return []byte(name), nil
}

// UnmarshalText decodes an outcome name produced by MarshalText.
func (o *Outcome) UnmarshalText(text []byte) error {
	for k, v := range outcomeNames {
		if v == string(text) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown purchase outcome %q", text)
}
