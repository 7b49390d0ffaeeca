package jsonschema

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/go-json-experiment/json"
)

// Rat wraps a big.Rat to enable custom JSON marshaling/unmarshaling and
// exact-decimal numeric comparison. multipleOf/maximum/minimum and friends
// use this instead of float64 arithmetic because 0.1+0.2 style rounding
// error would otherwise produce false negatives.
type Rat struct {
	*big.Rat
}

// UnmarshalJSON implements json.Unmarshaler for Rat.
func (r *Rat) UnmarshalJSON(data []byte) error {
	var tmp interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	converted, err := convertToBigRat(tmp)
	if err != nil {
		return err
	}
	r.Rat = converted
	return nil
}

// MarshalJSON implements json.Marshaler for Rat.
func (r *Rat) MarshalJSON() ([]byte, error) {
	formatted := FormatRat(r)
	if strings.Contains(formatted, "/") {
		return json.Marshal(formatted)
	}
	return []byte(formatted), nil
}

// convertToBigRat converts a decoded JSON scalar (number or numeric string)
// into a big.Rat.
func convertToBigRat(data interface{}) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	case *big.Rat:
		return v, nil
	default:
		return nil, ErrUnsupportedTypeForRat
	}

	numRat := new(big.Rat)
	if _, ok := numRat.SetString(str); !ok {
		return nil, ErrFailedToConvertToRat
	}
	return numRat, nil
}

// NewRat creates a Rat from a decoded JSON scalar.
func NewRat(value interface{}) (*Rat, error) {
	converted, err := convertToBigRat(value)
	if err != nil {
		return nil, err
	}
	return &Rat{converted}, nil
}

// FormatRat renders a Rat as a minimal decimal string: a plain integer when
// exact, else a fixed-precision decimal with trailing zeros trimmed.
func FormatRat(r *Rat) string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}

	dec := r.FloatString(10)
	trimmed := strings.TrimRight(dec, "0")
	trimmed = strings.TrimRight(trimmed, ".")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
