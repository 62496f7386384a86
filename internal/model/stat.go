package model

import (
	"encoding/json"
	"strconv"
)

// CompanyStat is a headline figure ("120+ clients", "99.9% uptime"). Value is
// intentionally polymorphic: numeric when the stored value parses as a number,
// otherwise the literal string.
type CompanyStat struct {
	Base

	Label    string    `json:"label"`
	Value    StatValue `json:"value"`
	Prefix   string    `json:"prefix,omitempty"`
	Suffix   string    `json:"suffix,omitempty"`
	Order    int       `json:"order"`
	IsActive bool      `json:"isActive"`
}

// StatValue is a tagged union of number and string. Callers must branch on
// IsNumber rather than assume either representation.
type StatValue struct {
	Number   float64
	Text     string
	IsNumber bool
}

// NumberValue returns the numeric branch of the union.
func NumberValue(n float64) StatValue {
	return StatValue{Number: n, IsNumber: true}
}

// TextValue returns the string branch of the union.
func TextValue(s string) StatValue {
	return StatValue{Text: s}
}

// String renders the value the way the stat page displays it.
func (v StatValue) String() string {
	if v.IsNumber {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

// MarshalJSON writes a bare JSON number or string depending on the branch, so
// the stored document keeps the same polymorphic shape it was read with.
func (v StatValue) MarshalJSON() ([]byte, error) {
	if v.IsNumber {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts either representation. A JSON string that parses as a
// number is promoted to the numeric branch.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*v = NumberValue(n)
		return nil
	}
	*v = TextValue(s)
	return nil
}
