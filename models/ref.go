package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
)

// RefID is a foreign key as sent by clients. Both 7 and "7" are accepted.
type RefID uint

func (r *RefID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(bytes.Trim(data, `"`))
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(raw), Type: reflect.TypeOf(*r)}
	}
	*r = RefID(v)
	return nil
}

// Quantity is an item count. Both 3 and "3" are accepted.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(bytes.Trim(data, `"`))
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(raw), Type: reflect.TypeOf(*q)}
	}
	*q = Quantity(v)
	return nil
}
