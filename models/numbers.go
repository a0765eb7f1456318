package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotAnInteger is returned when a JSON value cannot be read as an integer.
var ErrNotAnInteger = errors.New("value is not an integer")

// FlexInt is an integer that can be sent either as a JSON number or as a
// JSON string holding a base-10 number. Form-based web clients send "2"
// as often as 2.
type FlexInt int64

// UnmarshalJSON implements [json.Unmarshaler].
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(strings.TrimSpace(s))
	}

	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotAnInteger, raw)
	}

	*n = FlexInt(v)
	return nil
}

// Int64 returns n as int64.
func (n FlexInt) Int64() int64 {
	return int64(n)
}

// LabelIDs is a list of health label identifiers. A single id is accepted
// in place of a list and normalized to a one-element list.
type LabelIDs []int64

// UnmarshalJSON implements [json.Unmarshaler].
func (l *LabelIDs) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if len(raw) > 0 && raw[0] == '[' {
		var items []FlexInt
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}

		ids := make(LabelIDs, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.Int64())
		}
		*l = ids
		return nil
	}

	var single FlexInt
	if err := json.Unmarshal(raw, &single); err != nil {
		return err
	}
	*l = LabelIDs{single.Int64()}

	return nil
}
