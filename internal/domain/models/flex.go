package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Loosely typed request scalars. Browsers and form builders send ids as numbers or
// numeric strings and flags as booleans, 0/1 or "YES"/"NO"; these types accept all of
// them and keep null/absent distinct from zero.

var jsonNull = []byte("null")

// FlexInt is an optional integer.
type FlexInt struct {
	Value int64
	Valid bool
}

func Int(v int64) FlexInt { return FlexInt{Value: v, Valid: true} }

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = FlexInt{}
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int64(v)) {
			return fmt.Errorf("expected an integer, got %v", v)
		}
		*f = Int(int64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", v)
		}
		*f = Int(n)
	case bool:
		if v {
			*f = Int(1)
		} else {
			*f = Int(0)
		}
	default:
		return fmt.Errorf("expected an integer, got %s", string(b))
	}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return jsonNull, nil
	}
	return []byte(strconv.FormatInt(f.Value, 10)), nil
}

// Arg is the SQL argument: nil when absent.
func (f FlexInt) Arg() any {
	if !f.Valid {
		return nil
	}
	return f.Value
}

// Ptr returns nil when absent.
func (f FlexInt) Ptr() *int64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// FlexFlag is an optional tinyint flag (1/0).
type FlexFlag struct {
	Value bool
	Valid bool
}

func Flag(v bool) FlexFlag { return FlexFlag{Value: v, Valid: true} }

func (f *FlexFlag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = FlexFlag{}
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*f = Flag(v)
	case float64:
		if v != 0 && v != 1 {
			return fmt.Errorf("expected a flag (0/1), got %v", v)
		}
		*f = Flag(v == 1)
	case string:
		parsed, ok, err := ParseFlag(v)
		if err != nil {
			return err
		}
		if ok {
			*f = Flag(parsed)
		}
	default:
		return fmt.Errorf("expected a flag, got %s", string(b))
	}
	return nil
}

func (f FlexFlag) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return jsonNull, nil
	}
	return []byte(strconv.FormatBool(f.Value)), nil
}

// Arg is the SQL argument: 1/0, or nil when absent.
func (f FlexFlag) Arg() any {
	if !f.Valid {
		return nil
	}
	if f.Value {
		return 1
	}
	return 0
}

// ParseFlag reads a textual flag; ok is false for an empty string.
func ParseFlag(s string) (value bool, ok bool, err error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return false, false, nil
	case "1", "TRUE", "YES", "Y":
		return true, true, nil
	case "0", "FALSE", "NO", "N":
		return false, true, nil
	}
	return false, false, fmt.Errorf("expected a flag, got %q", s)
}

// FlexString is an optional string that also accepts numbers.
type FlexString struct {
	Value string
	Valid bool
}

func String(v string) FlexString { return FlexString{Value: v, Valid: true} }

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = FlexString{}
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*f = String(v)
	case float64:
		*f = String(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		*f = String(strconv.FormatBool(v))
	default:
		return fmt.Errorf("expected a string, got %s", string(b))
	}
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return jsonNull, nil
	}
	return json.Marshal(f.Value)
}

// Trimmed returns the trimmed value, or nil when absent or blank.
func (f FlexString) Trimmed() *string {
	if !f.Valid {
		return nil
	}
	s := strings.TrimSpace(f.Value)
	if s == "" {
		return nil
	}
	return &s
}

// Arg is the SQL argument: the raw value, or nil when absent.
func (f FlexString) Arg() any {
	if !f.Valid {
		return nil
	}
	return f.Value
}

// IDList accepts 7, "7", "1,2,3" or [1,2,3] and renders the comma-separated list
// expected by procedures that take several registration ids.
type IDList string

func (l *IDList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*l = ""
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parts := []string{}
	appendOne := func(v any) error {
		switch t := v.(type) {
		case float64:
			parts = append(parts, strconv.FormatInt(int64(t), 10))
		case string:
			for _, p := range strings.Split(t, ",") {
				if p = strings.TrimSpace(p); p != "" {
					parts = append(parts, p)
				}
			}
		default:
			return fmt.Errorf("unsupported id %v", v)
		}
		return nil
	}
	if arr, ok := raw.([]any); ok {
		for _, v := range arr {
			if err := appendOne(v); err != nil {
				return err
			}
		}
	} else if err := appendOne(raw); err != nil {
		return err
	}
	*l = IDList(strings.Join(parts, ","))
	return nil
}

func (l IDList) String() string { return string(l) }
