// File: /models/types.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSON array of strings stored in a json column. It is
// decoded once when read from the database so callers always see a slice.
type StringList []string

// Value implements driver.Valuer interface for database storage
func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(sl))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner interface for database retrieval
func (sl *StringList) Scan(value interface{}) error {
	if value == nil {
		*sl = StringList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(raw) == 0 {
		*sl = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		// legacy rows stored a single URL instead of an array
		*sl = StringList{string(raw)}
		return nil
	}
	*sl = StringList(out)
	return nil
}

// GormDataType returns the data type for GORM
func (StringList) GormDataType() string {
	return "json"
}

func (sl StringList) MarshalJSON() ([]byte, error) {
	if sl == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(sl))
}

// UnmarshalJSON accepts either an array or a JSON-encoded array inside a
// string, which is how older clients send imagens.
func (sl *StringList) UnmarshalJSON(data []byte) error {
	var slice []string
	if err := json.Unmarshal(data, &slice); err == nil {
		*sl = StringList(slice)
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("expected array of strings: %w", err)
	}
	if encoded == "" {
		*sl = StringList{}
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), &slice); err != nil {
		*sl = StringList{encoded}
		return nil
	}
	*sl = StringList(slice)
	return nil
}

// RawJSON keeps an opaque JSON document, e.g. a gateway response.
type RawJSON json.RawMessage

func (j RawJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *RawJSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = RawJSON(v)
	default:
		return fmt.Errorf("cannot scan %T into RawJSON", value)
	}
	return nil
}

func (RawJSON) GormDataType() string {
	return "json"
}

func (j RawJSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

func (j *RawJSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[:0], data...)
	return nil
}
