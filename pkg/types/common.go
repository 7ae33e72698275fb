package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	NO_PAGINATION     uint64 = 0
	DEFAULT_PAGE      uint64 = 1
	DEFAULT_PAGE_SIZE uint64 = 20
)

const (
	LANGUAGE_SV_KEY = "sv"
	LANGUAGE_EN_KEY = "en"
)

// StringList is a JSON-encoded text column holding a list of strings.
type StringList []string

func (s StringList) String() string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func (s StringList) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *StringList) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		return s.scanBytes(src)
	case string:
		return s.scanBytes([]byte(src))
	case nil:
		*s = nil
		return nil
	}
	return fmt.Errorf("pq: cannot convert %T to StringList", src)
}

func (s *StringList) scanBytes(src []byte) error {
	if len(src) == 0 {
		*s = StringList{}
		return nil
	}
	return json.Unmarshal(src, s)
}

// StringMap is a JSON-encoded text column holding a string map.
type StringMap map[string]string

func (s StringMap) String() string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func (s StringMap) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *StringMap) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		return s.scanBytes(src)
	case string:
		return s.scanBytes([]byte(src))
	case nil:
		*s = nil
		return nil
	}
	return fmt.Errorf("pq: cannot convert %T to StringMap", src)
}

func (s *StringMap) scanBytes(src []byte) error {
	if len(src) == 0 {
		*s = StringMap{}
		return nil
	}
	return json.Unmarshal(src, s)
}

// FloatMap is a JSON-encoded text column holding numeric KPI values.
type FloatMap map[string]float64

func (s FloatMap) String() string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func (s FloatMap) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *FloatMap) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		return s.scanBytes(src)
	case string:
		return s.scanBytes([]byte(src))
	case nil:
		*s = nil
		return nil
	}
	return fmt.Errorf("pq: cannot convert %T to FloatMap", src)
}

func (s *FloatMap) scanBytes(src []byte) error {
	if len(src) == 0 {
		*s = FloatMap{}
		return nil
	}
	return json.Unmarshal(src, s)
}
