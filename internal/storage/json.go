package storage

import (
	"encoding/json"
	"errors"
)

// marshalJSON encodes a value into JSONB, returning nil for empty values.
func marshalJSON(value any) (json.RawMessage, error) {
	if value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}

// unmarshalJSON decodes JSONB into the provided target.
func unmarshalJSON(data json.RawMessage, target any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}

var (
	errNilProfile    = errors.New("profile cannot be nil")
	errNilEngagement = errors.New("engagement cannot be nil")
)
