package request

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// CreateOptions is bound from the query string of create endpoints.
type CreateOptions struct {
	SkipValidation bool `form:"skip_validation"`
}

// LooseString accepts a JSON string or a JSON number and keeps its text,
// so quantity rules can report non-numeric input themselves.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = LooseString(n.String())
	return nil
}

func (s LooseString) String() string {
	return string(s)
}

// ParseID reads a path id as a 32-bit integer.
func ParseID(raw string) (int32, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
