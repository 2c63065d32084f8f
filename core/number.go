package core

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FlexInt decodes from a JSON number, a numeric string, an empty string or null.
// The backend is not consistent about quoting counters and ids.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decoding quoted number")
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	if i, err := strconv.Atoi(raw); err == nil {
		*n = FlexInt(i)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Errorf("invalid number %s", data)
	}
	f = math.Trunc(f)
	if math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return errors.Errorf("number out of range %s", data)
	}
	*n = FlexInt(int(f))
	return nil
}

func (n FlexInt) Int() int { return int(n) }

func (n FlexInt) String() string { return strconv.Itoa(int(n)) }
