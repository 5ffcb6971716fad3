package dto

import (
	"bytes"
	"strconv"
	"strings"
)

// Amount is a lenient numeric field. Clients send money and distance values
// as numbers or as strings copied from form inputs; anything that does not
// parse decodes to zero instead of failing the whole request.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}

	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}

	*a = Amount(v)
	return nil
}

func (a Amount) Float() float64 { return float64(a) }
