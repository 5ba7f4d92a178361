package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Non-finite numbers are written as the bare literals Python's json module
// produces and accepts. Longest literal first so "-Infinity" wins over "Infinity".
var nonFiniteLiterals = []string{"-Infinity", "Infinity", "NaN"}

// EncodeJSON keeps the ans, nm, crc field order and writes NaN and ±Inf
// as NaN, Infinity and -Infinity. It is not a json.Marshaler since
// encoding/json rejects those literals in marshaler output.
func (r Report) EncodeJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"ans":[`)
	for i, answer := range r.Ans {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONFloat(&buf, answer); err != nil {
			return nil, err
		}
	}

	buf.WriteString(`],"nm":`)
	name, err := json.Marshal(r.Nm)
	if err != nil {
		return nil, err
	}
	buf.Write(name)

	buf.WriteString(`,"crc":`)
	if err := writeJSONFloat(&buf, r.Crc); err != nil {
		return nil, err
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// DecodeReportJSON accepts the output of EncodeJSON, including the non-finite literals.
func DecodeReportJSON(data []byte) (*Report, error) {
	var aux struct {
		Ans []jsonFloat `json:"ans"`
		Nm  string      `json:"nm"`
		Crc jsonFloat   `json:"crc"`
	}
	if err := json.Unmarshal(quoteNonFinite(data), &aux); err != nil {
		return nil, err
	}

	r := &Report{
		Ans: make([]float64, len(aux.Ans)),
		Nm:  aux.Nm,
		Crc: float64(aux.Crc),
	}
	for i, answer := range aux.Ans {
		r.Ans[i] = float64(answer)
	}
	return r, nil
}

func writeJSONFloat(buf *bytes.Buffer, f float64) error {
	switch {
	case math.IsNaN(f):
		buf.WriteString("NaN")
	case math.IsInf(f, 1):
		buf.WriteString("Infinity")
	case math.IsInf(f, -1):
		buf.WriteString("-Infinity")
	default:
		data, err := json.Marshal(f)
		if err != nil {
			return err
		}
		buf.Write(data)
	}
	return nil
}

type jsonFloat float64

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	var literal string
	if err := json.Unmarshal(data, &literal); err == nil {
		switch literal {
		case "NaN":
			*f = jsonFloat(math.NaN())
		case "Infinity":
			*f = jsonFloat(math.Inf(1))
		case "-Infinity":
			*f = jsonFloat(math.Inf(-1))
		default:
			return fmt.Errorf("invalid number %s", strconv.Quote(literal))
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)
	return nil
}

// quoteNonFinite turns bare NaN/Infinity tokens outside of strings into JSON
// strings so encoding/json can tokenize the document.
func quoteNonFinite(data []byte) []byte {
	out := make([]byte, 0, len(data)+8)
	inString, escaped := false, false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}

		matched := false
		for _, literal := range nonFiniteLiterals {
			if bytes.HasPrefix(data[i:], []byte(literal)) {
				out = append(out, '"')
				out = append(out, literal...)
				out = append(out, '"')
				i += len(literal) - 1
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, c)
		}
	}
	return out
}
