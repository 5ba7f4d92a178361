package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_EncodeJSON_Finite(t *testing.T) {
	report := &Report{Ans: []float64{0, 0, 1.414, 0.4, 0, 0}, Nm: "AB", Crc: 28.23609}
	data, err := report.EncodeJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"ans":[0,0,1.414,0.4,0,0],"nm":"AB","crc":28.23609}`, string(data))

	// Finite output is plain JSON.
	var plain map[string]any
	require.NoError(t, json.Unmarshal(data, &plain))
	assert.Equal(t, "AB", plain["nm"])

	data, err = Report{Nm: "AB"}.EncodeJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"ans":[],"nm":"AB","crc":0}`, string(data))
}

func TestReport_EncodeJSON_NonFinite(t *testing.T) {
	report := &Report{
		Ans: []float64{math.Inf(1), math.NaN(), math.Inf(-1), 1.5, 0, 0},
		Nm:  `say "NaN"`,
		Crc: math.NaN(),
	}

	data, err := report.EncodeJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"ans":[Infinity,NaN,-Infinity,1.5,0,0],"nm":"say \"NaN\"","crc":NaN}`, string(data))

	decoded, err := DecodeReportJSON(data)
	require.NoError(t, err)

	require.Len(t, decoded.Ans, 6)
	assert.True(t, math.IsInf(decoded.Ans[0], 1))
	assert.True(t, math.IsNaN(decoded.Ans[1]))
	assert.True(t, math.IsInf(decoded.Ans[2], -1))
	assert.Equal(t, []float64{1.5, 0, 0}, decoded.Ans[3:])
	assert.Equal(t, `say "NaN"`, decoded.Nm)
	assert.True(t, math.IsNaN(decoded.Crc))
}

func TestDecodeReportJSON_Invalid(t *testing.T) {
	_, err := DecodeReportJSON([]byte(`{"ans":["oops"],"nm":"AB","crc":0}`))
	assert.Error(t, err)

	_, err = DecodeReportJSON([]byte(`{"ans":[1,`))
	assert.Error(t, err)
}
