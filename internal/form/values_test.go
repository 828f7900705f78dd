package form

import (
	"encoding/json"
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatDefaultsToZero(t *testing.T) {
	v := Values{
		"salary":  "247451",
		"bonus":   12.5,
		"garbage": "twelve",
		"blank":   "   ",
		"grouped": "1,250,000",
		"nothing": nil,
	}

	assert.Equal(t, 247451.0, v.Float("salary"))
	assert.Equal(t, 12.5, v.Float("bonus"))
	assert.Zero(t, v.Float("garbage"))
	assert.Zero(t, v.Float("blank"))
	assert.Zero(t, v.Float("missing"))
	assert.Zero(t, v.Float("nothing"))
	assert.Equal(t, 1250000.0, v.Float("grouped"))
}

func TestIntTruncates(t *testing.T) {
	v := Values{"children": "2.9", "cc": 1498.0, "neg": "-3"}

	assert.Equal(t, 2, v.Int("children"))
	assert.Equal(t, 1498, v.Int("cc"))
	assert.Equal(t, -3, v.Int("neg"))
	assert.Zero(t, v.Int("missing"))
}

func TestIntSaturatesOutOfRange(t *testing.T) {
	v := Values{"cc": "1e20", "children": 1e300, "neg": "-1e20"}

	assert.Equal(t, math.MaxInt32, v.Int("cc"))
	assert.Equal(t, math.MaxInt32, v.Int("children"))
	assert.Equal(t, math.MinInt32, v.Int("neg"))
}

func TestBool(t *testing.T) {
	v := Values{"dealer": "on", "special": "false", "flag": true, "odd": "maybe", "blank": ""}

	assert.True(t, v.Bool("dealer", false))
	assert.False(t, v.Bool("special", true))
	assert.True(t, v.Bool("flag", false))
	assert.True(t, v.Bool("odd", true))
	assert.True(t, v.Bool("missing", true))
	assert.False(t, v.Bool("blank", false))
}

func TestString(t *testing.T) {
	v := Values{"frequency": "  weekly ", "n": 5}

	assert.Equal(t, "weekly", v.String("frequency"))
	assert.Equal(t, "5", v.String("n"))
	assert.Equal(t, "", v.String("missing"))
}

func TestFloatsFromJSON(t *testing.T) {
	var v Values
	require.NoError(t, json.Unmarshal([]byte(`{"items":[15000,"5000","x"],"total":"20000"}`), &v))

	items, ok := v.Floats("items")
	require.True(t, ok)
	assert.Equal(t, []float64{15000, 5000, 0}, items)

	_, ok = v.Floats("total")
	assert.False(t, ok)
	_, ok = v.Floats("missing")
	assert.False(t, ok)
}

func TestFromURL(t *testing.T) {
	v := FromURL(url.Values{
		"baseSalary":   {"308540"},
		"taxableItems": {"5000", "2500"},
		"dealer":       {"on"},
	})

	assert.Equal(t, 308540.0, v.Float("baseSalary"))
	items, ok := v.Floats("taxableItems")
	require.True(t, ok)
	assert.Equal(t, []float64{5000, 2500}, items)
	assert.True(t, v.Bool("dealer", false))
	assert.True(t, v.Has("baseSalary"))
	assert.False(t, v.Has("children"))
}
