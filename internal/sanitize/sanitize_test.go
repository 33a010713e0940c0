package sanitize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapReplacesNonFiniteAtAnyDepth(t *testing.T) {
	in := map[string]any{
		"fees":  math.NaN(),
		"name":  "Computer Science",
		"count": 3,
		"nested": map[string]any{
			"pos": math.Inf(1),
			"ok":  1.5,
			"deeper": map[string]any{
				"neg": math.Inf(-1),
			},
		},
		"examAccepted": []map[string]any{
			{"name": "IELTS", "score": math.NaN()},
			{"name": "PTE", "score": 58.0},
		},
		"mixed":  []any{1.0, math.NaN(), "x", map[string]any{"f": float32(math.Inf(1))}},
		"months": []string{"January"},
		"nil":    nil,
	}

	out := Map(in)

	assert.Nil(t, out["fees"])
	assert.Equal(t, "Computer Science", out["name"])
	assert.Equal(t, 3, out["count"])

	nested := out["nested"].(map[string]any)
	assert.Nil(t, nested["pos"])
	assert.Equal(t, 1.5, nested["ok"])
	assert.Nil(t, nested["deeper"].(map[string]any)["neg"])

	exams := out["examAccepted"].([]any)
	require.Len(t, exams, 2)
	assert.Equal(t, map[string]any{"name": "IELTS", "score": nil}, exams[0])
	assert.Equal(t, map[string]any{"name": "PTE", "score": 58.0}, exams[1])

	mixed := out["mixed"].([]any)
	assert.Equal(t, []any{1.0, nil, "x", map[string]any{"f": nil}}, mixed)

	assert.Equal(t, []string{"January"}, out["months"])
	assert.Contains(t, out, "nil")
	assert.Nil(t, out["nil"])

	// input untouched
	assert.True(t, math.IsNaN(in["fees"].(float64)))

	_, err := json.Marshal(out)
	require.NoError(t, err)
}

func TestValueScalars(t *testing.T) {
	nan := math.NaN()
	fin := 2.5

	assert.Nil(t, Value(nan))
	assert.Nil(t, Value(&nan))
	assert.Nil(t, Value((*float64)(nil)))
	assert.Equal(t, 2.5, Value(&fin))
	assert.Equal(t, "s", Value("s"))
	assert.Equal(t, true, Value(true))
	assert.Nil(t, Map(nil))
}
