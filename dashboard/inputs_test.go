package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacex-dashboard/models"
)

func TestInputsRangeForms(t *testing.T) {
	want := models.PayloadRange{Low: 1000, High: 5000}
	in := Inputs{
		"json":   []any{1000.0, 5000.0},
		"floats": []float64{1000, 5000},
		"range":  want,
		"query":  " 1000 , 5000",
	}

	for id := range in {
		got, err := in.Range(id)
		require.NoError(t, err, id)
		assert.Equal(t, want, got, id)
	}
}

func TestInputsRangeRejects(t *testing.T) {
	in := Inputs{
		"short":  []any{1.0},
		"mixed":  []any{1.0, "x"},
		"number": 4.0,
		"text":   "1000",
		"nan":    "a,b",
	}

	for id := range in {
		_, err := in.Range(id)
		assert.ErrorIs(t, err, ErrInvalidInput, id)
	}
	_, err := in.Range("absent")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInputsString(t *testing.T) {
	in := Inputs{"site": "KSC LC-39A", "n": 1.0}

	s, err := in.String("site")
	require.NoError(t, err)
	assert.Equal(t, "KSC LC-39A", s)

	_, err = in.String("n")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = in.String("absent")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFormatRangeRoundTrip(t *testing.T) {
	r := models.PayloadRange{Low: 2500, High: 7500.5}
	assert.Equal(t, "2500,7500.5", FormatRange(r))

	got, err := ParseRange(FormatRange(r))
	require.NoError(t, err)
	assert.Equal(t, r, got)
}
