package gwp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCoreGases(t *testing.T) {
	cases := []struct {
		gas        string
		assessment Assessment
		want       float64
	}{
		{"co2", AR5, 1},
		{"co2", AR6, 1},
		{"ch4", AR5, 28},
		{"ch4", AR6, 27.9},
		{"n2o", AR5, 265},
		{"n2o", AR6, 273},
		{"sf6", AR5, 23500},
		{"sf6", AR6, 25200},
		{"r-410a", AR5, 2088},
		{"r-410a", AR6, 2256},
		{"HFC-134a", AR5, 1300},
	}
	for _, c := range cases {
		got, err := Lookup(c.gas, c.assessment)
		require.NoError(t, err, "%s/%s", c.gas, c.assessment)
		assert.Equal(t, c.want, got, "%s/%s", c.gas, c.assessment)
	}
}

func TestLookupCO2eIsAlwaysOne(t *testing.T) {
	for _, a := range []Assessment{AR5, AR6} {
		got, err := Lookup("co2e", a)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got)
	}
}

func TestLookupUnknownGas(t *testing.T) {
	_, err := Lookup("unobtainium", AR6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownGas))
}

func TestToCO2e(t *testing.T) {
	got, err := ToCO2e(10, "r-410a", AR5)
	require.NoError(t, err)
	assert.Equal(t, 20880.0, got)

	got, err = ToCO2e(5, "hfc-134a", AR5)
	require.NoError(t, err)
	assert.Equal(t, 6500.0, got)
}

func TestGases(t *testing.T) {
	gases := Gases(AR6)
	assert.Contains(t, gases, "co2")
	assert.Contains(t, gases, "r-508b")
	assert.True(t, sortedStrings(gases))
	assert.Len(t, gases, len(Gases(AR5)))
}

func TestParseAssessment(t *testing.T) {
	a, err := ParseAssessment("AR5")
	require.NoError(t, err)
	assert.Equal(t, AR5, a)

	a, err = ParseAssessment("")
	require.NoError(t, err)
	assert.Equal(t, AR6, a)

	_, err = ParseAssessment("ar7")
	assert.Error(t, err)
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
