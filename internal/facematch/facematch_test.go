package facematch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func vec(n int, fill float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = fill
	}
	return v
}

func TestDistance(t *testing.T) {
	a := []float64{0, 3}
	b := []float64{4, 0}
	assert.InDelta(t, 5.0, Distance(a, b), 1e-12)
	assert.Equal(t, 0.0, Distance(a, a))
}

func TestDistance_MismatchedLength(t *testing.T) {
	assert.True(t, math.IsInf(Distance(vec(128, 0), vec(64, 0)), 1))
	assert.True(t, math.IsInf(Distance(nil, nil), 1))
}

func TestMatch_FirstUnderThresholdNotNearest(t *testing.T) {
	live := vec(128, 0)

	// alice is further than bob but enrolled first; store order wins.
	alice := vec(128, 0)
	alice[0] = 0.4 // distance 0.4
	bob := vec(128, 0)
	bob[0] = 0.1 // distance 0.1

	candidates := []Candidate{
		{Email: "alice@x.com", Descriptor: alice},
		{Email: "bob@x.com", Descriptor: bob},
	}

	res, ok := Match(live, candidates, Options{})
	assert.True(t, ok)
	assert.Equal(t, "alice@x.com", res.Email)
	assert.InDelta(t, 0.4, res.Distance, 1e-12)
}

func TestMatch_NearestMode(t *testing.T) {
	live := vec(128, 0)

	alice := vec(128, 0)
	alice[0] = 0.4
	bob := vec(128, 0)
	bob[0] = 0.1

	candidates := []Candidate{
		{Email: "alice@x.com", Descriptor: alice},
		{Email: "bob@x.com", Descriptor: bob},
	}

	res, ok := Match(live, candidates, Options{Nearest: true})
	assert.True(t, ok)
	assert.Equal(t, "bob@x.com", res.Email)
}

func TestMatch_NoneUnderThreshold(t *testing.T) {
	live := vec(128, 0)
	far := vec(128, 0)
	far[0] = 0.9

	_, ok := Match(live, []Candidate{{Email: "alice@x.com", Descriptor: far}}, Options{})
	assert.False(t, ok)

	_, ok = Match(live, nil, Options{})
	assert.False(t, ok)
}

func TestMatch_ExactThresholdIsNotAMatch(t *testing.T) {
	live := vec(128, 0)
	edge := vec(128, 0)
	edge[0] = 0.5

	// Rule is strictly less-than.
	_, ok := Match(live, []Candidate{{Email: "edge@x.com", Descriptor: edge}}, Options{Threshold: 0.5})
	assert.False(t, ok)
}

func TestMatch_CustomThreshold(t *testing.T) {
	live := vec(128, 0)
	near := vec(128, 0)
	near[0] = 0.3

	_, ok := Match(live, []Candidate{{Email: "a@x.com", Descriptor: near}}, Options{Threshold: 0.2})
	assert.False(t, ok)

	res, ok := Match(live, []Candidate{{Email: "a@x.com", Descriptor: near}}, Options{Threshold: 0.35})
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", res.Email)
}
