package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// healthy returns metrics that breach no threshold; tests override one
// field at a time.
func healthy() Metrics {
	return Metrics{
		SkiftID:     1,
		SkiftNumber: "S-1",
		KmOpptatt:   100,
		TotalKm:     200,
		AntTurer:    15,
		LonnBasis:   5000,
	}
}

func TestEvaluateHealthy(t *testing.T) {
	ev := Evaluate(healthy())
	assert.False(t, ev.ShouldAlert)
	assert.Empty(t, ev.Reasons)
	assert.Equal(t, "", ev.Reason())
}

func TestThresholdBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Metrics)
		reasons []string
	}{
		{
			name:   "km opptatt exactly 40 passes",
			mutate: func(m *Metrics) { m.KmOpptatt = 40 },
		},
		{
			// TotalKm 100 keeps the occupied percent at 39.999%, well
			// above its own threshold
			name:    "km opptatt just below 40",
			mutate:  func(m *Metrics) { m.KmOpptatt = 39.999; m.TotalKm = 100 },
			reasons: []string{ReasonKmOpptatt},
		},
		{
			name:   "occupied percent exactly 20 passes",
			mutate: func(m *Metrics) { m.KmOpptatt = 40; m.TotalKm = 200 },
		},
		{
			name:    "occupied percent just below 20",
			mutate:  func(m *Metrics) { m.KmOpptatt = 40; m.TotalKm = 201 },
			reasons: []string{ReasonOpptattProsent},
		},
		{
			name:   "trip count exactly 10 passes",
			mutate: func(m *Metrics) { m.AntTurer = 10 },
		},
		{
			name:    "trip count just below 10",
			mutate:  func(m *Metrics) { m.AntTurer = 9 },
			reasons: []string{ReasonAntTurer},
		},
		{
			name:   "salary basis exactly 2000 passes",
			mutate: func(m *Metrics) { m.LonnBasis = 2000 },
		},
		{
			name:    "salary basis just below 2000",
			mutate:  func(m *Metrics) { m.LonnBasis = 1999.99 },
			reasons: []string{ReasonLonnBasis},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := healthy()
			tt.mutate(&m)
			ev := Evaluate(m)
			assert.Equal(t, len(tt.reasons) > 0, ev.ShouldAlert)
			assert.Equal(t, tt.reasons, ev.Reasons)
		})
	}
}

func TestZeroDistanceSkift(t *testing.T) {
	m := healthy()
	m.TotalKm = 0

	assert.Equal(t, 0.0, m.OpptattProsent())

	ev := Evaluate(m)
	assert.True(t, ev.ShouldAlert)
	assert.Contains(t, ev.Reasons, ReasonOpptattProsent)
	assert.NotContains(t, ev.Reasons, ReasonKmOpptatt)
}

func TestReasonOrdering(t *testing.T) {
	ev := Evaluate(Metrics{KmOpptatt: 0, TotalKm: 0, AntTurer: 0, LonnBasis: 0})

	assert.True(t, ev.ShouldAlert)
	assert.Equal(t, "Km opptatt < 40, Opptatt% < 20%, Antall turer < 10, Lønnsgrunnlag < 2000", ev.Reason())
}

func TestScenarioNoAlert(t *testing.T) {
	ev := Evaluate(Metrics{TotalKm: 100, KmOpptatt: 50, AntTurer: 12, LonnBasis: 3000})
	assert.False(t, ev.ShouldAlert)
}

func TestScenarioAllFourReasons(t *testing.T) {
	// 30/200 = 15% occupied, so every threshold is breached
	ev := Evaluate(Metrics{TotalKm: 200, KmOpptatt: 30, AntTurer: 5, LonnBasis: 1500})

	assert.True(t, ev.ShouldAlert)
	assert.Equal(t, []string{ReasonKmOpptatt, ReasonOpptattProsent, ReasonAntTurer, ReasonLonnBasis}, ev.Reasons)
}
