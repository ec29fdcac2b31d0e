// Package alerts decides when a skift's performance is low enough to
// warrant a varsel, and keeps the varsel table in line with that decision.
package alerts

import (
	"strings"

	"taxi_admin/internal/models"
)

// Fixed thresholds; all comparisons are strict less-than.
const (
	MinKmOpptatt      = 40.0
	MinOpptattProsent = 20.0
	MinAntTurer       = 10
	MinLonnBasis      = 2000.0
)

// Reason strings are part of the API surface, the persisted reason column
// stores them joined with ", " in evaluation order.
const (
	ReasonKmOpptatt      = "Km opptatt < 40"
	ReasonOpptattProsent = "Opptatt% < 20%"
	ReasonAntTurer       = "Antall turer < 10"
	ReasonLonnBasis      = "Lønnsgrunnlag < 2000"
)

// Metrics are the skift figures the evaluator looks at.
type Metrics struct {
	SkiftID     uint
	SkiftNumber string
	KmOpptatt   float64
	TotalKm     float64
	AntTurer    int
	LonnBasis   float64
}

// MetricsFor extracts the evaluated figures from a skift row.
func MetricsFor(s models.Skift) Metrics {
	return Metrics{
		SkiftID:     s.ID,
		SkiftNumber: s.SkiftNumber,
		KmOpptatt:   s.KmOpptatt,
		TotalKm:     s.TotalKm,
		AntTurer:    s.AntTurer,
		LonnBasis:   s.SalaryBasis,
	}
}

// OpptattProsent is the share of total distance driven with a fare. A skift
// with no distance counts as 0%, never a division error.
func (m Metrics) OpptattProsent() float64 {
	if m.TotalKm > 0 {
		return m.KmOpptatt / m.TotalKm * 100
	}
	return 0
}

type Evaluation struct {
	ShouldAlert bool
	Reasons     []string
}

// Reason renders the persisted reason string.
func (e Evaluation) Reason() string {
	return strings.Join(e.Reasons, ", ")
}

// Evaluate runs all four threshold checks. Every check always runs so the
// result carries every applicable reason, in this fixed order.
func Evaluate(m Metrics) Evaluation {
	var reasons []string

	if m.KmOpptatt < MinKmOpptatt {
		reasons = append(reasons, ReasonKmOpptatt)
	}
	if m.OpptattProsent() < MinOpptattProsent {
		reasons = append(reasons, ReasonOpptattProsent)
	}
	if m.AntTurer < MinAntTurer {
		reasons = append(reasons, ReasonAntTurer)
	}
	if m.LonnBasis < MinLonnBasis {
		reasons = append(reasons, ReasonLonnBasis)
	}

	return Evaluation{ShouldAlert: len(reasons) > 0, Reasons: reasons}
}
