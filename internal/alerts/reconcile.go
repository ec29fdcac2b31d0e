package alerts

import (
	"errors"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taxi_admin/internal/models"
)

type Outcome int

const (
	Skipped Outcome = iota
	Created
	Updated
)

// Summary aggregates one full sweep. Created + Updated + Skipped + Failed
// always equals Total.
type Summary struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed,omitempty"`
}

// Reconcile brings the varsel for one skift in line with its metrics. When
// no threshold is breached nothing happens: an existing varsel stays as-is,
// alerts are sticky and never auto-resolve. When a threshold is breached the
// varsel is written as an atomic insert-or-update on the unique skift_id,
// so overlapping sweeps cannot produce duplicate rows. Existence is read
// right before the write to classify created vs updated.
func Reconcile(db *gorm.DB, m Metrics) (Outcome, error) {
	ev := Evaluate(m)
	if !ev.ShouldAlert {
		return Skipped, nil
	}

	var existing models.Varsel
	err := db.Select("id").Where("skift_id = ?", m.SkiftID).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return Skipped, err
	}
	exists := err == nil

	varsel := models.Varsel{
		SkiftID:        m.SkiftID,
		SkiftNumber:    m.SkiftNumber,
		KmOpptatt:      m.KmOpptatt,
		OpptattProsent: m.OpptattProsent(),
		AntTurer:       m.AntTurer,
		LonnBasis:      m.LonnBasis,
		Reason:         ev.Reason(),
	}
	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "skift_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"skift_number", "km_opptatt", "opptatt_prosent", "ant_turer", "lonn_basis", "reason", "updated_at",
		}),
	}).Create(&varsel).Error
	if err != nil {
		return Skipped, err
	}

	if exists {
		return Updated, nil
	}
	return Created, nil
}

// CheckAll sweeps every skift and reconciles its varsel. Per-skift failures
// are logged and counted, they never abort the sweep; the sweep itself only
// fails when the skift table cannot be read at all.
func CheckAll(db *gorm.DB) (Summary, error) {
	var skifts []models.Skift
	if err := db.Find(&skifts).Error; err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(skifts)}
	for _, s := range skifts {
		outcome, err := Reconcile(db, MetricsFor(s))
		if err != nil {
			logrus.WithError(err).WithField("skift_number", s.SkiftNumber).Error("Varsel reconciliation failed")
			summary.Failed++
			continue
		}
		switch outcome {
		case Created:
			summary.Created++
		case Updated:
			summary.Updated++
		default:
			summary.Skipped++
		}
	}

	logrus.WithFields(logrus.Fields{
		"total":   summary.Total,
		"created": summary.Created,
		"updated": summary.Updated,
		"skipped": summary.Skipped,
		"failed":  summary.Failed,
	}).Info("Checked all skifts for varsler")

	return summary, nil
}
