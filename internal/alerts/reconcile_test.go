package alerts

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taxi_admin/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Driver{}, &models.Car{}, &models.Skift{}, &models.Varsel{}))
	return db
}

func seedSkift(t *testing.T, db *gorm.DB, number string, totalKm, kmOpptatt float64, antTurer int, lonnBasis float64) models.Skift {
	t.Helper()
	skift := models.Skift{
		SkiftNumber: number,
		StartDate:   time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC),
		StartTime:   "06:00",
		TotalKm:     totalKm,
		KmOpptatt:   kmOpptatt,
		AntTurer:    antTurer,
		SalaryBasis: lonnBasis,
		DriverID:    1,
		CarID:       1,
	}
	require.NoError(t, db.Create(&skift).Error)
	return skift
}

func varselCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Varsel{}).Count(&n).Error)
	return n
}

func TestReconcileCreateThenUpdate(t *testing.T) {
	db := newTestDB(t)
	skift := seedSkift(t, db, "S-1", 200, 30, 5, 1500)

	outcome, err := Reconcile(db, MetricsFor(skift))
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)
	assert.EqualValues(t, 1, varselCount(t, db))

	var varsel models.Varsel
	require.NoError(t, db.Where("skift_id = ?", skift.ID).First(&varsel).Error)
	assert.Equal(t, "S-1", varsel.SkiftNumber)
	assert.Equal(t, 30.0, varsel.KmOpptatt)
	assert.Equal(t, 15.0, varsel.OpptattProsent)
	assert.Equal(t, "Km opptatt < 40, Opptatt% < 20%, Antall turer < 10, Lønnsgrunnlag < 2000", varsel.Reason)

	// still breaching: same row is refreshed, not duplicated
	skift.KmOpptatt = 35
	require.NoError(t, db.Save(&skift).Error)

	outcome, err = Reconcile(db, MetricsFor(skift))
	require.NoError(t, err)
	assert.Equal(t, Updated, outcome)
	assert.EqualValues(t, 1, varselCount(t, db))

	require.NoError(t, db.Where("skift_id = ?", skift.ID).First(&varsel).Error)
	assert.Equal(t, 35.0, varsel.KmOpptatt)
}

func TestReconcileSkipsHealthySkift(t *testing.T) {
	db := newTestDB(t)
	skift := seedSkift(t, db, "S-2", 100, 50, 12, 3000)

	outcome, err := Reconcile(db, MetricsFor(skift))
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)
	assert.EqualValues(t, 0, varselCount(t, db))
}

func TestReconcileStickyAlert(t *testing.T) {
	db := newTestDB(t)
	skift := seedSkift(t, db, "S-3", 200, 30, 5, 1500)

	_, err := Reconcile(db, MetricsFor(skift))
	require.NoError(t, err)

	var before models.Varsel
	require.NoError(t, db.Where("skift_id = ?", skift.ID).First(&before).Error)

	// metrics improve above every threshold: the varsel stays untouched
	skift.KmOpptatt = 120
	skift.AntTurer = 20
	skift.SalaryBasis = 4000
	require.NoError(t, db.Save(&skift).Error)

	outcome, err := Reconcile(db, MetricsFor(skift))
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)
	assert.EqualValues(t, 1, varselCount(t, db))

	var after models.Varsel
	require.NoError(t, db.Where("skift_id = ?", skift.ID).First(&after).Error)
	assert.Equal(t, before.Reason, after.Reason)
	assert.Equal(t, before.KmOpptatt, after.KmOpptatt)
}

func TestCheckAllIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedSkift(t, db, "S-1", 200, 30, 5, 1500)
	seedSkift(t, db, "S-2", 100, 15, 12, 3000)
	seedSkift(t, db, "S-3", 100, 50, 12, 3000)

	first, err := CheckAll(db)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 3, Created: 2, Updated: 0, Skipped: 1}, first)
	assert.Equal(t, first.Total, first.Created+first.Updated+first.Skipped+first.Failed)

	second, err := CheckAll(db)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 3, Created: 0, Updated: 2, Skipped: 1}, second)
	assert.EqualValues(t, 2, varselCount(t, db))
}
