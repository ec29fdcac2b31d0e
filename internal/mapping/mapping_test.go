package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverToNorwegian(t *testing.T) {
	rec := map[string]any{
		"id":               uint(7),
		"driverNumber":     "D-100",
		"personNumber":     "01018012345",
		"name":             "Kari",
		"lastName":         "Nordmann",
		"address":          "Storgata 1",
		"town":             "Oslo",
		"postalCode":       "0155",
		"telephone":        "99887766",
		"email":            "kari@example.no",
		"salaryPercentage": 42.5,
		"hideFromOthers":   true,
		"rowVersion":       3, // unmapped, must be dropped
	}

	got := ToNorwegian(rec, KindDriver)

	assert.Equal(t, uint(7), got["id"])
	assert.Equal(t, "D-100", got["sjåforNummer"])
	assert.Equal(t, "01018012345", got["personNummer"])
	assert.Equal(t, "Kari", got["fornavn"])
	assert.Equal(t, "Nordmann", got["etternavn"])
	assert.Equal(t, "Storgata 1", got["adresse"])
	assert.Equal(t, "Oslo", got["by"])
	assert.Equal(t, "0155", got["postnummer"])
	assert.Equal(t, "99887766", got["telefon"])
	assert.Equal(t, "kari@example.no", got["epost"])
	assert.Equal(t, 42.5, got["lonnprosent"])
	assert.Equal(t, true, got["ikkeVisMegForAndre"])
	assert.NotContains(t, got, "rowVersion")
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		rec  map[string]any
	}{
		{
			name: "driver",
			kind: KindDriver,
			rec: map[string]any{
				"driverNumber": "D-2", "personNumber": "p", "name": "Ola",
				"lastName": "Hansen", "address": "a", "town": "Bergen",
				"postalCode": "5003", "telephone": "t", "email": "e@x.no",
				"salaryPercentage": 40.0, "hideFromOthers": false,
			},
		},
		{
			name: "car",
			kind: KindCar,
			rec: map[string]any{
				"licenseNumber": "AB12345", "carBrand": "Toyota", "modelYear": 2020,
			},
		},
		{
			name: "skift",
			kind: KindSkift,
			rec: map[string]any{
				"skiftNumber": "S-9", "kmBetweenSkift": 4.0,
				"startDate": "2026-01-05T06:00:00Z", "stopDate": "2026-01-05T14:00:00Z",
				"startTime": "06:00", "stopTime": "14:00",
				"salaryBasis": 3100.0, "startKm": 1000.0, "stopKm": 1240.0,
				"totalKm": 240.0, "antTurer": 14, "kmOpptatt": 96.0,
				"tipsKontant": 120.0, "tipsKreditt": 80.0, "netto": 2900.0,
				"loyve": "L-44", "driverId": 3, "carId": 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := FromNorwegian(ToNorwegian(tt.rec, tt.kind), tt.kind)
			assert.Equal(t, tt.rec, back)
		})
	}
}

func TestSelfMappedSkiftKeys(t *testing.T) {
	rec := map[string]any{
		"antTurer": 12, "kmOpptatt": 55.0, "tipsKontant": 10.0,
		"tipsKreditt": 20.0, "netto": 1500.0, "loyve": "L-1",
	}

	nor := ToNorwegian(rec, KindSkift)
	for key, val := range rec {
		assert.Equal(t, val, nor[key], "self-mapped key %q must round-trip unchanged", key)
	}
	assert.Equal(t, rec, FromNorwegian(nor, KindSkift))
}

func TestAbsentKeysStayAbsent(t *testing.T) {
	got := ToNorwegian(map[string]any{"name": "Ola"}, KindDriver)
	assert.Equal(t, map[string]any{"fornavn": "Ola"}, got)

	got = FromNorwegian(map[string]any{"fornavn": "Ola"}, KindDriver)
	assert.Equal(t, map[string]any{"name": "Ola"}, got)
}

func TestNestedRelations(t *testing.T) {
	skift := map[string]any{
		"id":          uint(1),
		"skiftNumber": "S-1",
		"driver":      map[string]any{"id": uint(3), "name": "Kari", "lastName": "Nordmann"},
		"car":         map[string]any{"id": uint(2), "licenseNumber": "AB12345"},
	}

	got := ToNorwegian(skift, KindSkift)

	driver, ok := got["driver"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Kari", driver["fornavn"])
	assert.Equal(t, "Nordmann", driver["etternavn"])
	assert.Equal(t, uint(3), driver["id"])

	car, ok := got["car"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "AB12345", car["skiltNummer"])

	back := FromNorwegian(got, KindSkift)
	nested, ok := back["driver"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Kari", nested["name"])
}

func TestNestedSkiftList(t *testing.T) {
	driver := map[string]any{
		"id":   uint(5),
		"name": "Ola",
		"skifts": []map[string]any{
			{"id": uint(10), "skiftNumber": "S-10", "totalKm": 200.0},
			{"id": uint(11), "skiftNumber": "S-11", "totalKm": 180.0},
		},
	}

	got := ToNorwegian(driver, KindDriver)

	skifts, ok := got["skifts"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, skifts, 2)
	assert.Equal(t, "S-10", skifts[0]["skiftNummer"])
	assert.Equal(t, 180.0, skifts[1]["totalKm"])
}
