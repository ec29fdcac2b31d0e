// Package mapping renames records between the persisted (English) field
// vocabulary and the Norwegian vocabulary the API speaks. Each entity kind
// has a fixed bijective table; keys without a table entry are dropped.
package mapping

type Kind string

const (
	KindDriver Kind = "driver"
	KindCar    Kind = "car"
	KindSkift  Kind = "skift"
)

// Norwegian -> English, per entity kind. Some skift fields are persisted
// under their Norwegian names already and map to themselves.
var driverFields = map[string]string{
	"sjåforNummer":       "driverNumber",
	"personNummer":       "personNumber",
	"fornavn":            "name",
	"etternavn":          "lastName",
	"adresse":            "address",
	"by":                 "town",
	"postnummer":         "postalCode",
	"telefon":            "telephone",
	"epost":              "email",
	"lonnprosent":        "salaryPercentage",
	"ikkeVisMegForAndre": "hideFromOthers",
	"opprettet":          "createdAt",
	"oppdatert":          "updatedAt",
}

var carFields = map[string]string{
	"skiltNummer": "licenseNumber",
	"bilmerke":    "carBrand",
	"arsmodell":   "modelYear",
	"opprettet":   "createdAt",
	"oppdatert":   "updatedAt",
}

var skiftFields = map[string]string{
	"skiftNummer":   "skiftNumber",
	"kmMellomSkift": "kmBetweenSkift",
	"startDato":     "startDate",
	"sluttDato":     "stopDate",
	"startTid":      "startTime",
	"sluttTid":      "stopTime",
	"lonnBasis":     "salaryBasis",
	"startKm":       "startKm",
	"sluttKm":       "stopKm",
	"totalKm":       "totalKm",
	"antTurer":      "antTurer",
	"kmOpptatt":     "kmOpptatt",
	"tipsKontant":   "tipsKontant",
	"tipsKreditt":   "tipsKreditt",
	"netto":         "netto",
	"loyve":         "loyve",
	"sjåforId":      "driverId",
	"bilId":         "carId",
	"opprettet":     "createdAt",
	"oppdatert":     "updatedAt",
}

var (
	toEnglish   = map[Kind]map[string]string{KindDriver: driverFields, KindCar: carFields, KindSkift: skiftFields}
	toNorwegian = map[Kind]map[string]string{}
)

func init() {
	for kind, fields := range toEnglish {
		rev := make(map[string]string, len(fields))
		for nor, eng := range fields {
			rev[eng] = nor
		}
		toNorwegian[kind] = rev
	}
}

// ToNorwegian translates an internal record to the API vocabulary. An "id"
// key passes through unchanged; unmapped keys are dropped. Nested driver/car
// records and skift lists are translated recursively.
func ToNorwegian(rec map[string]any, kind Kind) map[string]any {
	if rec == nil {
		return nil
	}
	out := make(map[string]any, len(rec))
	if id, ok := rec["id"]; ok {
		out["id"] = id
	}
	rev := toNorwegian[kind]
	for key, val := range rec {
		if nor, ok := rev[key]; ok {
			out[nor] = val
		}
	}
	if driver, ok := rec["driver"].(map[string]any); ok {
		out["driver"] = ToNorwegian(driver, KindDriver)
	}
	if car, ok := rec["car"].(map[string]any); ok {
		out["car"] = ToNorwegian(car, KindCar)
	}
	if skifts, ok := rec["skifts"].([]map[string]any); ok {
		mapped := make([]map[string]any, 0, len(skifts))
		for _, s := range skifts {
			mapped = append(mapped, ToNorwegian(s, KindSkift))
		}
		out["skifts"] = mapped
	}
	return out
}

// FromNorwegian is the inverse of ToNorwegian for a single record: every
// Norwegian key with a table entry is renamed to its English counterpart,
// everything else is dropped.
func FromNorwegian(rec map[string]any, kind Kind) map[string]any {
	if rec == nil {
		return nil
	}
	out := make(map[string]any, len(rec))
	fields := toEnglish[kind]
	for key, val := range rec {
		if eng, ok := fields[key]; ok {
			out[eng] = val
		}
	}
	if driver, ok := rec["driver"].(map[string]any); ok {
		out["driver"] = FromNorwegian(driver, KindDriver)
	}
	if car, ok := rec["car"].(map[string]any); ok {
		out["car"] = FromNorwegian(car, KindCar)
	}
	return out
}
