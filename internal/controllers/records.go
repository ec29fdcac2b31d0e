package controllers

import "encoding/json"

// recordOf flattens a bound input struct into the map shape the mapping
// layer works on, keyed by the struct's JSON tags. Optional pointer fields
// that were absent from the request stay absent from the record.
func recordOf(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var rec map[string]any
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil
	}
	return rec
}

// decodeRecord fills a model struct from an internal (English-keyed)
// record; the models' JSON tags are the internal vocabulary.
func decodeRecord(rec map[string]any, dst any) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
