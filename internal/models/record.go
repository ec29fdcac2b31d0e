package models

// Record methods flatten a model into the internal (English-keyed) map
// shape the mapping layer translates from. Loaded associations are attached
// as nested records; zero-valued associations are left out.

func (d Driver) Record() map[string]any {
	rec := map[string]any{
		"id":               d.ID,
		"driverNumber":     d.DriverNumber,
		"personNumber":     d.PersonNumber,
		"name":             d.Name,
		"lastName":         d.LastName,
		"address":          d.Address,
		"town":             d.Town,
		"postalCode":       d.PostalCode,
		"telephone":        d.Telephone,
		"email":            d.Email,
		"salaryPercentage": d.SalaryPercentage,
		"hideFromOthers":   d.HideFromOthers,
		"createdAt":        d.CreatedAt,
		"updatedAt":        d.UpdatedAt,
	}
	if d.Skifts != nil {
		skifts := make([]map[string]any, 0, len(d.Skifts))
		for _, s := range d.Skifts {
			skifts = append(skifts, s.Record())
		}
		rec["skifts"] = skifts
	}
	return rec
}

func (c Car) Record() map[string]any {
	rec := map[string]any{
		"id":            c.ID,
		"licenseNumber": c.LicenseNumber,
		"carBrand":      c.CarBrand,
		"modelYear":     c.ModelYear,
		"createdAt":     c.CreatedAt,
		"updatedAt":     c.UpdatedAt,
	}
	if c.Skifts != nil {
		skifts := make([]map[string]any, 0, len(c.Skifts))
		for _, s := range c.Skifts {
			skifts = append(skifts, s.Record())
		}
		rec["skifts"] = skifts
	}
	return rec
}

func (e Expense) Record() map[string]any {
	rec := map[string]any{
		"id":          e.ID,
		"date":        e.Date,
		"category":    e.Category,
		"amount":      e.Amount,
		"description": e.Description,
		"driverId":    e.DriverID,
		"carId":       e.CarID,
		"createdAt":   e.CreatedAt,
		"updatedAt":   e.UpdatedAt,
	}
	if e.Driver != nil {
		rec["driver"] = e.Driver.Record()
	}
	if e.Car != nil {
		rec["car"] = e.Car.Record()
	}
	return rec
}

func (s Skift) Record() map[string]any {
	rec := map[string]any{
		"id":             s.ID,
		"skiftNumber":    s.SkiftNumber,
		"kmBetweenSkift": s.KmBetweenSkift,
		"startDate":      s.StartDate,
		"startTime":      s.StartTime,
		"salaryBasis":    s.SalaryBasis,
		"startKm":        s.StartKm,
		"stopKm":         s.StopKm,
		"totalKm":        s.TotalKm,
		"antTurer":       s.AntTurer,
		"kmOpptatt":      s.KmOpptatt,
		"tipsKontant":    s.TipsKontant,
		"tipsKreditt":    s.TipsKreditt,
		"netto":          s.Netto,
		"loyve":          s.Loyve,
		"driverId":       s.DriverID,
		"carId":          s.CarID,
		"createdAt":      s.CreatedAt,
		"updatedAt":      s.UpdatedAt,
	}
	if s.StopDate != nil {
		rec["stopDate"] = *s.StopDate
	}
	if s.StopTime != "" {
		rec["stopTime"] = s.StopTime
	}
	if s.Driver.ID != 0 {
		rec["driver"] = s.Driver.Record()
	}
	if s.Car.ID != 0 {
		rec["car"] = s.Car.Record()
	}
	return rec
}
