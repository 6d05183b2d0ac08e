package domain

// Report payloads are read-only snapshots consumed by the document
// generation layer; nothing here writes back into the entity lists.

type FinancialReport struct {
	From         string              `json:"from"`
	To           string              `json:"to"`
	TotalRevenue int64               `json:"total_revenue"`
	TotalExpense int64               `json:"total_expense"`
	Net          int64               `json:"net"`
	Units        []UnitFinancialLine `json:"units"`
}

type UnitFinancialLine struct {
	UnitID   string `json:"unit_id"`
	UnitName string `json:"unit_name"`
	Revenue  int64  `json:"revenue"`
	Expense  int64  `json:"expense"`
	Net      int64  `json:"net"`
	Bookings int    `json:"bookings"`
}

type OccupancyReport struct {
	From       string              `json:"from"`
	To         string              `json:"to"`
	PeriodDays int                 `json:"period_days"`
	Units      []UnitOccupancyLine `json:"units"`
}

type UnitOccupancyLine struct {
	UnitID        string  `json:"unit_id"`
	UnitName      string  `json:"unit_name"`
	BookedNights  int     `json:"booked_nights"`
	OccupancyRate float64 `json:"occupancy_rate"`
}
