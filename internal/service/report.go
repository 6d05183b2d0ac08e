package service

import (
	"fmt"
	"sort"
	"time"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/state"
)

// reportService renders read-only snapshots of the session working set into
// the payloads the document layer formats. It never writes.
type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

// Financial sums revenue and expenses per unit over [from, to). A booking
// contributes its full grand total to the period its start date falls in;
// cancelled bookings contribute nothing.
func (s *reportService) Financial(st *state.Store, from, to string) (*domain.FinancialReport, error) {
	if err := validPeriod(from, to); err != nil {
		return nil, err
	}

	lines := make(map[string]*domain.UnitFinancialLine)
	for _, u := range st.Units.Snapshot() {
		lines[u.ID] = &domain.UnitFinancialLine{UnitID: u.ID, UnitName: u.Name}
	}

	report := &domain.FinancialReport{From: from, To: to}
	for _, b := range st.Bookings.Snapshot() {
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		if b.StartDate < from || b.StartDate >= to {
			continue
		}
		report.TotalRevenue += b.TotalRentalPrice
		if line, ok := lines[b.UnitID]; ok {
			line.Revenue += b.TotalRentalPrice
			line.Bookings++
		}
	}
	for _, e := range st.Expenses.Snapshot() {
		if e.Date < from || e.Date >= to {
			continue
		}
		report.TotalExpense += e.Amount
		if line, ok := lines[e.UnitID]; ok {
			line.Expense += e.Amount
		}
	}
	report.Net = report.TotalRevenue - report.TotalExpense

	for _, line := range lines {
		line.Net = line.Revenue - line.Expense
		report.Units = append(report.Units, *line)
	}
	sort.Slice(report.Units, func(i, j int) bool { return report.Units[i].UnitName < report.Units[j].UnitName })
	return report, nil
}

// Occupancy reports per-unit booked nights within [from, to), clipping each
// non-cancelled booking's half-open interval to the period.
func (s *reportService) Occupancy(st *state.Store, from, to string) (*domain.OccupancyReport, error) {
	if err := validPeriod(from, to); err != nil {
		return nil, err
	}
	periodDays := daysBetween(from, to)

	lines := make(map[string]*domain.UnitOccupancyLine)
	var order []string
	for _, u := range st.Units.Snapshot() {
		lines[u.ID] = &domain.UnitOccupancyLine{UnitID: u.ID, UnitName: u.Name}
		order = append(order, u.ID)
	}

	for _, b := range st.Bookings.Snapshot() {
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		line, ok := lines[b.UnitID]
		if !ok {
			continue
		}
		start := maxDate(b.StartDate, from)
		end := minDate(b.EndDate, to)
		if start < end {
			line.BookedNights += daysBetween(start, end)
		}
	}

	report := &domain.OccupancyReport{From: from, To: to, PeriodDays: periodDays}
	for _, id := range order {
		line := lines[id]
		if periodDays > 0 {
			line.OccupancyRate = float64(line.BookedNights) / float64(periodDays)
		}
		report.Units = append(report.Units, *line)
	}
	sort.Slice(report.Units, func(i, j int) bool { return report.Units[i].UnitName < report.Units[j].UnitName })
	return report, nil
}

func validPeriod(from, to string) error {
	f, err := time.Parse("2006-01-02", from)
	if err != nil {
		return fmt.Errorf("invalid period start %q", from)
	}
	t, err := time.Parse("2006-01-02", to)
	if err != nil {
		return fmt.Errorf("invalid period end %q", to)
	}
	if !f.Before(t) {
		return fmt.Errorf("period start %s must precede end %s", from, to)
	}
	return nil
}

func daysBetween(from, to string) int {
	f, _ := time.Parse("2006-01-02", from)
	t, _ := time.Parse("2006-01-02", to)
	return int(t.Sub(f).Hours() / 24)
}

func maxDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}

func minDate(a, b string) string {
	if a < b {
		return a
	}
	return b
}
