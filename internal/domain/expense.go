package domain

// Suggested expense categories. The field is an open string; these are
// only what the dashboard offers in its picker.
const (
	ExpenseCategoryMaintenance = "MAINTENANCE"
	ExpenseCategoryCleaning    = "CLEANING"
	ExpenseCategoryUtilities   = "UTILITIES"
	ExpenseCategoryFurniture   = "FURNITURE"
	ExpenseCategoryOther       = "OTHER"
)

type Expense struct {
	ID        string `json:"id"`
	UnitID    string `json:"unit_id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date"` // yyyy-mm-dd
	CreatedOn string `json:"created_on"`
}

func (e Expense) EntityID() string { return e.ID }
