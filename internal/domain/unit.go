package domain

type UnitCategory string

const (
	UnitCategoryChalet UnitCategory = "CHALET"
	UnitCategoryVilla  UnitCategory = "VILLA"
	UnitCategoryPalace UnitCategory = "PALACE"
)

// Unit is a rentable property (chalet, villa or palace). Identity is
// immutable; name and category may change after creation.
type Unit struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  UnitCategory `json:"category"`
	CreatedOn string       `json:"created_on"`
}

func (u Unit) EntityID() string { return u.ID }

func ValidUnitCategory(c UnitCategory) bool {
	switch c {
	case UnitCategoryChalet, UnitCategoryVilla, UnitCategoryPalace:
		return true
	}
	return false
}
