package domain

// Category classifies a catalog product. Values are stored as text in the
// products table, matching the enumeration member name.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories lists every known category value.
var Categories = []Category{
	CategoryUnknown,
	CategoryCloths,
	CategoryFood,
	CategoryHousewares,
	CategoryAutomotive,
	CategoryTools,
}

// ParseCategory converts a raw string into a Category. The match is exact,
// unknown values are rejected.
func ParseCategory(value string) (Category, error) {
	c := Category(value)
	if !c.Valid() {
		return CategoryUnknown, ValidationErrorf("invalid category: %s", value)
	}
	return c, nil
}

// Valid reports whether the category is a known enumeration value.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
