package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Product represents a catalog item persisted in the products table.
// ID is assigned by the database on create; zero means not persisted yet.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id,string"`
	Name        string          `gorm:"size:100;index" json:"name"`
	Description string          `gorm:"size:250" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Available   bool            `gorm:"not null;default:true" json:"available"`
	Category    Category        `gorm:"size:32;not null;default:UNKNOWN" json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}

// Serialize converts the product into a plain mapping. The id entry is nil
// until the product has been persisted; price is rendered at two decimal
// places to match the column scale.
func (p *Product) Serialize() map[string]interface{} {
	data := map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.StringFixed(2),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
	if p.ID != 0 {
		data["id"] = p.ID
	} else {
		data["id"] = nil
	}
	return data
}

// Deserialize populates the product fields from a plain mapping. The id field
// is never taken from the mapping. Any missing key, a non-boolean available
// value, an unrecognized category or an unparseable price fails with
// ErrValidation.
func (p *Product) Deserialize(data map[string]interface{}) error {
	if data == nil {
		return ValidationErrorf("invalid product: body contained no data")
	}
	for _, key := range []string{"name", "description", "price", "available", "category"} {
		if _, ok := data[key]; !ok {
			return ValidationErrorf("invalid product: missing %s", key)
		}
	}

	available, ok := data["available"].(bool)
	if !ok {
		return ValidationErrorf("invalid product: invalid type for boolean [available]: %T", data["available"])
	}

	var categoryName string
	switch v := data["category"].(type) {
	case string:
		categoryName = v
	case Category:
		categoryName = string(v)
	default:
		return ValidationErrorf("invalid product: invalid type for category: %T", data["category"])
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return err
	}

	price, err := ParsePrice(data["price"])
	if err != nil {
		return err
	}

	p.Name = cast.ToString(data["name"])
	p.Description = cast.ToString(data["description"])
	p.Price = price
	p.Available = available
	p.Category = category
	return nil
}

// ParsePrice coerces a price given as decimal, string or any numeric type
// into the decimal price representation. String input is trimmed of spaces
// and surrounding double quotes before parsing.
func ParsePrice(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(strings.Trim(v, ` "`))
		if err != nil {
			return decimal.Zero, ValidationErrorf("invalid price: %s", v)
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, ValidationErrorf("invalid price: %s", v)
		}
		return d, nil
	default:
		s, err := cast.ToStringE(value)
		if err != nil {
			return decimal.Zero, ValidationErrorf("invalid price type: %T", value)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, ValidationErrorf("invalid price: %s", s)
		}
		return d, nil
	}
}
