package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct() *Product {
	return &Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    CategoryCloths,
	}
}

func TestSerialize(t *testing.T) {
	p := testProduct()

	data := p.Serialize()
	assert.Nil(t, data["id"], "unpersisted product should serialize a nil id")
	assert.Equal(t, "Fedora", data["name"])
	assert.Equal(t, "A red hat", data["description"])
	assert.Equal(t, "12.50", data["price"])
	assert.Equal(t, true, data["available"])
	assert.Equal(t, "CLOTHS", data["category"])

	p.ID = 3
	assert.Equal(t, int64(3), p.Serialize()["id"])
}

func TestDeserialize(t *testing.T) {
	data := testProduct().Serialize()

	var p Product
	require.NoError(t, p.Deserialize(data))
	assert.Equal(t, "Fedora", p.Name)
	assert.Equal(t, "A red hat", p.Description)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, p.Available)
	assert.Equal(t, CategoryCloths, p.Category)
	assert.Zero(t, p.ID, "id is never taken from the mapping")
}

func TestDeserializeNumericPrice(t *testing.T) {
	data := testProduct().Serialize()
	data["price"] = 12.5

	var p Product
	require.NoError(t, p.Deserialize(data))
	assert.True(t, p.Price.Equal(decimal.NewFromFloat(12.5)))
}

func TestDeserializeNilData(t *testing.T) {
	var p Product
	err := p.Deserialize(nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeserializeMissingKey(t *testing.T) {
	for _, key := range []string{"name", "description", "price", "available", "category"} {
		data := testProduct().Serialize()
		delete(data, key)

		var p Product
		err := p.Deserialize(data)
		assert.ErrorIs(t, err, ErrValidation, "missing %s should fail validation", key)
	}
}

func TestDeserializeInvalidAvailable(t *testing.T) {
	for _, bad := range []interface{}{nil, "true", 1} {
		data := testProduct().Serialize()
		data["available"] = bad

		var p Product
		err := p.Deserialize(data)
		assert.ErrorIs(t, err, ErrValidation, "available=%v should fail validation", bad)
	}
}

func TestDeserializeInvalidCategory(t *testing.T) {
	data := testProduct().Serialize()
	data["category"] = "invalid"

	var p Product
	err := p.Deserialize(data)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeserializeInvalidPrice(t *testing.T) {
	for _, bad := range []interface{}{"twelve", []string{"12.50"}} {
		data := testProduct().Serialize()
		data["price"] = bad

		var p Product
		err := p.Deserialize(data)
		assert.ErrorIs(t, err, ErrValidation, "price=%v should fail validation", bad)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("cloths")
	assert.ErrorIs(t, err, ErrValidation, "category match is exact")

	_, err = ParseCategory("GADGETS")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParsePrice(t *testing.T) {
	want := decimal.RequireFromString("12.50")

	cases := []interface{}{
		want,
		"12.50",
		` "12.50" `,
		12.5,
		json.Number("12.50"),
	}
	for _, in := range cases {
		got, err := ParsePrice(in)
		require.NoError(t, err, "input %v", in)
		assert.True(t, want.Equal(got), "input %v: want %s got %s", in, want, got)
	}

	whole, err := ParsePrice(12)
	require.NoError(t, err)
	assert.True(t, whole.Equal(decimal.NewFromInt(12)))

	_, err = ParsePrice("not a price")
	assert.ErrorIs(t, err, ErrValidation)
}
