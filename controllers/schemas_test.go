package controllers

import (
	"encoding/json"
	"strings"
	"testing"

	"itemsapi/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(t *testing.T, s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return &d
}

func TestCreateItemPayloadValidate(t *testing.T) {
	valid := func() CreateItemPayload {
		return CreateItemPayload{
			Name:     strPtr("Widget"),
			Price:    decPtr(t, "9.999"),
			Quantity: intPtr(5),
		}
	}

	t.Run("Should round the price half away from zero", func(t *testing.T) {
		payload := valid()
		item, err := payload.Validate()
		require.NoError(t, err)
		assert.Equal(t, "10.00", item.Price.StringFixed(2))

		payload.Price = decPtr(t, "9.994")
		item, err = payload.Validate()
		require.NoError(t, err)
		assert.Equal(t, "9.99", item.Price.StringFixed(2))

		payload.Price = decPtr(t, "9.995")
		item, err = payload.Validate()
		require.NoError(t, err)
		assert.Equal(t, "10.00", item.Price.StringFixed(2))
	})

	t.Run("Should keep an absent description nil", func(t *testing.T) {
		payload := valid()
		item, err := payload.Validate()
		require.NoError(t, err)
		assert.Nil(t, item.Description)

		payload.Description = strPtr("A widget")
		item, err = payload.Validate()
		require.NoError(t, err)
		require.NotNil(t, item.Description)
		assert.Equal(t, "A widget", *item.Description)
	})

	t.Run("Should reject out-of-range fields", func(t *testing.T) {
		cases := map[string]func(*CreateItemPayload){
			"missing name":        func(p *CreateItemPayload) { p.Name = nil },
			"empty name":          func(p *CreateItemPayload) { p.Name = strPtr("") },
			"too long name":       func(p *CreateItemPayload) { p.Name = strPtr(strings.Repeat("a", 51)) },
			"too long desc":       func(p *CreateItemPayload) { p.Description = strPtr(strings.Repeat("a", 501)) },
			"missing price":       func(p *CreateItemPayload) { p.Price = nil },
			"negative price":      func(p *CreateItemPayload) { p.Price = decPtr(t, "-0.01") },
			"missing quantity":    func(p *CreateItemPayload) { p.Quantity = nil },
			"negative quantity":   func(p *CreateItemPayload) { p.Quantity = intPtr(-1) },
		}
		for name, mutate := range cases {
			payload := valid()
			mutate(&payload)
			_, err := payload.Validate()
			assert.Error(t, err, name)
		}
	})

	t.Run("Should accept boundary lengths and zero values", func(t *testing.T) {
		payload := CreateItemPayload{
			Name:        strPtr(strings.Repeat("a", 50)),
			Description: strPtr(strings.Repeat("b", 500)),
			Price:       decPtr(t, "0"),
			Quantity:    intPtr(0),
		}
		item, err := payload.Validate()
		require.NoError(t, err)
		assert.Equal(t, "0.00", item.Price.StringFixed(2))
		assert.Equal(t, 0, item.Quantity)
	})
}

func updatePayload(t *testing.T, body string) UpdateItemPayload {
	var payload UpdateItemPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload
}

func TestUpdateItemPayloadFields(t *testing.T) {
	t.Run("Should fail on an empty payload", func(t *testing.T) {
		payload := updatePayload(t, `{}`)
		_, err := payload.Fields()
		assert.ErrorIs(t, err, models.ErrNoFields)
	})

	t.Run("Should include only the supplied fields", func(t *testing.T) {
		payload := updatePayload(t, `{"quantity":3}`)
		fields, err := payload.Fields()
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"quantity": 3}, fields)
	})

	t.Run("Should round a supplied price", func(t *testing.T) {
		payload := updatePayload(t, `{"price":"1.005"}`)
		fields, err := payload.Fields()
		require.NoError(t, err)
		price, ok := fields["price"].(decimal.Decimal)
		require.True(t, ok)
		assert.Equal(t, "1.01", price.StringFixed(2))
	})

	t.Run("Should distinguish a null description from an absent one", func(t *testing.T) {
		payload := updatePayload(t, `{"description":null}`)
		fields, err := payload.Fields()
		require.NoError(t, err)
		value, ok := fields["description"]
		require.True(t, ok)
		assert.Nil(t, value)
	})

	t.Run("Should reject null for required columns", func(t *testing.T) {
		for name, body := range map[string]string{
			"null name":     `{"name":null}`,
			"null price":    `{"price":null}`,
			"null quantity": `{"quantity":null}`,
		} {
			payload := updatePayload(t, body)
			_, err := payload.Fields()
			assert.Error(t, err, name)
		}
	})

	t.Run("Should validate supplied fields with the create bounds", func(t *testing.T) {
		for name, body := range map[string]string{
			"empty name":        `{"name":""}`,
			"too long name":     `{"name":"` + strings.Repeat("a", 51) + `"}`,
			"too long desc":     `{"description":"` + strings.Repeat("a", 501) + `"}`,
			"negative price":    `{"price":"-5"}`,
			"negative quantity": `{"quantity":-2}`,
		} {
			payload := updatePayload(t, body)
			_, err := payload.Fields()
			assert.Error(t, err, name)
		}
	})
}

func TestListItemsQueryFilter(t *testing.T) {
	t.Run("Should clamp pagination into range", func(t *testing.T) {
		query := ListItemsQuery{Skip: -5, Limit: 5000}
		filter, err := query.Filter()
		require.NoError(t, err)
		assert.Equal(t, 0, filter.Skip)
		assert.Equal(t, 1000, filter.Limit)

		query = ListItemsQuery{Limit: 0}
		filter, err = query.Filter()
		require.NoError(t, err)
		assert.Equal(t, 1, filter.Limit)
	})

	t.Run("Should parse decimal price bounds", func(t *testing.T) {
		query := ListItemsQuery{Limit: 100, MinPrice: "6", MaxPrice: "12.50"}
		filter, err := query.Filter()
		require.NoError(t, err)
		require.NotNil(t, filter.MinPrice)
		require.NotNil(t, filter.MaxPrice)
		assert.Equal(t, "6.00", filter.MinPrice.StringFixed(2))
		assert.Equal(t, "12.50", filter.MaxPrice.StringFixed(2))
	})

	t.Run("Should reject malformed price bounds", func(t *testing.T) {
		query := ListItemsQuery{Limit: 100, MinPrice: "cheap"}
		_, err := query.Filter()
		assert.Error(t, err)
	})
}
