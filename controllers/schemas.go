package controllers

import (
	"encoding/json"
	"errors"
	"fmt"

	"itemsapi/models"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 500

	maxListLimit = 1000
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ItemSchema is the wire shape of an item. Price is a string with exactly two
// decimal places so it survives the boundary without float drift.
type ItemSchema struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       string  `json:"price"`
	Quantity    int     `json:"quantity"`
}

func NewItemSchema(item models.Item) ItemSchema {
	return ItemSchema{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		Quantity:    item.Quantity,
	}
}

// CreateItemPayload requires name, price and quantity. Prices are rounded to
// two decimal places, half away from zero.
type CreateItemPayload struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
}

func (payload *CreateItemPayload) Validate() (models.Item, error) {
	if payload.Name == nil {
		return models.Item{}, errors.New("name is required")
	}
	if err := validateName(*payload.Name); err != nil {
		return models.Item{}, err
	}
	if err := validateDescription(payload.Description); err != nil {
		return models.Item{}, err
	}
	if payload.Price == nil {
		return models.Item{}, errors.New("price is required")
	}
	if payload.Price.IsNegative() {
		return models.Item{}, errors.New("price must not be negative")
	}
	if payload.Quantity == nil {
		return models.Item{}, errors.New("quantity is required")
	}
	if *payload.Quantity < 0 {
		return models.Item{}, errors.New("quantity must not be negative")
	}
	return models.Item{
		Name:        *payload.Name,
		Description: payload.Description,
		Price:       payload.Price.Round(2),
		Quantity:    *payload.Quantity,
	}, nil
}

// UpdateItemPayload treats every field as optional; absent fields are left
// untouched on the stored record. Absence is tracked separately from an
// explicit null, so `"description": null` clears the column while leaving it
// out keeps the stored value.
type UpdateItemPayload struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`

	supplied map[string]bool
}

func (payload *UpdateItemPayload) UnmarshalJSON(data []byte) error {
	type plain UpdateItemPayload
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*payload = UpdateItemPayload(decoded)
	payload.supplied = map[string]bool{}
	for key := range raw {
		payload.supplied[key] = true
	}
	return nil
}

// Fields validates the supplied fields and returns them as a sparse column
// map. Supplying no fields at all is a caller error, not a no-op.
func (payload *UpdateItemPayload) Fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if payload.supplied["name"] {
		if payload.Name == nil {
			return nil, errors.New("name must not be null")
		}
		if err := validateName(*payload.Name); err != nil {
			return nil, err
		}
		fields["name"] = *payload.Name
	}
	if payload.supplied["description"] {
		if err := validateDescription(payload.Description); err != nil {
			return nil, err
		}
		if payload.Description == nil {
			fields["description"] = nil
		} else {
			fields["description"] = *payload.Description
		}
	}
	if payload.supplied["price"] {
		if payload.Price == nil {
			return nil, errors.New("price must not be null")
		}
		if payload.Price.IsNegative() {
			return nil, errors.New("price must not be negative")
		}
		fields["price"] = payload.Price.Round(2)
	}
	if payload.supplied["quantity"] {
		if payload.Quantity == nil {
			return nil, errors.New("quantity must not be null")
		}
		if *payload.Quantity < 0 {
			return nil, errors.New("quantity must not be negative")
		}
		fields["quantity"] = *payload.Quantity
	}
	if len(fields) == 0 {
		return nil, models.ErrNoFields
	}
	return fields, nil
}

func validateName(name string) error {
	if name == "" {
		return errors.New("name must not be empty")
	}
	if len([]rune(name)) > maxNameLength {
		return fmt.Errorf("name must be at most %d characters", maxNameLength)
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && len([]rune(*description)) > maxDescriptionLength {
		return fmt.Errorf("description must be at most %d characters", maxDescriptionLength)
	}
	return nil
}

type ListItemsQuery struct {
	Skip         int    `form:"skip,default=0"`
	Limit        int    `form:"limit,default=100"`
	MinPrice     string `form:"min_price"`
	MaxPrice     string `form:"max_price"`
	NameContains string `form:"name_contains"`
}

// Filter parses the price bounds and clamps pagination into range.
func (query *ListItemsQuery) Filter() (models.ListItemsFilter, error) {
	filter := models.ListItemsFilter{
		NameContains: query.NameContains,
		Skip:         query.Skip,
		Limit:        query.Limit,
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit < 1 {
		filter.Limit = 1
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if query.MinPrice != "" {
		min, err := decimal.NewFromString(query.MinPrice)
		if err != nil {
			return models.ListItemsFilter{}, errors.New("min_price must be a decimal number")
		}
		filter.MinPrice = &min
	}
	if query.MaxPrice != "" {
		max, err := decimal.NewFromString(query.MaxPrice)
		if err != nil {
			return models.ListItemsFilter{}, errors.New("max_price must be a decimal number")
		}
		filter.MaxPrice = &max
	}
	return filter, nil
}
