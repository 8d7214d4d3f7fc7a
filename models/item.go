package models

import (
	"errors"
	"fmt"
	"time"

	"itemsapi/database"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Item struct {
	ID          uint            `gorm:"primary_key" autoIncrement:"true"`
	Name        string          `gorm:"type:varchar(50);index:idx_name;not null"`
	Description *string         `gorm:"type:varchar(500)"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;check:price >= 0"`
	Quantity    int             `gorm:"not null;default:0;check:quantity >= 0"`
}

const (
	maxUpdateAttempts = 3
	retryBaseDelay    = 100 * time.Millisecond
)

type ListItemsFilter struct {
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	NameContains string
	Skip         int
	Limit        int
}

func (item *Item) CreateItem() error {
	if res := database.PostgresDB.Create(item); res.Error != nil {
		if isIntegrityError(res.Error) {
			return fmt.Errorf("%w: %v", ErrIntegrity, res.Error)
		}
		return res.Error
	}
	return nil
}

func GetItemByID(id uint) (Item, error) {
	var item Item
	if res := database.PostgresDB.Where("ID = ?", id).First(&item); res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrNotFound
		}
		return Item{}, res.Error
	}
	return item, nil
}

func ListItems(filter ListItemsFilter) ([]Item, error) {
	query := database.PostgresDB.Model(&Item{})
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+filter.NameContains+"%")
	}

	items := []Item{}
	if res := query.Order("id").Offset(filter.Skip).Limit(filter.Limit).Find(&items); res.Error != nil {
		return nil, res.Error
	}
	return items, nil
}

// UpdateItem applies only the columns present in fields, leaving the rest
// untouched. Lock contention is retried up to maxUpdateAttempts times with a
// linearly growing delay; any other failure aborts on the first attempt.
func UpdateItem(id uint, fields map[string]interface{}) (Item, error) {
	if len(fields) == 0 {
		return Item{}, ErrNoFields
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		err := database.PostgresDB.Transaction(func(tx *gorm.DB) error {
			var existing Item
			if res := tx.Where("ID = ?", id).First(&existing); res.Error != nil {
				if errors.Is(res.Error, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return res.Error
			}
			return tx.Model(&Item{}).Where("ID = ?", id).Updates(fields).Error
		})
		if err == nil {
			return GetItemByID(id)
		}
		if errors.Is(err, ErrNotFound) {
			return Item{}, err
		}
		if isIntegrityError(err) {
			return Item{}, fmt.Errorf("%w: %v", ErrIntegrity, err)
		}
		if !isContentionError(err) {
			return Item{}, err
		}
		if attempt < maxUpdateAttempts {
			time.Sleep(time.Duration(attempt) * retryBaseDelay)
		}
	}
	return Item{}, ErrBusy
}

func DeleteItem(id uint) error {
	return database.PostgresDB.Transaction(func(tx *gorm.DB) error {
		var item Item
		if res := tx.Where("ID = ?", id).First(&item); res.Error != nil {
			if errors.Is(res.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return res.Error
		}
		return tx.Delete(&item).Error
	})
}
