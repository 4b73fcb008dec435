package models

import "github.com/Skotchmaster/hotel_ordering/services/ordering/internal/cart"

type MenuItem struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"not null"                       json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null;check:price>=0"        json:"price"`
	Image       string `json:"image"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

func (m MenuItem) ToCart() cart.MenuItem {
	return cart.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
	}
}

func FromCart(item cart.MenuItem) MenuItem {
	return MenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
	}
}
