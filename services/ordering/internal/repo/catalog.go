package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/cart"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/models"
)

const placeholderImage = "/placeholder.svg?height=200&width=300"

// DefaultMenu is the catalog the service starts with.
func DefaultMenu() []cart.MenuItem {
	return []cart.MenuItem{
		{
			ID:          1,
			Name:        "Nasi Goreng Vasa",
			Description: "Special fried rice with chicken and egg topping",
			Price:       45000,
			Image:       placeholderImage,
		},
		{
			ID:          2,
			Name:        "Mie Godog Jawa",
			Description: "Javanese-style noodle soup with egg and fresh vegetables",
			Price:       40000,
			Image:       placeholderImage,
		},
	}
}

// SeedMenu inserts items, leaving rows that already exist untouched.
func (r *GormRepo) SeedMenu(ctx context.Context, items []cart.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		rows = append(rows, models.FromCart(it))
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *GormRepo) ListMenu(ctx context.Context) ([]cart.MenuItem, error) {
	var rows []models.MenuItem
	if err := r.DB.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]cart.MenuItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToCart())
	}
	return out, nil
}

func (r *GormRepo) GetMenuItem(ctx context.Context, id int) (cart.MenuItem, error) {
	var row models.MenuItem
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return cart.MenuItem{}, err
	}
	return row.ToCart(), nil
}
