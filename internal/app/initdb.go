package app

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/opsretail/catalog/internal/domain"
)

// checkProducts initializes the demo catalog rows. Seeding is
// count-then-create, so repeated startups do not duplicate rows.
func (a *Application) checkProducts() {
	defaultProducts := []domain.Product{
		{Name: "Fedora", Description: "A red hat", Price: decimal.New(1250, -2), Available: true, Category: domain.CategoryCloths},
		{Name: "Sourdough Loaf", Description: "Naturally leavened bread", Price: decimal.New(650, -2), Available: true, Category: domain.CategoryFood},
		{Name: "Cast Iron Skillet", Description: "12 inch pre-seasoned skillet", Price: decimal.New(3499, -2), Available: true, Category: domain.CategoryHousewares},
		{Name: "Wiper Blades", Description: "All-season wiper blade pair", Price: decimal.New(2150, -2), Available: false, Category: domain.CategoryAutomotive},
		{Name: "Claw Hammer", Description: "16 oz curved claw hammer", Price: decimal.New(1895, -2), Available: true, Category: domain.CategoryTools},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("name", p.Name))
			}
		}
	}
}
