package usecase

import (
	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/shopspring/decimal"
)

const recentOrdersLimit = 5

type DashboardUseCase struct {
	catalog CatalogUC
	orders  OrderUC
}

func NewDashboardUC(catalog CatalogUC, orders OrderUC) *DashboardUseCase {
	return &DashboardUseCase{
		catalog: catalog,
		orders:  orders,
	}
}

// Stats собирает сводку по каталогу и заказам. Выручка считается только по доставленным заказам.
func (d *DashboardUseCase) Stats() DashboardStats {
	products := d.catalog.ListAll()
	orders := d.orders.ListAll()

	stats := DashboardStats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		Revenue:       decimal.Zero,
	}

	for _, p := range products {
		if p.Active {
			stats.ActiveProducts++
		}
	}

	for _, o := range orders {
		switch o.Status {
		case domain.StatusPending:
			stats.PendingOrders++
		case domain.StatusDelivered:
			stats.Revenue = stats.Revenue.Add(o.Total)
		}
	}

	recent := orders
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	stats.RecentOrders = recent

	return stats
}
