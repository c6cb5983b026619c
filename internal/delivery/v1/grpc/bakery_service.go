package grpc

import (
	"context"
	"time"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"google.golang.org/protobuf/types/known/structpb"
)

type BakeryService struct {
	catalog usecase.CatalogUC
	orders  usecase.OrderUC
	logger  logger.Logger
}

func NewBakeryService(catalog usecase.CatalogUC, orders usecase.OrderUC, logger logger.Logger) *BakeryService {
	return &BakeryService{catalog: catalog, orders: orders, logger: logger}
}

// ListProducts возвращает активные товары. Поле category опционально.
func (g *BakeryService) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.ListProducts"

	category := domain.Category(req.GetFields()["category"].GetStringValue())
	if category != "" && category != domain.CategoryAll && !category.IsKnown() {
		return nil, GRPCErrorResponse(e.Wrap(op, e.ErrUnknownCategory))
	}

	products := g.catalog.ListByCategory(category)
	list := make([]interface{}, 0, len(products))
	for _, p := range products {
		list = append(list, toGRPCProduct(p))
	}

	res, err := structpb.NewStruct(map[string]interface{}{"products": list})
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return res, nil
}

// GetOrderStatus возвращает текущий статус заказа по orderId.
func (g *BakeryService) GetOrderStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetOrderStatus"

	orderID := req.GetFields()["orderId"].GetStringValue()
	if orderID == "" {
		return nil, GRPCErrorResponse(e.Wrap(op, e.ErrMissingFields))
	}

	order, ok := g.orders.Get(orderID)
	if !ok {
		return nil, GRPCErrorResponse(e.Wrap(op, e.ErrOrderNotFound))
	}

	res, err := structpb.NewStruct(map[string]interface{}{
		"orderId":     order.ID,
		"status":      string(order.Status),
		"statusLabel": order.Status.Label(),
		"total":       order.Total.StringFixed(2),
		"createdAt":   order.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return res, nil
}

func toGRPCProduct(p domain.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.StringFixed(2),
		"image":       p.Image,
		"category":    string(p.Category),
		"active":      p.Active,
	}
}
