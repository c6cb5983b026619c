package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/DRSN-tech/bakery-backend/internal/cfg"
	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/internal/repository/memory"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

func newTestUseCases(t *testing.T) (*usecase.CatalogUseCase, *usecase.OrderUseCase) {
	t.Helper()

	ctx := context.Background()
	log := logger.NewDiscardLogger()
	store := usecase.NewStateStore(memory.NewStateRepo(), "bakery", log)

	return usecase.NewCatalogUC(ctx, store, nil, log), usecase.NewOrderUC(ctx, store, nil, log)
}

// dialTestServer поднимает сервер на bufconn и возвращает клиентское соединение.
func dialTestServer(t *testing.T, catalog usecase.CatalogUC, orders usecase.OrderUC) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer(&cfg.GRPCConfig{NetworkMode: "tcp"}, logger.NewDiscardLogger())
	srv.RegisterServices(catalog, orders)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func mustStruct(t *testing.T, m map[string]interface{}) *structpb.Struct {
	t.Helper()

	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestBakeryService_ListProducts(t *testing.T) {
	catalog, orders := newTestUseCases(t)
	svc := NewBakeryService(catalog, orders, logger.NewDiscardLogger())

	res, err := svc.ListProducts(context.Background(), mustStruct(t, map[string]interface{}{"category": "sweets"}))
	require.NoError(t, err)

	products := res.GetFields()["products"].GetListValue().GetValues()
	require.Len(t, products, 2)
	first := products[0].GetStructValue().GetFields()
	assert.Equal(t, "3", first["id"].GetStringValue())
	assert.Equal(t, "28.50", first["price"].GetStringValue())
	assert.True(t, first["active"].GetBoolValue())

	res, err = svc.ListProducts(context.Background(), &structpb.Struct{})
	require.NoError(t, err)
	assert.Len(t, res.GetFields()["products"].GetListValue().GetValues(), 8)
}

func TestBakeryService_ListProductsUnknownCategory(t *testing.T) {
	catalog, orders := newTestUseCases(t)
	svc := NewBakeryService(catalog, orders, logger.NewDiscardLogger())

	_, err := svc.ListProducts(context.Background(), mustStruct(t, map[string]interface{}{"category": "vegan"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBakeryService_GetOrderStatus(t *testing.T) {
	ctx := context.Background()
	catalog, orders := newTestUseCases(t)
	svc := NewBakeryService(catalog, orders, logger.NewDiscardLogger())

	product, _ := catalog.Get("2")
	order, err := orders.Place(ctx, domain.Customer{Name: "Ana"}, []domain.CartItem{{Product: product, Quantity: 2}}, domain.PaymentCash)
	require.NoError(t, err)
	require.NoError(t, orders.UpdateStatus(ctx, order.ID, domain.StatusProduction))

	res, err := svc.GetOrderStatus(ctx, mustStruct(t, map[string]interface{}{"orderId": order.ID}))
	require.NoError(t, err)

	fields := res.GetFields()
	assert.Equal(t, order.ID, fields["orderId"].GetStringValue())
	assert.Equal(t, "production", fields["status"].GetStringValue())
	assert.Equal(t, "Em Produção", fields["statusLabel"].GetStringValue())
	assert.True(t, decimal.RequireFromString("130").Equal(decimal.RequireFromString(fields["total"].GetStringValue())))

	_, err = svc.GetOrderStatus(ctx, mustStruct(t, map[string]interface{}{"orderId": "missing"}))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.GetOrderStatus(ctx, &structpb.Struct{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBakeryService_OverTheWire(t *testing.T) {
	catalog, orders := newTestUseCases(t)
	conn := dialTestServer(t, catalog, orders)
	ctx := context.Background()

	out := new(structpb.Struct)
	err := conn.Invoke(ctx, listProductsMethod, mustStruct(t, map[string]interface{}{"category": "wedding"}), out)
	require.NoError(t, err)
	assert.Len(t, out.GetFields()["products"].GetListValue().GetValues(), 3)

	err = conn.Invoke(ctx, getOrderStatusMethod, mustStruct(t, map[string]interface{}{"orderId": "nope"}), new(structpb.Struct))
	assert.Equal(t, codes.NotFound, status.Code(err))
}
