package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	bakeryServiceName    = "bakery.v1.BakeryService"
	listProductsMethod   = "/" + bakeryServiceName + "/ListProducts"
	getOrderStatusMethod = "/" + bakeryServiceName + "/GetOrderStatus"
)

// BakeryServiceServer - API витрины только для чтения. Запросы и ответы
// передаются как google.protobuf.Struct.
type BakeryServiceServer interface {
	ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetOrderStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var bakeryServiceDesc = grpc.ServiceDesc{
	ServiceName: bakeryServiceName,
	HandlerType: (*BakeryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler:    unaryHandler(listProductsMethod, BakeryServiceServer.ListProducts),
		},
		{
			MethodName: "GetOrderStatus",
			Handler:    unaryHandler(getOrderStatusMethod, BakeryServiceServer.GetOrderStatus),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bakery/v1/bakery.proto",
}

type structMethod func(srv BakeryServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, method structMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return method(srv.(BakeryServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return method(srv.(BakeryServiceServer), ctx, req.(*structpb.Struct))
		}

		return interceptor(ctx, in, info, handler)
	}
}
