// internal/adapters/grpc/service.go
package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "checkout.CheckoutService"

// CheckoutServiceServer is the server API for the checkout service.
type CheckoutServiceServer interface {
	Signup(context.Context, *SignupRequest) (*SignupResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	SelectDelivery(context.Context, *SelectDeliveryRequest) (*DeliveryResponse, error)
	GetDelivery(context.Context, *GetDeliveryRequest) (*DeliveryResponse, error)
	ClearDelivery(context.Context, *ClearDeliveryRequest) (*DeliveryResponse, error)
	PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	CancelOrder(context.Context, *CancelOrderRequest) (*CancelOrderResponse, error)
	InitiatePayment(context.Context, *InitiatePaymentRequest) (*InitiatePaymentResponse, error)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryMethod[Req, Resp any](method string, call func(CheckoutServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CheckoutServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CheckoutServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var CheckoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("Signup", CheckoutServiceServer.Signup),
		unaryMethod("Login", CheckoutServiceServer.Login),
		unaryMethod("Logout", CheckoutServiceServer.Logout),
		unaryMethod("SelectDelivery", CheckoutServiceServer.SelectDelivery),
		unaryMethod("GetDelivery", CheckoutServiceServer.GetDelivery),
		unaryMethod("ClearDelivery", CheckoutServiceServer.ClearDelivery),
		unaryMethod("PlaceOrder", CheckoutServiceServer.PlaceOrder),
		unaryMethod("ListOrders", CheckoutServiceServer.ListOrders),
		unaryMethod("CancelOrder", CheckoutServiceServer.CancelOrder),
		unaryMethod("InitiatePayment", CheckoutServiceServer.InitiatePayment),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "checkout",
}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutService_ServiceDesc, srv)
}

// CheckoutServiceClient calls the checkout service over a connection; every
// call uses the JSON codec.
type CheckoutServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckoutServiceClient(cc grpc.ClientConnInterface) *CheckoutServiceClient {
	return &CheckoutServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CheckoutServiceClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error) {
	return invoke[SignupResponse](ctx, c.cc, "Signup", in, opts)
}

func (c *CheckoutServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, "Login", in, opts)
}

func (c *CheckoutServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, "Logout", in, opts)
}

func (c *CheckoutServiceClient) SelectDelivery(ctx context.Context, in *SelectDeliveryRequest, opts ...grpc.CallOption) (*DeliveryResponse, error) {
	return invoke[DeliveryResponse](ctx, c.cc, "SelectDelivery", in, opts)
}

func (c *CheckoutServiceClient) GetDelivery(ctx context.Context, in *GetDeliveryRequest, opts ...grpc.CallOption) (*DeliveryResponse, error) {
	return invoke[DeliveryResponse](ctx, c.cc, "GetDelivery", in, opts)
}

func (c *CheckoutServiceClient) ClearDelivery(ctx context.Context, in *ClearDeliveryRequest, opts ...grpc.CallOption) (*DeliveryResponse, error) {
	return invoke[DeliveryResponse](ctx, c.cc, "ClearDelivery", in, opts)
}

func (c *CheckoutServiceClient) PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*PlaceOrderResponse, error) {
	return invoke[PlaceOrderResponse](ctx, c.cc, "PlaceOrder", in, opts)
}

func (c *CheckoutServiceClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	return invoke[ListOrdersResponse](ctx, c.cc, "ListOrders", in, opts)
}

func (c *CheckoutServiceClient) CancelOrder(ctx context.Context, in *CancelOrderRequest, opts ...grpc.CallOption) (*CancelOrderResponse, error) {
	return invoke[CancelOrderResponse](ctx, c.cc, "CancelOrder", in, opts)
}

func (c *CheckoutServiceClient) InitiatePayment(ctx context.Context, in *InitiatePaymentRequest, opts ...grpc.CallOption) (*InitiatePaymentResponse, error) {
	return invoke[InitiatePaymentResponse](ctx, c.cc, "InitiatePayment", in, opts)
}
