// internal/adapters/grpc/server.go
package grpc

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/jncrafts/storefront/internal/adapters/metrics"
	"github.com/jncrafts/storefront/internal/application"
	"github.com/jncrafts/storefront/internal/domain"
	"github.com/jncrafts/storefront/pkg/auth"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	tokenKey  ctxKey = "token"
)

type Server struct {
	authService    *application.AuthService
	orderService   *application.OrderService
	paymentService *application.PaymentService
	sessions       *application.SessionRegistry
	log            zerolog.Logger
}

var _ CheckoutServiceServer = (*Server)(nil)

func NewServer(authService *application.AuthService, orderService *application.OrderService, paymentService *application.PaymentService, sessions *application.SessionRegistry, log zerolog.Logger) *Server {
	return &Server{
		authService:    authService,
		orderService:   orderService,
		paymentService: paymentService,
		sessions:       sessions,
		log:            log,
	}
}

func success(message string) Status {
	return Status{Message: message, Type: "success", Code: 200}
}

func failure(message string, code int32) Status {
	return Status{Message: message, Type: "error", Code: code}
}

// errorStatus maps service errors onto the response envelope. Validation
// errors list the offending fields; submission errors say whether the
// customer may try again.
func errorStatus(err error) Status {
	var verr *domain.ValidationError
	var subErr *domain.SubmissionError
	switch {
	case errors.As(err, &verr):
		st := failure(verr.Error(), 422)
		st.Fields = verr.Fields
		return st
	case errors.As(err, &subErr):
		st := failure("We could not place your order. Please try again.", 502)
		st.Retryable = subErr.Retryable
		return st
	}
	return failure(err.Error(), 400)
}

func (s *Server) Signup(ctx context.Context, req *SignupRequest) (*SignupResponse, error) {
	_, err := s.authService.Signup(ctx, req.Email, req.Password)
	if err != nil {
		return &SignupResponse{Status: failure(err.Error(), 400)}, nil
	}
	return &SignupResponse{Status: success("User registered successfully")}, nil
}

func (s *Server) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	token, _, err := s.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return &LoginResponse{Status: failure("Invalid credentials", 400)}, nil
	}
	return &LoginResponse{
		Status:      success("Logged in"),
		TokenType:   "Bearer",
		ExpiresIn:   int64(auth.TokenTTL.Seconds()),
		AccessToken: token,
	}, nil
}

func (s *Server) Logout(ctx context.Context, req *LogoutRequest) (*LogoutResponse, error) {
	token, _ := ctx.Value(tokenKey).(string)
	if err := s.authService.Logout(ctx, token); err != nil {
		return &LogoutResponse{Status: failure(err.Error(), 400)}, nil
	}
	return &LogoutResponse{Status: success("Successfully logged out")}, nil
}

func (s *Server) SelectDelivery(ctx context.Context, req *SelectDeliveryRequest) (*DeliveryResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}
	method, err := domain.ParseDeliveryMethod(req.Method)
	if err != nil {
		return &DeliveryResponse{Status: failure(err.Error(), 400)}, nil
	}

	session := s.sessions.Get(userID)
	snap, err := session.Selector.Select(ctx, method, req.ShippingAddress, req.CourierDetails)
	metrics.DeliveryQuotes.WithLabelValues(string(method), snap.State.String()).Inc()
	if err != nil {
		resp := deliveryResponse(snap)
		resp.Status = errorStatus(err)
		return resp, nil
	}

	resp := deliveryResponse(snap)
	if snap.State == application.DeliveryError {
		// Priced with the fallback distance; the customer can still check out.
		resp.Status = Status{Message: snap.Warning, Type: "warning", Code: 200}
		return resp, nil
	}
	resp.Status = success("Delivery method selected")
	return resp, nil
}

func (s *Server) GetDelivery(ctx context.Context, req *GetDeliveryRequest) (*DeliveryResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}
	session := s.sessions.Get(userID)
	resp := deliveryResponse(session.Selector.Snapshot())
	if len(req.Items) > 0 {
		sum, err := session.Summary(req.Items, req.Discount)
		if err != nil {
			resp.Status = errorStatus(err)
			return resp, nil
		}
		resp.Summary = &Summary{
			Subtotal:     sum.Subtotal,
			Discount:     sum.Discount,
			DeliveryCost: sum.DeliveryCost,
			Total:        sum.Total,
		}
	}
	resp.Status = success("Delivery fetched")
	return resp, nil
}

func (s *Server) ClearDelivery(ctx context.Context, req *ClearDeliveryRequest) (*DeliveryResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}
	session := s.sessions.Get(userID)
	session.Selector.Deselect()
	resp := deliveryResponse(session.Selector.Snapshot())
	resp.Status = success("Delivery method cleared")
	return resp, nil
}

func (s *Server) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}

	order, err := s.orderService.PlaceOrder(ctx, userID, application.PlaceOrderInput{
		Customer: req.CustomerInfo,
		Shipping: req.ShippingAddress,
		Items:    req.Items,
		Discount: req.Discount,
	})
	if err != nil {
		return &PlaceOrderResponse{Status: errorStatus(err)}, nil
	}
	return &PlaceOrderResponse{
		Status: success("Order Created Successfully"),
		Data:   orderData(order),
	}, nil
}

func (s *Server) ListOrders(ctx context.Context, req *ListOrdersRequest) (*ListOrdersResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}
	limit, page := req.Limit, req.Page
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}

	orders, total, err := s.orderService.ListOrders(ctx, userID, limit, page)
	if err != nil {
		return &ListOrdersResponse{Status: failure(err.Error(), 400)}, nil
	}

	data := make([]*OrderData, 0, len(orders))
	for _, o := range orders {
		data = append(data, orderData(o))
	}
	lastPage := int64(math.Ceil(float64(total) / float64(limit)))
	return &ListOrdersResponse{
		Status: success("Orders successfully fetched."),
		Data: &OrdersData{
			Orders:      data,
			Total:       total,
			CurrentPage: page,
			PerPage:     limit,
			TotalInPage: int64(len(orders)),
			LastPage:    lastPage,
		},
	}, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *CancelOrderRequest) (*CancelOrderResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}

	err = s.orderService.CancelOrder(ctx, req.OrderNumber, userID)
	if err != nil {
		return &CancelOrderResponse{Status: failure(err.Error(), 400)}, nil
	}
	return &CancelOrderResponse{Status: success("Order Cancelled Successfully")}, nil
}

func (s *Server) InitiatePayment(ctx context.Context, req *InitiatePaymentRequest) (*InitiatePaymentResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}

	provider := domain.PaymentProvider(strings.ToLower(strings.TrimSpace(req.Provider)))
	session, err := s.paymentService.Initiate(ctx, userID, req.OrderNumber, provider, req.Phone)
	if err != nil {
		return &InitiatePaymentResponse{Status: failure(err.Error(), 400)}, nil
	}
	return &InitiatePaymentResponse{
		Status: success("Payment initiated"),
		Data: &PaymentData{
			Provider:        string(session.Provider),
			Reference:       session.Reference,
			CheckoutURL:     session.CheckoutURL,
			CustomerMessage: session.CustomerMessage,
		},
	}, nil
}

func deliveryResponse(snap application.DeliverySnapshot) *DeliveryResponse {
	return &DeliveryResponse{
		State:    snap.State.String(),
		Delivery: snap.Details,
		Warning:  snap.Warning,
	}
}

func orderData(o *domain.Order) *OrderData {
	data := &OrderData{
		OrderNumber:     o.OrderNumber,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		Subtotal:        o.Subtotal,
		Total:           o.Request.Total,
		DeliveryDetails: o.Request.DeliveryDetails,
		Items:           o.Request.Items,
	}
	if o.Request.Discount != nil {
		data.Discount = o.Request.Discount.Amount
	}
	return data
}

// AuthInterceptor authenticates every call except signup and login, and
// stores the caller's id and token on the context.
func AuthInterceptor(authService *application.AuthService) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if info.FullMethod == fullMethod("Login") || info.FullMethod == fullMethod("Signup") {
			return handler(ctx, req)
		}
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		authHeader := md.Get("authorization")
		if len(authHeader) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization")
		}
		token := strings.TrimPrefix(authHeader[0], "Bearer ")
		claims, err := authService.Authenticate(ctx, token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		ctx = context.WithValue(ctx, userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, tokenKey, token)
		return handler(ctx, req)
	}
}

func getUserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, errors.New("missing user")
	}
	return userID, nil
}
