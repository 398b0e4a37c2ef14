// internal/application/payment_service_test.go
package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"

	"github.com/jncrafts/storefront/internal/domain"
	"github.com/jncrafts/storefront/internal/ports"
)

func pendingOrder() *domain.Order {
	return &domain.Order{
		OrderNumber:   "JN-1001",
		UserID:        1,
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
		Request: domain.OrderRequest{
			CustomerInfo: domain.CustomerInfo{Name: "Achieng Otieno", Email: "achieng@example.com", Phone: "0712345678"},
			Total:        2600,
		},
	}
}

func TestPaymentService_Initiate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockOrderRepositoryPort(ctrl)
	mockMpesa := ports.NewMockPaymentPort(ctrl)
	mockMpesa.EXPECT().Provider().Return(domain.ProviderMpesa).AnyTimes()
	mockCache := &mockCache{
		delete: func(ctx context.Context, prefix string) error { return nil },
	}
	svc := NewPaymentService(mockRepo, mockCache, nil, zerolog.Nop(), mockMpesa)

	tests := []struct {
		name      string
		provider  domain.PaymentProvider
		phone     string
		mockSetup func()
		wantErr   bool
		errMsg    string
	}{
		{
			name:     "STK push to the order's phone",
			provider: domain.ProviderMpesa,
			mockSetup: func() {
				mockRepo.EXPECT().GetOrder(gomock.Any(), "JN-1001", int64(1)).Return(pendingOrder(), nil)
				mockMpesa.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentSession, error) {
						if req.Amount != 2600 || req.Phone != "0712345678" {
							t.Errorf("Initiate() request = %+v", req)
						}
						if !strings.HasPrefix(req.Reference, "JN-1001-") {
							t.Errorf("Initiate() reference = %q", req.Reference)
						}
						return &domain.PaymentSession{Provider: domain.ProviderMpesa, Reference: "ws_CO_123"}, nil
					})
				mockRepo.EXPECT().AttachPayment(gomock.Any(), "JN-1001", domain.ProviderMpesa, "ws_CO_123").Return(nil)
			},
			wantErr: false,
		},
		{
			name:     "Phone override",
			provider: domain.ProviderMpesa,
			phone:    "0799000111",
			mockSetup: func() {
				mockRepo.EXPECT().GetOrder(gomock.Any(), "JN-1001", int64(1)).Return(pendingOrder(), nil)
				mockMpesa.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentSession, error) {
						if req.Phone != "0799000111" {
							t.Errorf("Initiate() phone = %q", req.Phone)
						}
						return &domain.PaymentSession{Provider: domain.ProviderMpesa, Reference: "ws_CO_456"}, nil
					})
				mockRepo.EXPECT().AttachPayment(gomock.Any(), "JN-1001", domain.ProviderMpesa, "ws_CO_456").Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "Unsupported provider",
			provider:  domain.ProviderPaystack,
			mockSetup: func() {},
			wantErr:   true,
			errMsg:    `unsupported payment provider "paystack"`,
		},
		{
			name:     "Order not found",
			provider: domain.ProviderMpesa,
			mockSetup: func() {
				mockRepo.EXPECT().GetOrder(gomock.Any(), "JN-1001", int64(1)).Return(nil, nil)
			},
			wantErr: true,
			errMsg:  "order not found",
		},
		{
			name:     "Already paid",
			provider: domain.ProviderMpesa,
			mockSetup: func() {
				order := pendingOrder()
				order.PaymentStatus = domain.PaymentStatusPaid
				mockRepo.EXPECT().GetOrder(gomock.Any(), "JN-1001", int64(1)).Return(order, nil)
			},
			wantErr: true,
			errMsg:  "order is not awaiting payment",
		},
		{
			name:     "Cancelled order",
			provider: domain.ProviderMpesa,
			mockSetup: func() {
				order := pendingOrder()
				order.Status = domain.OrderStatusCancelled
				mockRepo.EXPECT().GetOrder(gomock.Any(), "JN-1001", int64(1)).Return(order, nil)
			},
			wantErr: true,
			errMsg:  "order is not awaiting payment",
		},
		{
			name:     "Gateway error",
			provider: domain.ProviderMpesa,
			mockSetup: func() {
				mockRepo.EXPECT().GetOrder(gomock.Any(), "JN-1001", int64(1)).Return(pendingOrder(), nil)
				mockMpesa.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(nil, errors.New("daraja unavailable"))
			},
			wantErr: true,
			errMsg:  "daraja unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			session, err := svc.Initiate(context.Background(), 1, "JN-1001", tt.provider, tt.phone)
			if tt.wantErr {
				if err == nil || err.Error() != tt.errMsg {
					t.Errorf("Initiate() error = %v, wantErr %v, errMsg %v", err, tt.wantErr, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Initiate() unexpected error: %v", err)
			}
			if session.Provider != domain.ProviderMpesa || session.Reference == "" {
				t.Errorf("Initiate() session = %+v", session)
			}
		})
	}
}

func TestPaymentService_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockOrderRepositoryPort(ctrl)
	mockNotifier := ports.NewMockNotificationPort(ctrl)
	mockCache := &mockCache{
		delete: func(ctx context.Context, prefix string) error { return nil },
	}
	svc := NewPaymentService(mockRepo, mockCache, mockNotifier, zerolog.Nop())

	paid := pendingOrder()
	paid.PaymentStatus = domain.PaymentStatusPaid
	failed := pendingOrder()
	failed.PaymentStatus = domain.PaymentStatusFailed

	tests := []struct {
		name      string
		result    domain.PaymentResult
		mockSetup func()
		wantErr   bool
		errMsg    string
	}{
		{
			name:   "Paid",
			result: domain.PaymentResult{Provider: domain.ProviderMpesa, Reference: "ws_CO_123", Paid: true, Receipt: "QKJ12ABC"},
			mockSetup: func() {
				mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ws_CO_123", domain.PaymentStatusPaid).Return(paid, domain.PaymentStatusPending, nil)
				mockNotifier.EXPECT().PaymentConfirmed(gomock.Any(), paid).Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "Paid but notification fails",
			result: domain.PaymentResult{Provider: domain.ProviderPaystack, Reference: "JN-1001-abcd", Paid: true},
			mockSetup: func() {
				mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), "JN-1001-abcd", domain.PaymentStatusPaid).Return(paid, domain.PaymentStatusPending, nil)
				mockNotifier.EXPECT().PaymentConfirmed(gomock.Any(), paid).Return(errors.New("kafka down"))
			},
			wantErr: false,
		},
		{
			name:   "Paid after an earlier decline",
			result: domain.PaymentResult{Provider: domain.ProviderMpesa, Reference: "ws_CO_124", Paid: true},
			mockSetup: func() {
				mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ws_CO_124", domain.PaymentStatusPaid).Return(paid, domain.PaymentStatusFailed, nil)
				mockNotifier.EXPECT().PaymentConfirmed(gomock.Any(), paid).Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "Paid callback redelivered",
			result: domain.PaymentResult{Provider: domain.ProviderMpesa, Reference: "ws_CO_123", Paid: true, Receipt: "QKJ12ABC"},
			mockSetup: func() {
				mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ws_CO_123", domain.PaymentStatusPaid).Return(paid, domain.PaymentStatusPaid, nil)
			},
			wantErr: false,
		},
		{
			name:   "Declined",
			result: domain.PaymentResult{Provider: domain.ProviderMpesa, Reference: "ws_CO_123", Paid: false, Reason: "Request cancelled by user"},
			mockSetup: func() {
				mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ws_CO_123", domain.PaymentStatusFailed).Return(failed, domain.PaymentStatusPending, nil)
			},
			wantErr: false,
		},
		{
			name:   "Decline after the order was paid",
			result: domain.PaymentResult{Provider: domain.ProviderMpesa, Reference: "ws_CO_122", Paid: false, Reason: "DS timeout user cannot be reached"},
			mockSetup: func() {
				mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ws_CO_122", domain.PaymentStatusFailed).Return(paid, domain.PaymentStatusPaid, nil)
			},
			wantErr: false,
		},
		{
			name:   "Unknown reference",
			result: domain.PaymentResult{Provider: domain.ProviderMpesa, Reference: "ws_CO_999", Paid: true},
			mockSetup: func() {
				mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ws_CO_999", domain.PaymentStatusPaid).Return(nil, "", nil)
			},
			wantErr: true,
			errMsg:  `unknown payment reference "ws_CO_999"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := svc.Complete(context.Background(), tt.result)
			if tt.wantErr {
				if err == nil || err.Error() != tt.errMsg {
					t.Errorf("Complete() error = %v, wantErr %v, errMsg %v", err, tt.wantErr, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Complete() unexpected error: %v", err)
			}
		})
	}
}

func TestPaymentService_Complete_NotifiesOncePerPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockOrderRepositoryPort(ctrl)
	mockNotifier := ports.NewMockNotificationPort(ctrl)
	invalidations := 0
	mockCache := &mockCache{
		delete: func(ctx context.Context, prefix string) error {
			invalidations++
			return nil
		},
	}
	svc := NewPaymentService(mockRepo, mockCache, mockNotifier, zerolog.Nop())

	paid := pendingOrder()
	paid.PaymentStatus = domain.PaymentStatusPaid
	result := domain.PaymentResult{Provider: domain.ProviderMpesa, Reference: "ws_CO_123", Paid: true, Receipt: "QKJ12ABC"}

	gomock.InOrder(
		mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ws_CO_123", domain.PaymentStatusPaid).Return(paid, domain.PaymentStatusPending, nil),
		mockRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ws_CO_123", domain.PaymentStatusPaid).Return(paid, domain.PaymentStatusPaid, nil),
	)
	mockNotifier.EXPECT().PaymentConfirmed(gomock.Any(), paid).Return(nil).Times(1)

	for i := 0; i < 2; i++ {
		if err := svc.Complete(context.Background(), result); err != nil {
			t.Fatalf("Complete() call %d unexpected error: %v", i+1, err)
		}
	}
	if invalidations != 1 {
		t.Errorf("order cache invalidated %d times, want 1", invalidations)
	}
}
