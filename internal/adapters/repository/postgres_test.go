// internal/adapters/repository/postgres_test.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jncrafts/storefront/internal/domain"
)

type fakeRow struct {
	values []interface{}
	err    error
}

func (f fakeRow) Scan(dest ...interface{}) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.values[i].(string)
		case *int64:
			*p = f.values[i].(int64)
		case *float64:
			*p = f.values[i].(float64)
		case *[]byte:
			*p = f.values[i].([]byte)
		case *time.Time:
			*p = f.values[i].(time.Time)
		}
	}
	return nil
}

func TestScanOrder(t *testing.T) {
	req := domain.OrderRequest{
		CustomerInfo:    domain.CustomerInfo{Name: "Achieng Otieno", Email: "achieng@example.com", Phone: "0712345678"},
		DeliveryDetails: domain.DeliveryDetails{Method: domain.CustomerLogistics, CourierDetails: &domain.CourierDetails{Name: "Wanjiru", Phone: "0722000000"}},
		Items:           []domain.CartLineItem{{ProductID: "bag-01", Price: 1000, Quantity: 2}},
		Total:           2000,
	}
	raw, _ := json.Marshal(req)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	order, err := scanOrder(fakeRow{values: []interface{}{
		"JN-1001", int64(1), raw, 2000.0, domain.OrderStatusPending,
		domain.PaymentStatusPending, "mpesa", "ws_CO_123", created,
	}})
	require.NoError(t, err)
	assert.Equal(t, "JN-1001", order.OrderNumber)
	assert.Equal(t, "ws_CO_123", order.PaymentReference)
	assert.Equal(t, created, order.CreatedAt)
	assert.Equal(t, req, order.Request)
}

func TestScanOrder_Errors(t *testing.T) {
	_, err := scanOrder(fakeRow{err: errors.New("scan failed")})
	assert.EqualError(t, err, "scan failed")

	_, err = scanOrder(fakeRow{values: []interface{}{
		"JN-1001", int64(1), []byte("{"), 0.0, "", "", "", "", time.Time{},
	}})
	assert.Error(t, err)
}

func newMockRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var paymentColumns = []string{
	"order_number", "user_id", "request", "subtotal", "status", "payment_status",
	"payment_provider", "payment_reference", "created_at", "payment_status",
}

func TestUpdatePaymentStatus(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	row := func(status, reference, previous string) *sqlmock.Rows {
		return sqlmock.NewRows(paymentColumns).AddRow(
			"JN-1001", int64(1), []byte(`{"total":2600}`), 2600.0, domain.OrderStatusPending,
			status, "mpesa", reference, created, previous)
	}

	tests := []struct {
		name         string
		reference    string
		status       string
		mockSetup    func(mock sqlmock.Sqlmock)
		wantOrder    bool
		wantStatus   string
		wantPrevious string
		wantErr      bool
	}{
		{
			name:      "first paid callback",
			reference: "ws_CO_2",
			status:    domain.PaymentStatusPaid,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("JOIN payment_attempts a ON a.order_number = o.order_number").
					WithArgs("ws_CO_2", domain.PaymentStatusPaid, domain.PaymentStatusPaid).
					WillReturnRows(row(domain.PaymentStatusPaid, "ws_CO_2", domain.PaymentStatusPending))
			},
			wantOrder:    true,
			wantStatus:   domain.PaymentStatusPaid,
			wantPrevious: domain.PaymentStatusPending,
		},
		{
			name:      "paid callback redelivered",
			reference: "ws_CO_2",
			status:    domain.PaymentStatusPaid,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE orders o").
					WithArgs("ws_CO_2", domain.PaymentStatusPaid, domain.PaymentStatusPaid).
					WillReturnRows(row(domain.PaymentStatusPaid, "ws_CO_2", domain.PaymentStatusPaid))
			},
			wantOrder:    true,
			wantStatus:   domain.PaymentStatusPaid,
			wantPrevious: domain.PaymentStatusPaid,
		},
		{
			name:      "paid callback for an earlier attempt",
			reference: "ws_CO_1",
			status:    domain.PaymentStatusPaid,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE orders o").
					WithArgs("ws_CO_1", domain.PaymentStatusPaid, domain.PaymentStatusPaid).
					WillReturnRows(row(domain.PaymentStatusPaid, "ws_CO_1", domain.PaymentStatusPending))
			},
			wantOrder:    true,
			wantStatus:   domain.PaymentStatusPaid,
			wantPrevious: domain.PaymentStatusPending,
		},
		{
			name:      "unknown reference",
			reference: "ws_CO_9",
			status:    domain.PaymentStatusFailed,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE orders o").
					WithArgs("ws_CO_9", domain.PaymentStatusFailed, domain.PaymentStatusPaid).
					WillReturnRows(sqlmock.NewRows(paymentColumns))
			},
		},
		{
			name:      "query fails",
			reference: "ws_CO_2",
			status:    domain.PaymentStatusPaid,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE orders o").WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.mockSetup(mock)

			order, previous, err := repo.UpdatePaymentStatus(context.Background(), tt.reference, tt.status)
			if (err != nil) != tt.wantErr {
				t.Errorf("UpdatePaymentStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if (order != nil) != tt.wantOrder {
				t.Fatalf("UpdatePaymentStatus() order = %v, wantOrder %v", order, tt.wantOrder)
			}
			if order != nil {
				assert.Equal(t, tt.wantStatus, order.PaymentStatus)
				assert.Equal(t, tt.reference, order.PaymentReference)
				assert.Equal(t, 2600.0, order.Request.Total)
			}
			assert.Equal(t, tt.wantPrevious, previous)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttachPayment(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   string
	}{
		{
			name: "records the attempt",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE orders SET payment_provider").
					WithArgs("JN-1001", "mpesa", "ws_CO_2", domain.PaymentStatusPending, domain.OrderStatusPending, domain.PaymentStatusPaid).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO payment_attempts").
					WithArgs("ws_CO_2", "JN-1001", "mpesa").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "order not awaiting payment",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE orders SET payment_provider").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: "order is not awaiting payment",
		},
		{
			name: "attempt insert fails",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE orders SET payment_provider").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO payment_attempts").WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.mockSetup(mock)

			err := repo.AttachPayment(context.Background(), "JN-1001", domain.ProviderMpesa, "ws_CO_2")
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
