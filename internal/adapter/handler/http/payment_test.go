package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	handler "github.com/rescuebite/rescuebite/internal/adapter/handler/http"
)

func TestPaymentHandler_Callback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type callbackTest struct {
		name      string
		body      string
		mock      func(service *mock.MockService)
		expStatus int
	}

	order := domain.Order{ID: 1, Status: domain.OrderStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid}

	tests := []callbackTest{
		{
			name: "authorized signal confirms the order",
			body: `{"order_id":1,"status":"authorized","transaction_ref":"tx-1"}`,
			mock: func(service *mock.MockService) {
				service.EXPECT().ConfirmPayment(gomock.Any(), uint64(1), "tx-1").Return(&order, nil)
			},
			expStatus: http.StatusOK,
		},
		{
			name: "repeated signal still answers ok",
			body: `{"order_id":1,"status":"authorized","transaction_ref":"tx-1"}`,
			mock: func(service *mock.MockService) {
				service.EXPECT().ConfirmPayment(gomock.Any(), uint64(1), "tx-1").
					Return(nil, domain.ErrAlreadyConfirmed)
			},
			expStatus: http.StatusOK,
		},
		{
			name: "failed signal cancels the order",
			body: `{"order_id":1,"status":"failed"}`,
			mock: func(service *mock.MockService) {
				service.EXPECT().FailPayment(gomock.Any(), uint64(1), "payment failed").
					Return(&domain.Order{ID: 1, Status: domain.OrderStatusCancelled}, nil)
			},
			expStatus: http.StatusOK,
		},
		{
			name:      "unknown status rejected",
			body:      `{"order_id":1,"status":"maybe"}`,
			mock:      func(service *mock.MockService) {},
			expStatus: http.StatusBadRequest,
		},
		{
			name: "unknown order",
			body: `{"order_id":99,"status":"authorized"}`,
			mock: func(service *mock.MockService) {
				service.EXPECT().ConfirmPayment(gomock.Any(), uint64(99), "").
					Return(nil, domain.ErrDataNotFound)
			},
			expStatus: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := mock.NewMockService(mockCtrl)
			test.mock(service)

			ph, err := handler.NewPaymentHandler(service, zap.NewNop())
			assert.NoError(t, err)

			router := gin.New()
			router.POST("/api/payments/callback", ph.Callback)

			req := httptest.NewRequest(http.MethodPost, "/api/payments/callback",
				strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, test.expStatus, rec.Code)
		})
	}
}
