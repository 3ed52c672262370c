package transferdelivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	arg := domain.TransferParams{
		FromOwner: "Alice",
		ToOwner:   "Bob",
		Amount:    domain.Amount{Value: 300, Currency: currencypkg.USD},
	}

	validBody := gin.H{
		"from_account": arg.FromOwner,
		"to_account":   arg.ToOwner,
		"amount": gin.H{
			"value":    arg.Amount.Value,
			"currency": arg.Amount.Currency,
		},
	}

	testCases := []struct {
		name           string
		requestBody    gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: validBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).Times(1).Return(nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ZeroValue",
			requestBody: gin.H{
				"from_account": arg.FromOwner,
				"to_account":   arg.ToOwner,
				"amount":       gin.H{"value": 0, "currency": "USD"},
			},
			buildStubs: func(service *MockService) {
				want := arg
				want.Amount.Value = 0
				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(want)).Times(1).Return(nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MissingFromAccount",
			requestBody: gin.H{
				"to_account": arg.ToOwner,
				"amount":     gin.H{"value": 1, "currency": "USD"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "FromAccount field is required",
		},
		{
			name: "MissingAmount",
			requestBody: gin.H{
				"from_account": arg.FromOwner,
				"to_account":   arg.ToOwner,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Value field is required",
		},
		{
			name: "UnsupportedCurrency",
			requestBody: gin.H{
				"from_account": arg.FromOwner,
				"to_account":   arg.ToOwner,
				"amount":       gin.H{"value": 1, "currency": "GBP"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Currency is not supported",
		},
		{
			name:        "NotFound",
			requestBody: validBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).Times(1).Return(domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:        "SelfTransfer",
			requestBody: validBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).Times(1).Return(domain.ErrSelfTransfer)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrSelfTransfer.Error(),
		},
		{
			name:        "CurrencyMismatch",
			requestBody: validBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).Times(1).Return(domain.ErrCurrencyMismatch)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrCurrencyMismatch.Error(),
		},
		{
			name:        "InsufficientFunds",
			requestBody: validBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).Times(1).Return(domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInsufficientFunds.Error(),
		},
		{
			name:        "Unauthorized",
			requestBody: validBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).Times(1).Return(errorspkg.ErrUnauthorized)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      errorspkg.ErrUnauthorized.Error(),
		},
		{
			name:        "InternalError",
			requestBody: validBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).Times(1).Return(errors.New("unexpected"))
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.POST("/accounts/transfer", handler.Create)

			tc.buildStubs(service)

			// Send request
			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/accounts/transfer", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
			}
		})
	}
}
