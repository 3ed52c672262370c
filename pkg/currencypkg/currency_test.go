package currencypkg

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestIsSupportedCurrency(t *testing.T) {
	t.Parallel()

	for _, c := range SupportedCurrencies {
		if !IsSupportedCurrency(string(c)) {
			t.Errorf("IsSupportedCurrency(%q) = false, want true", c)
		}
	}

	for _, c := range []string{"", "usd", "RMB", "GBP"} {
		if IsSupportedCurrency(c) {
			t.Errorf("IsSupportedCurrency(%q) = true, want false", c)
		}
	}
}

func TestValidCurrency(t *testing.T) {
	t.Parallel()

	v := validator.New()
	if err := v.RegisterValidation("currency", ValidCurrency); err != nil {
		t.Fatalf("v.RegisterValidation(currency) returned error: %v", err)
	}

	type request struct {
		Currency Currency `validate:"required,currency"`
		Code     string   `validate:"currency"`
	}

	if err := v.Struct(request{Currency: EUR, Code: "RUB"}); err != nil {
		t.Errorf("v.Struct(valid) returned error: %v", err)
	}

	if err := v.Struct(request{Currency: "JPY", Code: "USD"}); err == nil {
		t.Errorf("v.Struct(JPY) returned nil error, want validation error")
	}

	if err := v.Struct(request{Currency: USD, Code: "xyz"}); err == nil {
		t.Errorf("v.Struct(xyz) returned nil error, want validation error")
	}
}
