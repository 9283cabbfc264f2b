package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/screenseat/movie-booking/internal/model"
)

func TestValidateCustomerInfo(t *testing.T) {
	cases := []struct {
		name   string
		info   model.CustomerInfo
		fields []string
	}{
		{"all valid", model.CustomerInfo{Name: "Ada", Email: "ada@example.com", Phone: "555-123-4567"}, nil},
		{"international phone", model.CustomerInfo{Name: "Ada", Email: "ada@example.com", Phone: "+44 (20) 7946-0958"}, nil},
		{"empty name", model.CustomerInfo{Name: "  ", Email: "x@y.com", Phone: "555-1234"}, []string{"name"}},
		{"missing email", model.CustomerInfo{Name: "Ada", Email: "", Phone: "555-1234"}, []string{"email"}},
		{"bad email", model.CustomerInfo{Name: "Ada", Email: "not-an-email", Phone: "555-1234"}, []string{"email"}},
		{"email with spaces", model.CustomerInfo{Name: "Ada", Email: "a b@y.com", Phone: "555-1234"}, []string{"email"}},
		{"phone with letters", model.CustomerInfo{Name: "Ada", Email: "x@y.com", Phone: "call me"}, []string{"phone"}},
		{"phone too short", model.CustomerInfo{Name: "Ada", Email: "x@y.com", Phone: "12345"}, []string{"phone"}},
		{"everything wrong", model.CustomerInfo{}, []string{"name", "email", "phone"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fe := ValidateCustomerInfo(tc.info)
			assert.Len(t, fe, len(tc.fields))
			for _, f := range tc.fields {
				assert.Contains(t, fe, f)
			}
		})
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	fe := FieldErrors{"name": "name is required", "email": "email is not valid"}
	assert.Equal(t, "validation failed: email: email is not valid; name: name is required", fe.Error())
}
