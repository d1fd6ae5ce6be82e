package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_Valid(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
	}
	assert.Nil(t, ValidateStruct(req{Email: "jane@example.com"}))
}

func TestValidateStruct_Messages(t *testing.T) {
	type req struct {
		Email    string  `validate:"required,email"`
		Rating   int     `validate:"min=1,max=5"`
		Price    float64 `validate:"gte=0"`
		Password string  `validate:"password_strength"`
	}

	details := ValidateStruct(req{Email: "nope", Rating: 9, Price: -1, Password: "weak"})
	require.Len(t, details, 4)

	byField := make(map[string]string)
	for _, d := range details {
		byField[d.Field] = d.Message
	}

	assert.Equal(t, "Email must be a valid email address", byField["email"])
	assert.Equal(t, "Rating must be at most 5", byField["rating"])
	assert.Equal(t, "Price must be at least 0", byField["price"])
	assert.Contains(t, byField["password"], "at least 8 characters")
}

func TestValidateStruct_RequiredMessage(t *testing.T) {
	type req struct {
		Title string `validate:"required"`
	}

	details := ValidateStruct(req{})
	require.Len(t, details, 1)
	assert.Equal(t, "title", details[0].Field)
	assert.Equal(t, "Title is required", details[0].Message)
}

func TestValidateISBN(t *testing.T) {
	type req struct {
		ISBN string `validate:"isbn"`
	}

	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"isbn-13 with dashes", "978-0441013593", true},
		{"isbn-13 plain", "9780441013593", true},
		{"isbn-10", "0441013597", true},
		{"isbn-10 with X check digit", "080442957X", true},
		{"too short", "12345", false},
		{"letters", "978-04410135AB", false},
		{"isbn-13 with X", "978044101359X", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateStruct(req{ISBN: tt.isbn})
			if tt.valid {
				assert.Nil(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	type req struct {
		Password string `validate:"password_strength"`
	}

	assert.Nil(t, ValidateStruct(req{Password: "Str0ng!Password"}))

	for _, weak := range []string{"short1!", "nouppercase1!", "NOLOWERCASE1!", "NoNumbers!", "NoSpecial1"} {
		assert.NotEmpty(t, ValidateStruct(req{Password: weak}), "password %q should fail", weak)
	}
}
