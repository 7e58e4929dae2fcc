package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHHMMRegex(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		// Valid times
		{"morning", "09:00", true},
		{"midnight", "00:00", true},
		{"end of day", "23:59", true},
		{"early afternoon", "13:05", true},

		// Invalid times
		{"hour out of range", "24:00", false},
		{"minute out of range", "10:60", false},
		{"missing leading zero", "9:00", false},
		{"with seconds", "09:00:00", false},
		{"empty string", "", false},
		{"words", "nine", false},
		{"negative", "-1:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := hhmmRegex.MatchString(tt.value)
			assert.Equal(t, tt.valid, result, "value: %q", tt.value)
		})
	}
}

func TestValidateUserType(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("usertype", validateUserType))

	type payload struct {
		Type string `validate:"usertype"`
	}

	valid := []string{"traveler", "hotel-owner", "vehicle-owner", "restaurant-owner", "tour-guide", "event-organizer"}
	for _, ut := range valid {
		assert.NoError(t, v.Struct(payload{Type: ut}), "type: %q", ut)
	}

	invalid := []string{"", "admin", "Traveler", "pilot"}
	for _, ut := range invalid {
		assert.Error(t, v.Struct(payload{Type: ut}), "type: %q", ut)
	}
}

func TestNumericStringValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("floatmin", validateFloatMin))
	require.NoError(t, v.RegisterValidation("intmin", validateIntMin))
	require.NoError(t, v.RegisterValidation("intmax", validateIntMax))

	type form struct {
		Price     string `validate:"floatmin=0"`
		NoOfSeats string `validate:"intmin=1,intmax=100"`
	}

	tests := []struct {
		name  string
		value form
		valid bool
	}{
		{"typical values", form{Price: "50", NoOfSeats: "40"}, true},
		{"decimal price", form{Price: "49.99", NoOfSeats: "1"}, true},
		{"upper seat bound", form{Price: "0", NoOfSeats: "100"}, true},
		{"negative price", form{Price: "-1", NoOfSeats: "40"}, false},
		{"non-numeric price", form{Price: "abc", NoOfSeats: "40"}, false},
		{"zero seats", form{Price: "50", NoOfSeats: "0"}, false},
		{"seats over limit", form{Price: "50", NoOfSeats: "101"}, false},
		{"non-numeric seats", form{Price: "50", NoOfSeats: "many"}, false},
		{"fractional seats", form{Price: "50", NoOfSeats: "1.5"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	t.Run("unparseable value fails the minimum rule only", func(t *testing.T) {
		err := v.Struct(form{Price: "50", NoOfSeats: "many"})
		require.Error(t, err)

		verrs := err.(validator.ValidationErrors)
		require.Len(t, verrs, 1)
		assert.Equal(t, "intmin", verrs[0].Tag())
	})
}

func TestTranslate(t *testing.T) {
	RegisterCustomValidators()

	v := validator.New()
	require.NoError(t, v.RegisterValidation("hhmm", validateHHMM))

	type trainForm struct {
		TrainName   string `validate:"required"`
		NoOfSeats   int    `validate:"required,min=1,max=100"`
		ArrivalTime string `validate:"required,hhmm"`
	}

	t.Run("accumulates all failures", func(t *testing.T) {
		err := v.Struct(trainForm{NoOfSeats: 150, ArrivalTime: "25:99"})
		require.Error(t, err)

		errs := Translate(err)
		require.Len(t, errs, 3)

		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fe.Field)
		}
		assert.Contains(t, fields, "TrainName")
		assert.Contains(t, fields, "NoOfSeats")
		assert.Contains(t, fields, "ArrivalTime")
	})

	t.Run("seat limit message references the limit", func(t *testing.T) {
		err := v.Struct(trainForm{TrainName: "Express1", NoOfSeats: 150, ArrivalTime: "10:00"})
		require.Error(t, err)

		errs := Translate(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "NoOfSeats", errs[0].Field)
		assert.Contains(t, errs[0].Message, "100")
	})

	t.Run("non-validation errors map to a generic payload error", func(t *testing.T) {
		errs := Translate(assert.AnError)
		require.Len(t, errs, 1)
		assert.Equal(t, "invalid request payload", errs[0].Message)
	})
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "fast intercity train", "fast intercity train"},
		{"whitespace trimmed", "  Express1  ", "Express1"},
		{"script tags escaped", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"quotes escaped", `say "hi"`, "say &#34;hi&#34;"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeText(tt.input))
		})
	}
}

func TestRegisterCustomValidators(t *testing.T) {
	t.Run("does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			RegisterCustomValidators()
		})
	})
}
