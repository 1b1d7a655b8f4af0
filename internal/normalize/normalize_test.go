package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "upi title yields merchant segment",
			input: "UPI/CHANDAN SARKAR/bharatpe.90812345@icici",
			want:  "CHANDAN SARKAR",
		},
		{
			name:  "upicc prefix recognized",
			input: "UPICC/Swiggy/ref123@okhdfc",
			want:  "Swiggy",
		},
		{
			name:  "lowercase prefix recognized",
			input: "upi/Fresh Farms/pay.44@ybl",
			want:  "Fresh Farms",
		},
		{
			name:  "no recognized prefix passes through",
			input: "ACH DEBIT XYZ",
			want:  "ACH DEBIT XYZ",
		},
		{
			name:  "prefix without merchant segment unchanged",
			input: "UPI/",
			want:  "UPI/",
		},
		{
			name:  "whitespace merchant segment unchanged",
			input: "UPI/   /ref",
			want:  "UPI/   /ref",
		},
		{
			name:  "casing of merchant preserved",
			input: "Upi/McDonalds Kormangala/hdfc999",
			want:  "McDonalds Kormangala",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  UPI/Blinkit/xx  ",
			want:  "Blinkit",
		},
		{
			name:  "empty input returned unchanged",
			input: "",
			want:  "",
		},
		{
			name:  "slash inside plain title untouched",
			input: "NEFT DR/ACME SUPPLIES",
			want:  "NEFT DR/ACME SUPPLIES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}
