// Package normalize reduces composite payment-rail descriptions to a plain
// merchant name. UPI statement lines arrive as slash-delimited strings like
// "UPI/CHANDAN SARKAR/bharatpe.90812345@icici" where only the second segment
// names the merchant.
package normalize

import "strings"

var upiPrefixes = []string{"UPI/", "UPICC/"}

// Clean extracts the merchant name from a composite payment-rail title.
// Titles without a recognized prefix are returned trimmed but otherwise
// unchanged, so Clean is safe to apply to every statement line.
func Clean(raw string) string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return raw
	}

	upper := strings.ToUpper(title)
	for _, prefix := range upiPrefixes {
		if !strings.HasPrefix(upper, prefix) {
			continue
		}
		parts := strings.Split(title, "/")
		if len(parts) >= 2 {
			if merchant := strings.TrimSpace(parts[1]); merchant != "" {
				return merchant
			}
		}
		break
	}

	return title
}
