package notification

import (
	"errors"
	"testing"
)

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limit code", errors.New("resend: rate_limit_exceeded"), true},
		{"rate limit prose", errors.New("Rate limit hit, slow down"), true},
		{"status 429", errors.New("unexpected status 429"), true},
		{"quota wording", errors.New("monthly sending quota reached"), true},
		{"too many requests", errors.New("Too Many Requests"), true},
		{"validation failure", errors.New("invalid `to` address"), false},
		{"timeout", errors.New("context deadline exceeded"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuotaError(tt.err); got != tt.want {
				t.Errorf("isQuotaError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
