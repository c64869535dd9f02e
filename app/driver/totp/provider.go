// Package totp implements the OTP provider on time-based one-time
// passwords.
package totp

import (
	"fmt"
	"time"

	"github.com/pquerna/otp/totp"
)

// Provider yields the current TOTP code for an account's seed (30 second
// step, 6 digits).
type Provider struct {
	nowTime func() time.Time
}

// ProviderOption modifies the provider.
type ProviderOption func(*Provider)

// WithNowTime sets the clock (primarily for testing).
func WithNowTime(nowFunc func() time.Time) ProviderOption {
	return func(p *Provider) {
		p.nowTime = nowFunc
	}
}

// NewProvider creates a TOTP provider.
func NewProvider(options ...ProviderOption) *Provider {
	p := &Provider{nowTime: time.Now}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// CurrentValue returns the code for the seed at the current time step.
func (p *Provider) CurrentValue(seed string) (string, error) {
	code, err := totp.GenerateCode(seed, p.nowTime())
	if err != nil {
		return "", fmt.Errorf("failed to generate totp code: %w", err)
	}
	return code, nil
}
