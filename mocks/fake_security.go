//+build !release

package mocks

import (
	"errors"
)

type fakeSecurity struct {
	enabled bool
	allow   bool
}

func (f *fakeSecurity) IsEnabled() bool {
	return f.enabled
}

func (f *fakeSecurity) GetUser(map[string][]string) (string, error) {
	if f.allow {
		return "test", nil
	}

	return "", errors.New("not found")
}

// FakeNewSecurityProvider creates a fake security provider.
func FakeNewSecurityProvider(enabled, allow bool) *fakeSecurity {
	return &fakeSecurity{
		enabled: enabled,
		allow:   allow,
	}
}
