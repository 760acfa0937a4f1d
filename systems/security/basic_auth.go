// Package security contains API basic auth provider.
package security

import (
	"encoding/base64"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/providers"
	"golang.org/x/crypto/bcrypt"
)

// ConstructSecurityProvider has data required for a new security provider.
type ConstructSecurityProvider struct {
	Logger    common.ILoggerProvider
	Users     map[string]string
	UsersFile string
}

// Implements basic auth provider.
type basicAuthProvider struct {
	sync.RWMutex
	logger          common.ILoggerProvider
	presetPasswords map[string]string
}

// NewSecurityProvider creates a new basic auth provider.
// Passwords are bcrypt hashes, the same format htpasswd -B generates.
// Empty users list disables authentication.
func NewSecurityProvider(ctor *ConstructSecurityProvider) providers.ISecurityProvider {
	b := &basicAuthProvider{
		logger:          ctor.Logger,
		presetPasswords: make(map[string]string),
	}

	for k, v := range ctor.Users {
		b.presetPasswords[k] = v
	}

	if "" != ctor.UsersFile && !b.readFile(ctor.UsersFile) {
		b.logger.Warn("Users file is not found, using configured users only", common.LogFileToken, ctor.UsersFile)
	}

	if !b.IsEnabled() {
		b.logger.Warn("No users configured, API is not protected")
	}

	return b
}

// IsEnabled checks whether any user is configured.
func (b *basicAuthProvider) IsEnabled() bool {
	b.RLock()
	defer b.RUnlock()
	return len(b.presetPasswords) > 0
}

// GetUser validates basic auth header against configured users.
func (b *basicAuthProvider) GetUser(headers map[string][]string) (string, error) {
	var auth []string

	for k, v := range headers {
		if k != "Authorization" {
			continue
		}

		if 1 != len(v) {
			continue
		}

		auth = strings.SplitN(v[0], " ", 2)
		break
	}

	if 2 != len(auth) || "Basic" != auth[0] {
		b.logger.Debug("No Basic Auth header found")
		return "", &ErrUnauthorized{Failure: FailureNoCredentials}
	}

	payload, err := base64.StdEncoding.DecodeString(auth[1])
	if err != nil {
		b.logger.Warn("Failed to decode Basic Auth header")
		return "", &ErrUnauthorized{Failure: FailureMalformed}
	}

	pair := strings.SplitN(string(payload), ":", 2)
	if 2 != len(pair) {
		b.logger.Warn("Corrupted Basic Auth header")
		return "", &ErrUnauthorized{Failure: FailureMalformed}
	}

	b.RLock()
	pwd, ok := b.presetPasswords[pair[0]]
	b.RUnlock()

	if ok && bcrypt.CompareHashAndPassword([]byte(pwd), []byte(pair[1])) == nil {
		b.logger.Debug("User is authorized", common.LogUserNameToken, pair[0])
		return pair[0], nil
	}

	b.logger.Warn("User is unauthorized", common.LogUserNameToken, pair[0])
	return "", &ErrUnauthorized{Failure: FailureRejected, User: pair[0]}
}

// Reads htpasswd file.
func (b *basicAuthProvider) readFile(name string) bool {
	bytes, err := ioutil.ReadFile(name)
	if err != nil {
		return false
	}

	b.Lock()
	defer b.Unlock()

	lines := strings.Split(string(bytes), "\n")
	for _, v := range lines {
		v = strings.Trim(v, " \r")
		if 0 == len(v) || strings.HasPrefix(v, "#") {
			continue
		}

		parts := strings.SplitN(v, ":", 2)
		if 2 != len(parts) {
			continue
		}

		b.presetPasswords[parts[0]] = parts[1]
	}

	return true
}
