// Package secret contains file-based secrets store.
package secret

import (
	"io/ioutil"
	"os"
	"sync"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"gopkg.in/yaml.v2"
)

const (
	// Secret logs system value.
	logSystem = "secret"
	// FileName describes default secrets file name.
	// Underscore prefix keeps the file out of the config loader.
	FileName = "_secrets.yaml"
)

// ConstructSecret has data required for a new secrets provider.
type ConstructSecret struct {
	Logger common.ILoggerProvider
	File   string
}

// File secrets store implementation.
type provider struct {
	sync.RWMutex
	logger  common.ILoggerProvider
	secrets map[string]string
}

// NewSecretProvider constructs a new secrets store provider.
// Missing file results in an empty store.
func NewSecretProvider(ctor *ConstructSecret) (common.ISecretProvider, error) {
	p := &provider{
		logger:  ctor.Logger,
		secrets: make(map[string]string),
	}

	data, err := ioutil.ReadFile(ctor.File)
	if err != nil {
		if os.IsNotExist(err) {
			p.logger.Debug("Secrets file is not found", common.LogFileToken, ctor.File,
				common.LogSystemToken, logSystem)
			return p, nil
		}

		return nil, err
	}

	if err := yaml.Unmarshal(data, &p.secrets); err != nil {
		return nil, err
	}

	return p, nil
}

// Get returns secret value or throws an error if it wasn't found.
func (p *provider) Get(name string) (string, error) {
	p.RLock()
	defer p.RUnlock()

	value, ok := p.secrets[name]
	if !ok {
		p.logger.Warn("Can't find requested secret", common.LogSecretToken, name, common.LogSystemToken, logSystem)
		return "", &ErrNotFound{Name: name}
	}

	p.logger.Debug("Requesting secret", common.LogSecretToken, name, common.LogSystemToken, logSystem)
	return value, nil
}
