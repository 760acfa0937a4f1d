package settings

import (
	"bytes"
	"os"
	"text/template"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/pkg/errors"
)

// ITemplateProvider defines template logic.
type ITemplateProvider interface {
	Process([]byte) ([]byte, error)
}

// Template engine provider.
type provider struct {
	logger    common.ILoggerProvider
	functions template.FuncMap
}

// Contains data required for a new template.
type constructTemplate struct {
	Logger  common.ILoggerProvider
	Secrets common.ISecretProvider
}

// Constructs a new template engine.
func newTemplateProvider(ctor *constructTemplate) *provider {
	provider := &provider{
		logger: ctor.Logger,
	}

	provider.functions = template.FuncMap{
		"env": provider.getEnvVariable,
	}

	if nil != ctor.Secrets {
		provider.functions["sec"] = ctor.Secrets.Get
	}

	return provider
}

// Process applies template functions to the raw config,
// allowing values such as API tokens to be read from environment variables or secrets.
func (p *provider) Process(rawFile []byte) ([]byte, error) {
	tpl, err := template.New(logSystem).Funcs(p.functions).Parse(string(rawFile))
	if err != nil {
		return nil, errors.Wrap(err, "parse failed")
	}

	b := bytes.Buffer{}
	if err := tpl.Execute(&b, nil); err != nil {
		return nil, errors.Wrap(err, "execute failed")
	}

	return b.Bytes(), nil
}

// Returns environment variable.
func (p *provider) getEnvVariable(name string) string {
	p.logger.Debug("Template is requesting environment variable",
		common.LogNameToken, name, common.LogSystemToken, logSystem)
	return os.Getenv(name)
}
