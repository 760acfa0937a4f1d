//+build !release

package mocks

import (
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/providers"
)

// IFakeSettings adds additional capabilities to a fake settings provider.
type IFakeSettings interface {
	providers.ISettingsProvider
	AddLegacyLocations(map[string]map[string]interface{})
	AddServerSettings(*providers.ServerSettings)
	AddSecurity(providers.ISecurityProvider)
	AddEntriesFile(string)
}

type fakeSettings struct {
	logger    common.ILoggerProvider
	cron      providers.ICronProvider
	validator providers.IValidatorProvider
	fanOut    providers.IFanOutProvider
	security  providers.ISecurityProvider
	server    *providers.ServerSettings
	legacy    map[string]map[string]interface{}
	entries   string
}

func (f *fakeSettings) SystemLogger() common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) PluginLogger(string, string) common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) Cron() providers.ICronProvider {
	return f.cron
}

func (f *fakeSettings) Validator() providers.IValidatorProvider {
	return f.validator
}

func (f *fakeSettings) FanOut() providers.IFanOutProvider {
	return f.fanOut
}

func (f *fakeSettings) Security() providers.ISecurityProvider {
	return f.security
}

func (f *fakeSettings) ServerSettings() *providers.ServerSettings {
	return f.server
}

func (f *fakeSettings) GismeteoSettings() *providers.GismeteoSettings {
	return &providers.GismeteoSettings{
		Endpoint:   "http://localhost",
		MaxRetries: 0,
	}
}

func (f *fakeSettings) HomeLocation() *providers.HomeLocation {
	return &providers.HomeLocation{
		Latitude:  55.75,
		Longitude: 37.62,
	}
}

func (f *fakeSettings) LegacyLocations() map[string]map[string]interface{} {
	return f.legacy
}

func (f *fakeSettings) EntriesFile() string {
	return f.entries
}

func (f *fakeSettings) AddLegacyLocations(l map[string]map[string]interface{}) {
	f.legacy = l
}

func (f *fakeSettings) AddServerSettings(s *providers.ServerSettings) {
	f.server = s
}

func (f *fakeSettings) AddSecurity(s providers.ISecurityProvider) {
	f.security = s
}

func (f *fakeSettings) AddEntriesFile(file string) {
	f.entries = file
}

// FakeNewSettings creates a fake settings provider.
func FakeNewSettings(cron providers.ICronProvider, validator providers.IValidatorProvider,
	logger common.ILoggerProvider) IFakeSettings {
	if nil == logger {
		logger = FakeNewLogger(nil)
	}

	if nil == cron {
		cron = FakeNewCron()
	}

	if nil == validator {
		validator = FakeNewValidator(true)
	}

	return &fakeSettings{
		logger:    logger,
		cron:      cron,
		validator: validator,
		fanOut:    FakeNewFanOut(),
		security:  FakeNewSecurityProvider(false, true),
		server:    &providers.ServerSettings{Port: 8123},
		legacy:    make(map[string]map[string]interface{}),
	}
}
