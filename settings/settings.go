package settings

import (
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/systems/logger"
)

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// PluginLogger returns logger specifically for a system provider.
func (s *settingsProvider) PluginLogger(system string, provider string) common.ILoggerProvider {
	return logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: s.logger,
		System:       system,
		Provider:     provider,
	})
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// Validator returns yaml validator provider.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// FanOut returns fan out channel.
func (s *settingsProvider) FanOut() providers.IFanOutProvider {
	return s.fanOut
}

// Security returns a security provider.
func (s *settingsProvider) Security() providers.ISecurityProvider {
	return s.security
}

// ServerSettings returns API server settings.
func (s *settingsProvider) ServerSettings() *providers.ServerSettings {
	return s.server
}

// GismeteoSettings returns provider client settings.
func (s *settingsProvider) GismeteoSettings() *providers.GismeteoSettings {
	return s.gismeteo
}

// HomeLocation returns configured home coordinates.
func (s *settingsProvider) HomeLocation() *providers.HomeLocation {
	return s.home
}

// LegacyLocations returns locations declared in the yaml config, keyed by slug.
func (s *settingsProvider) LegacyLocations() map[string]map[string]interface{} {
	return s.legacy
}

// EntriesFile returns config entries storage location.
func (s *settingsProvider) EntriesFile() string {
	return s.entriesFile
}
