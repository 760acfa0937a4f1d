// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"bytes"
	"io"
	"strings"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/systems"
	"github.com/iredun/ha-gismeteo/systems/fanout"
	"github.com/iredun/ha-gismeteo/systems/logger"
	"github.com/iredun/ha-gismeteo/systems/secret"
	"github.com/iredun/ha-gismeteo/systems/security"
	"github.com/iredun/ha-gismeteo/utils"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"
	// Default entries storage file.
	defaultEntriesFile = "entries.yaml"
	// Default environment file.
	defaultEnvFile = ".env"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	ConfigLocation string `short:"c" long:"config" description:"Config file or folder location." default:"./configs"`
	EntriesFile    string `short:"e" long:"entries" description:"Config entries storage file. Defaults to config folder."`
	SecretsFile    string `short:"s" long:"secrets" description:"Secrets file. Defaults to config folder."`
	EnvFile        string `long:"env" description:"Environment variables file. Defaults to config folder."`
	LogLevel       string `short:"l" long:"log-level" description:"Log level used before logger record is loaded." default:"info"`
}

// Defines loaded provider record.
type rawProvider struct {
	System   string
	Provider string
	Config   []byte
}

// Legacy weather record.
type legacyRecord struct {
	Locations map[string]map[string]interface{} `yaml:"locations"`
}

// System settings.
type settingsProvider struct {
	logger    common.ILoggerProvider
	cron      providers.ICronProvider
	validator providers.IValidatorProvider
	fanOut    providers.IInternalFanOutProvider
	security  providers.ISecurityProvider

	server      *providers.ServerSettings
	gismeteo    *providers.GismeteoSettings
	home        *providers.HomeLocation
	rawSecurity *providers.SecuritySettings
	legacy      map[string]map[string]interface{}
	entriesFile string
}

// Load system configuration.
func Load(options *StartUpOptions) (providers.ISettingsProvider, error) {
	s, err := load(options)
	if err != nil {
		return nil, err
	}

	_, err = s.cron.AddFunc("@every 10s", func() {
		s.logger.Flush()
	})

	if err != nil {
		return nil, errors.Wrap(err, "logger flush registration failed")
	}

	return s, nil
}

// Loads configuration without starting any background jobs.
func load(options *StartUpOptions) (*settingsProvider, error) {
	s := &settingsProvider{
		logger: logger.NewLoggerProvider(&logger.ConstructLogger{Level: options.LogLevel}),
		legacy: make(map[string]map[string]interface{}),
	}

	s.validator = utils.NewValidator(s.logger)

	if err := s.loadEnv(options); err != nil {
		return nil, errors.Wrap(err, "env file read failed")
	}

	secretsFile := options.SecretsFile
	if "" == secretsFile {
		secretsFile = siblingPath(options.ConfigLocation, secret.FileName)
	}

	secrets, err := secret.NewSecretProvider(&secret.ConstructSecret{Logger: s.logger, File: secretsFile})
	if err != nil {
		return nil, errors.Wrap(err, "secrets file read failed")
	}

	templateProvider := newTemplateProvider(&constructTemplate{Logger: s.logger, Secrets: secrets})

	files, err := listConfigFiles(options.ConfigLocation)
	if err != nil {
		return nil, errors.Wrap(err, "config location read failed")
	}

	allProviders := make([]*rawProvider, 0)
	for _, v := range files {
		data, err := readConfigFile(v)
		if err != nil {
			return nil, errors.Wrap(err, "config file read failed")
		}

		s.logger.Info("Processing config file", common.LogFileToken, v, common.LogSystemToken, logSystem)
		data, err = templateProvider.Process(data)
		if err != nil {
			return nil, errors.Wrap(err, "config template failed")
		}

		allProviders = append(allProviders, s.loadFile(data)...)
	}

	allProviders, err = s.loadLoggerProvider(allProviders)
	if err != nil {
		return nil, err
	}

	for _, v := range allProviders {
		if err := s.parseProvider(v); err != nil {
			return nil, err
		}
	}

	s.entriesFile = options.EntriesFile
	if "" == s.entriesFile {
		s.entriesFile = siblingPath(options.ConfigLocation, defaultEntriesFile)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	s.cron = utils.NewCron()
	s.fanOut = fanout.NewFanOut()
	s.security = security.NewSecurityProvider(&security.ConstructSecurityProvider{
		Logger:    s.PluginLogger(systems.SysSecurity.String(), "basic"),
		Users:     s.rawSecurity.Users,
		UsersFile: s.rawSecurity.UsersFile,
	})

	return s, nil
}

// Loads environment variables file, already set variables are kept.
func (s *settingsProvider) loadEnv(options *StartUpOptions) error {
	envFile := options.EnvFile
	if "" == envFile {
		envFile = siblingPath(options.ConfigLocation, defaultEnvFile)
		if !fileExists(envFile) {
			return nil
		}
	}

	s.logger.Debug("Loading environment file", common.LogFileToken, envFile, common.LogSystemToken, logSystem)
	return godotenv.Load(envFile)
}

// Fills missing records with defaults and validates them.
func (s *settingsProvider) validate() error {
	if nil == s.server {
		s.logger.Warn("Server settings are not defined, using the default ones",
			common.LogSystemToken, logSystem)
		s.server = &providers.ServerSettings{}
	}

	if nil == s.gismeteo {
		s.gismeteo = &providers.GismeteoSettings{}
	}

	if nil == s.home {
		s.logger.Warn("Home location is not defined, new locations will not have defaults",
			common.LogSystemToken, logSystem)
		s.home = &providers.HomeLocation{}
	}

	if nil == s.rawSecurity {
		s.rawSecurity = &providers.SecuritySettings{}
	}

	for sys, v := range map[systems.SystemType]interface{}{
		systems.SysServer:   s.server,
		systems.SysGismeteo: s.gismeteo,
		systems.SysHome:     s.home,
	} {
		if !s.validator.Validate(v) {
			return &ErrInvalidRecord{System: sys.String()}
		}
	}

	return nil
}

// Processes single yaml file.
func (s *settingsProvider) loadFile(fileData []byte) []*rawProvider {
	provs := make([]*rawProvider, 0)
	decoder := yaml.NewDecoder(bytes.NewReader(fileData))
	for {
		var value map[string]interface{}
		err := decoder.Decode(&value)
		if err == io.EOF {
			break
		}

		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, logSystem)
			break
		}

		componentType := ""
		componentProvider := ""

		if cs, ok := value["system"].(string); ok {
			componentType = strings.ToLower(cs)
		}

		if ct, ok := value["provider"].(string); ok {
			componentProvider = strings.ToLower(ct)
		}

		if componentType == "" || componentProvider == "" {
			s.logger.Warn("Failed to parse a record in the config file: system or provider is not defined",
				common.LogSystemToken, logSystem)
			continue
		}

		byteData, err := yaml.Marshal(value)
		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, componentType,
				common.LogProviderToken, componentProvider)
			continue
		}

		provs = append(provs, &rawProvider{
			Provider: componentProvider,
			System:   componentType,
			Config:   byteData,
		})
	}

	return provs
}

// Loads logger configuration.
func (s *settingsProvider) loadLoggerProvider(provs []*rawProvider) ([]*rawProvider, error) {
	left := make([]*rawProvider, 0, len(provs))
	loaded := false
	for _, v := range provs {
		if v.System != systems.SysLogger.String() {
			left = append(left, v)
			continue
		}

		if loaded {
			s.logger.Warn("Duplicated logger record", common.LogProviderToken, v.Provider,
				common.LogSystemToken, v.System)
			continue
		}

		set := &providers.LoggerSettings{}
		if err := yaml.Unmarshal(v.Config, set); err != nil {
			return nil, errors.Wrap(err, "logger record unmarshal failed")
		}

		if !s.validator.Validate(set) {
			return nil, &ErrInvalidRecord{System: v.System}
		}

		loaded = true
		s.logger = logger.NewLoggerProvider(&logger.ConstructLogger{
			Level: set.Level,
			JSON:  set.JSON,
		})

		s.validator.SetLogger(s.PluginLogger("validator", "go-playground"))
	}

	return left, nil
}

// Processes single provider config.
func (s *settingsProvider) parseProvider(provider *rawProvider) error {
	s.logger.Debug("Processing config", common.LogProviderToken, provider.Provider,
		common.LogSystemToken, provider.System)

	sys, err := systems.SystemTypeString(provider.System)
	if err != nil {
		s.logger.Warn("Unknown provider's system", common.LogProviderToken, provider.Provider,
			common.LogSystemToken, provider.System)
		return nil
	}

	var target interface{}
	switch sys {
	case systems.SysServer:
		if nil != s.server {
			s.warnDuplicate(provider)
			return nil
		}
		s.server = &providers.ServerSettings{}
		target = s.server
	case systems.SysGismeteo:
		if nil != s.gismeteo {
			s.warnDuplicate(provider)
			return nil
		}
		s.gismeteo = &providers.GismeteoSettings{}
		target = s.gismeteo
	case systems.SysHome:
		if nil != s.home {
			s.warnDuplicate(provider)
			return nil
		}
		s.home = &providers.HomeLocation{}
		target = s.home
	case systems.SysSecurity:
		if nil != s.rawSecurity {
			s.warnDuplicate(provider)
			return nil
		}
		s.rawSecurity = &providers.SecuritySettings{}
		target = s.rawSecurity
	case systems.SysWeather:
		return s.processLegacy(provider)
	default:
		return nil
	}

	if err := yaml.Unmarshal(provider.Config, target); err != nil {
		return errors.Wrap(err, provider.System+" record unmarshal failed")
	}

	return nil
}

// Processes legacy weather locations.
func (s *settingsProvider) processLegacy(provider *rawProvider) error {
	if provider.Provider != common.Domain {
		s.logger.Warn("Ignoring weather record of another provider",
			common.LogProviderToken, provider.Provider, common.LogSystemToken, provider.System)
		return nil
	}

	rec := &legacyRecord{}
	if err := yaml.Unmarshal(provider.Config, rec); err != nil {
		return errors.Wrap(err, "weather record unmarshal failed")
	}

	for k, v := range rec.Locations {
		key := utils.Slugify(k)
		if _, ok := s.legacy[key]; ok {
			s.logger.Warn("Duplicated legacy location", common.LogLocationToken, key,
				common.LogSystemToken, provider.System)
			continue
		}

		if nil == v {
			v = make(map[string]interface{})
		}

		s.legacy[key] = v
	}

	return nil
}

// Reports ignored duplicated record.
func (s *settingsProvider) warnDuplicate(provider *rawProvider) {
	s.logger.Warn("Duplicated record, ignoring", common.LogProviderToken, provider.Provider,
		common.LogSystemToken, provider.System)
}
