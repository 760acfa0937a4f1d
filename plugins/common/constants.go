package common

const (
	// Domain describes integration domain.
	Domain = "gismeteo"
	// DomainYAML describes legacy configuration namespace.
	DomainYAML = Domain + "_yaml"
	// Attribution describes data source attribution.
	Attribution = "Data provided by Gismeteo"
	// Version describes integration version.
	Version = "3.0.1"
)

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogProviderToken describes provider log entry.
	LogProviderToken = "provider"
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogNameToken describes name log entry.
	LogNameToken = "name"
	// LogIDToken describes ID log entry.
	LogIDToken = "id"
	// LogEntryToken describes config entry log entry.
	LogEntryToken = "entry_id"
	// LogFlowToken describes flow log entry.
	LogFlowToken = "flow_id"
	// LogStepToken describes flow step log entry.
	LogStepToken = "step"
	// LogSourceToken describes config entry source log entry.
	LogSourceToken = "source"
	// LogPlatformToken describes platform log entry.
	LogPlatformToken = "platform"
	// LogLocationToken describes location log entry.
	LogLocationToken = "location"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
	// LogFieldToken describes validation field log entry.
	LogFieldToken = "field"
	// LogFileToken describes file log entry.
	LogFileToken = "file"
	// LogUserNameToken describes user name log entry.
	LogUserNameToken = "user"
	// LogSecretToken describes secret name log entry.
	LogSecretToken = "secret"
)
