// Package entries contains config entries storage.
package entries

import (
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
)

// Source describes how the entry was created.
type Source string

const (
	// SourceUser means entry was created by a user flow.
	SourceUser Source = "user"
	// SourceImport means entry was imported from the legacy YAML configuration.
	SourceImport Source = "import"
)

// ConfigEntry is a persisted integration configuration.
type ConfigEntry struct {
	EntryID  string                 `yaml:"entry_id" json:"entry_id"`
	Domain   string                 `yaml:"domain" json:"domain"`
	Title    string                 `yaml:"title" json:"title"`
	Source   Source                 `yaml:"source" json:"source"`
	UniqueID string                 `yaml:"unique_id,omitempty" json:"unique_id,omitempty"`
	Data     map[string]interface{} `yaml:"data" json:"data"`
	Options  map[string]interface{} `yaml:"options" json:"options"`
}

// NewEntry creates a new entry without ID.
func NewEntry(title string, source Source, uniqueID string, data map[string]interface{}) *ConfigEntry {
	return &ConfigEntry{
		Domain:   common.Domain,
		Title:    title,
		Source:   source,
		UniqueID: uniqueID,
		Data:     copyMap(data),
		Options:  make(map[string]interface{}),
	}
}

// Merged returns entry data overridden by entry options.
func (e *ConfigEntry) Merged() map[string]interface{} {
	result := copyMap(e.Data)
	for k, v := range e.Options {
		result[k] = v
	}

	return result
}

// PlatformEnabled checks whether platform is enabled in options.
// Platforms are enabled unless explicitly disabled.
func (e *ConfigEntry) PlatformEnabled(platform enums.Platform) bool {
	v, ok := e.Options[platform.OptionKey()]
	if !ok {
		return true
	}

	b, ok := v.(bool)
	return !ok || b
}

// Copy returns a deep enough copy of the entry.
func (e *ConfigEntry) Copy() *ConfigEntry {
	c := *e
	c.Data = copyMap(e.Data)
	c.Options = copyMap(e.Options)
	return &c
}

func copyMap(src map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(src))
	for k, v := range src {
		result[k] = v
	}

	return result
}
