// Package flow contains setup and options flows of the integration.
package flow

import (
	"github.com/iredun/ha-gismeteo/systems/entries"
)

// ResultType describes flow step result.
type ResultType string

const (
	// ResultForm means user input is required.
	ResultForm ResultType = "form"
	// ResultCreateEntry means flow has finished successfully.
	ResultCreateEntry ResultType = "create_entry"
	// ResultAbort means flow has been aborted.
	ResultAbort ResultType = "abort"
)

// Flow steps.
const (
	StepUser   = "user"
	StepImport = "import"
)

// Errors and abort reasons.
const (
	ErrorKeyBase            = "base"
	ErrorCannotConnect      = "cannot_connect"
	ErrorInvalidInput       = "invalid_input"
	ReasonAlreadyConfigured = "already_configured"
	ReasonNoOptions         = "no_options_available"
)

// SchemaField describes a single form field.
type SchemaField struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Required bool        `json:"required"`
	Default  interface{} `json:"default,omitempty"`
}

// Result is a flow step result.
type Result struct {
	Type       ResultType             `json:"type"`
	FlowID     string                 `json:"flow_id,omitempty"`
	Handler    string                 `json:"handler"`
	StepID     string                 `json:"step_id,omitempty"`
	Errors     map[string]string      `json:"errors,omitempty"`
	DataSchema []*SchemaField         `json:"data_schema,omitempty"`
	Title      string                 `json:"title,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Reason     string                 `json:"reason,omitempty"`
	Result     *entries.ConfigEntry   `json:"result,omitempty"`
}

func abort(flowID string, handler string, reason string) *Result {
	return &Result{
		Type:    ResultAbort,
		FlowID:  flowID,
		Handler: handler,
		Reason:  reason,
	}
}

func copyInput(input map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(input))
	for k, v := range input {
		result[k] = v
	}

	return result
}
