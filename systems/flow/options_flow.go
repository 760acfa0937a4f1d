package flow

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/pkg/errors"
)

// ConstructOptionsManager has data required for a new options flow manager.
type ConstructOptionsManager struct {
	Logger common.ILoggerProvider
	Store  *entries.Store
}

// OptionsManager keeps options flows in progress.
type OptionsManager struct {
	sync.Mutex
	ctor  *ConstructOptionsManager
	flows map[string]string
}

// NewOptionsManager creates a new options flows manager.
func NewOptionsManager(ctor *ConstructOptionsManager) *OptionsManager {
	return &OptionsManager{
		ctor:  ctor,
		flows: make(map[string]string),
	}
}

// Init starts options flow of the entry.
// Imported entries have nothing to configure.
func (m *OptionsManager) Init(ctx context.Context, entryID string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, err := m.ctor.Store.Get(entryID)
	if err != nil {
		return nil, err
	}

	flowID := uuid.New().String()
	if entries.SourceImport == entry.Source {
		m.ctor.Logger.Debug("Options are not available for imported entries", common.LogEntryToken, entryID)
		return abort(flowID, entryID, ReasonNoOptions), nil
	}

	m.Lock()
	m.flows[flowID] = entryID
	m.Unlock()

	return m.showForm(flowID, entry, nil), nil
}

// Configure submits new options.
func (m *OptionsManager) Configure(ctx context.Context, flowID string, input map[string]interface{}) (*Result, error) {
	m.Lock()
	entryID, ok := m.flows[flowID]
	m.Unlock()
	if !ok {
		return nil, &ErrUnknownFlow{ID: flowID}
	}

	entry, err := m.ctor.Store.Get(entryID)
	if err != nil {
		m.Abort(flowID) // nolint: errcheck
		return nil, err
	}

	if nil == input {
		return m.showForm(flowID, entry, nil), nil
	}

	if !validOptions(input) {
		return m.showForm(flowID, entry, map[string]string{ErrorKeyBase: ErrorInvalidInput}), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	updated, err := m.ctor.Store.UpdateOptions(entryID, input)
	if err != nil {
		m.ctor.Logger.Error("Failed to update entry options", err, common.LogFlowToken, flowID)
		return nil, errors.Wrap(err, "update failed")
	}

	m.Abort(flowID) // nolint: errcheck
	return &Result{
		Type:    ResultCreateEntry,
		FlowID:  flowID,
		Handler: entryID,
		Title:   updated.Title,
		Data:    copyInput(input),
		Result:  updated,
	}, nil
}

// Abort removes options flow.
func (m *OptionsManager) Abort(flowID string) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.flows[flowID]; !ok {
		return &ErrUnknownFlow{ID: flowID}
	}

	delete(m.flows, flowID)
	return nil
}

// Renders options form.
func (m *OptionsManager) showForm(flowID string, entry *entries.ConfigEntry, errs map[string]string) *Result {
	schema := make([]*SchemaField, 0, len(enums.Platforms))
	for _, v := range enums.Platforms {
		schema = append(schema, &SchemaField{
			Name:    v.OptionKey(),
			Type:    "boolean",
			Default: entry.PlatformEnabled(v),
		})
	}

	return &Result{
		Type:       ResultForm,
		FlowID:     flowID,
		Handler:    entry.EntryID,
		StepID:     StepUser,
		Errors:     errs,
		DataSchema: schema,
	}
}

// Checks that only platform toggles are submitted.
func validOptions(input map[string]interface{}) bool {
	for k, v := range input {
		if _, ok := v.(bool); !ok {
			return false
		}

		known := false
		for _, p := range enums.Platforms {
			if p.OptionKey() == k {
				known = true
				break
			}
		}

		if !known {
			return false
		}
	}

	return true
}
