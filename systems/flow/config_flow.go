package flow

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/pkg/errors"
)

// Title of the imported entry.
const importTitle = "configuration.yaml"

// ConstructManager has data required for a new flow manager.
type ConstructManager struct {
	Logger    common.ILoggerProvider
	Validator providers.IValidatorProvider
	Home      *providers.HomeLocation
	Client    weather.IProviderClient
	Store     *entries.Store
}

// Single config flow in progress.
type configFlow struct {
	sync.Mutex
	id     string
	ctx    context.Context
	cancel context.CancelFunc
}

// Manager keeps config flows in progress.
type Manager struct {
	sync.Mutex
	ctor  *ConstructManager
	flows map[string]*configFlow
}

// NewManager creates a new config flows manager.
func NewManager(ctor *ConstructManager) *Manager {
	return &Manager{
		ctor:  ctor,
		flows: make(map[string]*configFlow),
	}
}

// Init starts a new flow.
// User flow shows the initial form, import flow creates the legacy entry right away.
func (m *Manager) Init(ctx context.Context, source entries.Source, input map[string]interface{}) (*Result, error) {
	switch source {
	case entries.SourceUser:
		f := m.newFlow()
		m.ctor.Logger.Debug("Started config flow", common.LogFlowToken, f.id,
			common.LogSourceToken, string(source))
		return m.stepUser(ctx, f, input)
	case entries.SourceImport:
		return m.stepImport(ctx, input)
	default:
		return nil, &ErrUnknownSource{Source: string(source)}
	}
}

// Configure submits user input to the flow.
func (m *Manager) Configure(ctx context.Context, flowID string, input map[string]interface{}) (*Result, error) {
	m.Lock()
	f, ok := m.flows[flowID]
	m.Unlock()
	if !ok {
		return nil, &ErrUnknownFlow{ID: flowID}
	}

	return m.stepUser(ctx, f, input)
}

// Abort removes the flow and cancels any pending validation.
func (m *Manager) Abort(flowID string) error {
	m.Lock()
	f, ok := m.flows[flowID]
	delete(m.flows, flowID)
	m.Unlock()

	if !ok {
		return &ErrUnknownFlow{ID: flowID}
	}

	f.cancel()
	m.ctor.Logger.Debug("Aborted config flow", common.LogFlowToken, flowID)
	return nil
}

// InProgress returns IDs of all active flows.
func (m *Manager) InProgress() []string {
	m.Lock()
	defer m.Unlock()

	result := make([]string, 0, len(m.flows))
	for k := range m.flows {
		result = append(result, k)
	}

	return result
}

// Creates and registers a new flow.
func (m *Manager) newFlow() *configFlow {
	ctx, cancel := context.WithCancel(context.Background())
	f := &configFlow{
		id:     uuid.New().String(),
		ctx:    ctx,
		cancel: cancel,
	}

	m.Lock()
	m.flows[f.id] = f
	m.Unlock()
	return f
}

// Removes finished flow.
func (m *Manager) finish(f *configFlow) {
	m.Lock()
	delete(m.flows, f.id)
	m.Unlock()
	f.cancel()
}

// Handles user step.
func (m *Manager) stepUser(ctx context.Context, f *configFlow, input map[string]interface{}) (*Result, error) {
	f.Lock()
	defer f.Unlock()

	if nil != f.ctx.Err() {
		return nil, &ErrUnknownFlow{ID: f.id}
	}

	if nil == input {
		return m.showForm(f, nil), nil
	}

	cfg, err := entries.DecodeUserLocation(input, m.ctor.Home, m.ctor.Validator)
	if err != nil {
		m.ctor.Logger.Warn("Invalid config flow input", common.LogFlowToken, f.id,
			common.LogErrorToken, err.Error())
		return m.showForm(f, map[string]string{ErrorKeyBase: ErrorInvalidInput}), nil
	}

	if nil != m.ctor.Store.FindByUniqueID(cfg.UniqueID()) {
		m.finish(f)
		return abort(f.id, common.Domain, ReasonAlreadyConfigured), nil
	}

	checkCtx, cancel := mergeContexts(ctx, f.ctx)
	defer cancel()

	err = m.ctor.Client.Check(checkCtx, cfg.Location())
	if ctxErr := checkCtx.Err(); ctxErr != nil {
		m.ctor.Logger.Debug("Config flow validation was cancelled", common.LogFlowToken, f.id)
		return nil, ctxErr
	}

	if err != nil {
		m.ctor.Logger.Warn("Failed to connect to the provider", common.LogFlowToken, f.id,
			common.LogErrorToken, err.Error())
		return m.showForm(f, map[string]string{ErrorKeyBase: ErrorCannotConnect}), nil
	}

	if ctxErr := f.ctx.Err(); ctxErr != nil {
		m.ctor.Logger.Debug("Config flow was aborted after validation", common.LogFlowToken, f.id)
		return nil, ctxErr
	}

	entry, err := m.ctor.Store.Add(entries.NewEntry(cfg.Name, entries.SourceUser, cfg.UniqueID(), input))
	if err != nil {
		if _, ok := errors.Cause(err).(*entries.ErrAlreadyConfigured); ok {
			m.finish(f)
			return abort(f.id, common.Domain, ReasonAlreadyConfigured), nil
		}

		m.ctor.Logger.Error("Failed to save config entry", err, common.LogFlowToken, f.id)
		return nil, errors.Wrap(err, "save failed")
	}

	if ctxErr := f.ctx.Err(); ctxErr != nil {
		if rmErr := m.ctor.Store.Remove(entry.EntryID); rmErr != nil {
			m.ctor.Logger.Error("Failed to drop entry of the aborted flow", rmErr, common.LogFlowToken, f.id)
		}
		return nil, ctxErr
	}

	m.finish(f)
	m.ctor.Logger.Info("Config flow finished", common.LogFlowToken, f.id, common.LogEntryToken, entry.EntryID)
	return &Result{
		Type:    ResultCreateEntry,
		FlowID:  f.id,
		Handler: common.Domain,
		Title:   entry.Title,
		Data:    copyInput(input),
		Result:  entry,
	}, nil
}

// Handles import step.
func (m *Manager) stepImport(ctx context.Context, input map[string]interface{}) (*Result, error) {
	flowID := uuid.New().String()
	if len(m.ctor.Store.FindBySource(entries.SourceImport)) > 0 {
		return abort(flowID, common.Domain, ReasonAlreadyConfigured), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, err := m.ctor.Store.Add(entries.NewEntry(importTitle, entries.SourceImport, "", input))
	if err != nil {
		m.ctor.Logger.Error("Failed to save imported entry", err, common.LogFlowToken, flowID)
		return nil, errors.Wrap(err, "save failed")
	}

	m.ctor.Logger.Info("Imported legacy configuration", common.LogEntryToken, entry.EntryID)
	return &Result{
		Type:    ResultCreateEntry,
		FlowID:  flowID,
		Handler: common.Domain,
		Title:   entry.Title,
		Data:    copyInput(input),
		Result:  entry,
	}, nil
}

// Renders user form.
func (m *Manager) showForm(f *configFlow, errs map[string]string) *Result {
	var lat, lon float64
	if nil != m.ctor.Home {
		lat, lon = m.ctor.Home.Latitude, m.ctor.Home.Longitude
	}

	return &Result{
		Type:    ResultForm,
		FlowID:  f.id,
		Handler: common.Domain,
		StepID:  StepUser,
		Errors:  errs,
		DataSchema: []*SchemaField{
			{Name: entries.ConfName, Type: "string", Required: true, Default: entries.DefaultName},
			{Name: entries.ConfToken, Type: "string", Required: true},
			{Name: entries.ConfLatitude, Type: "float", Default: lat},
			{Name: entries.ConfLongitude, Type: "float", Default: lon},
			{Name: entries.ConfForecastDays, Type: "integer", Default: 3},
		},
	}
}

// Returns context cancelled when any of the parents is done.
func mergeContexts(ctx context.Context, other context.Context) (context.Context, context.CancelFunc) {
	merged, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-other.Done():
			cancel()
		case <-merged.Done():
		}
	}()

	return merged, cancel
}
