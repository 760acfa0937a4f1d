// Package server contains REST and WebSocket API of the integration.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/systems/flow"
	"github.com/iredun/ha-gismeteo/systems/integration"
	"github.com/iredun/ha-gismeteo/systems/state"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "server"
	// Timeout for config entry setup started by API.
	setupTimeout = 60 * time.Second
)

// ConstructServer has data required for a new API server.
type ConstructServer struct {
	Settings    providers.ISettingsProvider
	Store       *entries.Store
	State       *state.Registry
	Integration *integration.Integration
	Flows       *flow.Manager
	Options     *flow.OptionsManager
}

// GismeteoServer serves integration API.
type GismeteoServer struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	store       *entries.Store
	state       *state.Registry
	integration *integration.Integration
	flows       *flow.Manager
	options     *flow.OptionsManager

	wsSettings websocket.Upgrader
	httpServer *http.Server
}

// NewServer constructs a new API server.
func NewServer(ctor *ConstructServer) (*GismeteoServer, error) {
	if nil == ctor.Store || nil == ctor.State || nil == ctor.Integration || nil == ctor.Flows || nil == ctor.Options {
		return nil, errors.New("server dependencies are not set")
	}

	s := &GismeteoServer{
		Settings: ctor.Settings,
		Logger:   ctor.Settings.SystemLogger(),

		store:       ctor.Store,
		state:       ctor.State,
		integration: ctor.Integration,
		flows:       ctor.Flows,
		options:     ctor.Options,
	}

	s.wsSettings = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Settings.ServerSettings().Port),
		Handler: s.Handler(),
	}

	return s, nil
}

// Start launches the API server.
func (s *GismeteoServer) Start() {
	go func() {
		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal("Failed to start server", err, common.LogSystemToken, logSystem)
		}
	}()

	s.Logger.Info(fmt.Sprintf("Started server on port %d", s.Settings.ServerSettings().Port),
		common.LogSystemToken, logSystem)
}

// Stop gracefully shuts the API server down.
func (s *GismeteoServer) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns API handler with all middlewares applied.
func (s *GismeteoServer) Handler() http.Handler {
	router := mux.NewRouter()
	s.registerAPI(router)

	origins := s.Settings.ServerSettings().AllowOrigins
	if 0 == len(origins) {
		return handlers.RecoveryHandler()(router)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.AllowCredentials(),
	)

	return handlers.RecoveryHandler()(cors(router))
}

// All API registration.
func (s *GismeteoServer) registerAPI(router *mux.Router) {
	publicRouter := router.PathPrefix("/pub").Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	apiRouter := router.PathPrefix(routeAPI).Subrouter()
	apiRouter.HandleFunc("/entity", s.getEntities).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/entity/{%s}", urlEntityID), s.getEntity).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/entity/{%s}/forecast/{%s}", urlEntityID, urlForecastMode),
		s.getForecast).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/entity/{%s}/enable", urlEntityID), s.enableEntity).Methods(http.MethodPost)
	apiRouter.HandleFunc("/disabled", s.getDisabled).Methods(http.MethodGet)

	apiRouter.HandleFunc("/flow", s.flowInit).Methods(http.MethodPost)
	apiRouter.HandleFunc("/flow", s.flowsInProgress).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/flow/{%s}", urlFlowID), s.flowConfigure).Methods(http.MethodPost)
	apiRouter.HandleFunc(fmt.Sprintf("/flow/{%s}", urlFlowID), s.flowAbort).Methods(http.MethodDelete)

	apiRouter.HandleFunc("/entry", s.getEntries).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/entry/{%s}", urlEntryID), s.deleteEntry).Methods(http.MethodDelete)
	apiRouter.HandleFunc(fmt.Sprintf("/entry/{%s}/options", urlEntryID), s.optionsInit).Methods(http.MethodPost)
	apiRouter.HandleFunc(fmt.Sprintf("/options/{%s}", urlFlowID), s.optionsConfigure).Methods(http.MethodPost)
	apiRouter.HandleFunc(fmt.Sprintf("/options/{%s}", urlFlowID), s.optionsAbort).Methods(http.MethodDelete)

	apiRouter.HandleFunc("/ws", s.handleWS)
	apiRouter.Use(s.authMiddleware)
	apiRouter.Use(s.logMiddleware)
}

// Validates WS origin against configured CORS origins.
func (s *GismeteoServer) checkOrigin(request *http.Request) bool {
	origin := request.Header.Get("Origin")
	if "" == origin {
		return true
	}

	allowed := s.Settings.ServerSettings().AllowOrigins
	if 0 == len(allowed) {
		return origin == "http://"+request.Host || origin == "https://"+request.Host
	}

	for _, v := range allowed {
		if v == "*" || v == origin {
			return true
		}
	}

	return false
}
