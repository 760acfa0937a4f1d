package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/systems/flow"
)

// Starts a new user config flow.
func (s *GismeteoServer) flowInit(writer http.ResponseWriter, request *http.Request) {
	input, err := readInput(request)
	if err != nil {
		respondError(writer, err)
		return
	}

	result, err := s.flows.Init(request.Context(), entries.SourceUser, input)
	s.respondFlow(writer, request, result, err)
}

// Returns IDs of the active config flows.
func (s *GismeteoServer) flowsInProgress(writer http.ResponseWriter, _ *http.Request) {
	respond(writer, s.flows.InProgress())
}

// Submits user input to the config flow.
func (s *GismeteoServer) flowConfigure(writer http.ResponseWriter, request *http.Request) {
	input, err := readInput(request)
	if err != nil {
		respondError(writer, err)
		return
	}

	result, err := s.flows.Configure(request.Context(), mux.Vars(request)[string(urlFlowID)], input)
	s.respondFlow(writer, request, result, err)
}

// Aborts the config flow.
func (s *GismeteoServer) flowAbort(writer http.ResponseWriter, request *http.Request) {
	respondOkError(writer, s.flows.Abort(mux.Vars(request)[string(urlFlowID)]))
}

// Starts a new options flow for the entry.
func (s *GismeteoServer) optionsInit(writer http.ResponseWriter, request *http.Request) {
	result, err := s.options.Init(request.Context(), mux.Vars(request)[string(urlEntryID)])
	if err != nil {
		respondError(writer, err)
		return
	}

	respond(writer, result)
}

// Submits options.
func (s *GismeteoServer) optionsConfigure(writer http.ResponseWriter, request *http.Request) {
	input, err := readInput(request)
	if err != nil {
		respondError(writer, err)
		return
	}

	result, err := s.options.Configure(request.Context(), mux.Vars(request)[string(urlFlowID)], input)
	if err != nil {
		respondError(writer, err)
		return
	}

	respond(writer, result)
}

// Aborts the options flow.
func (s *GismeteoServer) optionsAbort(writer http.ResponseWriter, request *http.Request) {
	respondOkError(writer, s.options.Abort(mux.Vars(request)[string(urlFlowID)]))
}

// Responds with flow result, created entries are set up right away.
func (s *GismeteoServer) respondFlow(writer http.ResponseWriter, request *http.Request, result *flow.Result, err error) {
	if err != nil {
		respondError(writer, err)
		return
	}

	if flow.ResultCreateEntry == result.Type && nil != result.Result {
		s.Logger.Info("Config entry created", common.LogEntryToken, result.Result.EntryID,
			common.LogUserNameToken, getContextUser(request), common.LogSystemToken, logSystem)

		ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
		err = s.integration.SetupEntry(ctx, result.Result)
		cancel()
		if err != nil {
			s.Logger.Error("Failed to set up created entry", err, common.LogEntryToken, result.Result.EntryID,
				common.LogSystemToken, logSystem)
		}
	}

	respond(writer, result)
}
