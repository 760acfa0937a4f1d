package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iredun/ha-gismeteo/plugins/common"
)

// Returns all config entries.
func (s *GismeteoServer) getEntries(writer http.ResponseWriter, _ *http.Request) {
	respond(writer, s.store.List())
}

// Unloads and removes the config entry.
func (s *GismeteoServer) deleteEntry(writer http.ResponseWriter, request *http.Request) {
	id := mux.Vars(request)[string(urlEntryID)]
	err := s.integration.RemoveEntry(id)
	if nil == err {
		s.Logger.Info("Config entry removed", common.LogEntryToken, id,
			common.LogUserNameToken, getContextUser(request), common.LogSystemToken, logSystem)
	}

	respondOkError(writer, err)
}
