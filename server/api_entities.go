package server

import (
	"net/http"

	"github.com/gobwas/glob"
	"github.com/gorilla/mux"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/iredun/ha-gismeteo/systems/state"
)

// Returns states of all entities, optionally filtered by entity ID glob.
func (s *GismeteoServer) getEntities(writer http.ResponseWriter, request *http.Request) {
	all := s.state.States()

	filter := request.URL.Query().Get(queryFilter)
	if "" == filter {
		respond(writer, all)
		return
	}

	exp, err := glob.Compile(filter)
	if err != nil {
		respondError(writer, &ErrBadRequest{})
		return
	}

	result := make([]*state.EntityState, 0)
	for _, v := range all {
		if exp.Match(v.EntityID) {
			result = append(result, v)
		}
	}

	respond(writer, result)
}

// Returns state of a single entity.
func (s *GismeteoServer) getEntity(writer http.ResponseWriter, request *http.Request) {
	id := mux.Vars(request)[string(urlEntityID)]
	st, ok := s.state.State(id)
	if !ok {
		respondError(writer, &ErrUnknownEntity{ID: id})
		return
	}

	respond(writer, st)
}

// Returns IDs of entities disabled by default.
func (s *GismeteoServer) getDisabled(writer http.ResponseWriter, request *http.Request) {
	respond(writer, s.state.Disabled())
}

// Enables entity disabled by default.
func (s *GismeteoServer) enableEntity(writer http.ResponseWriter, request *http.Request) {
	id := mux.Vars(request)[string(urlEntityID)]
	if !s.state.Enable(id) {
		respondError(writer, &ErrUnknownEntity{ID: id})
		return
	}

	st, ok := s.state.State(id)
	if !ok {
		respondError(writer, &ErrUnknownEntity{ID: id})
		return
	}

	s.Logger.Info("Entity was enabled", common.LogIDToken, id, common.LogUserNameToken, getContextUser(request),
		common.LogSystemToken, logSystem)
	respond(writer, st)
}

// Returns entity forecast.
func (s *GismeteoServer) getForecast(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	id := vars[string(urlEntityID)]

	mode, err := enums.ForecastModeString(vars[string(urlForecastMode)])
	if err != nil {
		respondError(writer, err)
		return
	}

	entity, ok := s.state.Get(id)
	if !ok {
		respondError(writer, &ErrUnknownEntity{ID: id})
		return
	}

	fe, ok := entity.(weather.IForecastEntity)
	if !ok {
		respondError(writer, &ErrNoForecast{ID: id})
		return
	}

	var data []weather.Forecast
	switch mode {
	case enums.ForecastDaily:
		data = fe.ForecastDaily()
	case enums.ForecastHourly:
		data = fe.ForecastHourly()
	}

	if nil == data {
		data = make([]weather.Forecast, 0)
	}

	respond(writer, data)
}
