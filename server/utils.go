package server

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/systems/flow"
	"github.com/pkg/errors"
)

// API error response.
type errorResponse struct {
	Status  string `json:"status"`
	Problem string `json:"problem"`
}

// Plain HTTP_200 API response.
func respondOk(writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, `{ "status": "OK" }`) // nolint: errcheck
}

// Generic API respond.
func respond(writer http.ResponseWriter, data interface{}) {
	d, err := json.Marshal(data)
	if err != nil {
		respondError(writer, err)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(d) // nolint: errcheck
}

// Validates whether error is not null and responds different status
// depending on it.
func respondOkError(writer http.ResponseWriter, err error) {
	if err != nil {
		respondError(writer, err)
	} else {
		respondOk(writer)
	}
}

// Return HTTP_UNAUTHORIZED status.
func respondUnAuth(writer http.ResponseWriter) {
	writer.Header().Set("WWW-Authenticate", `Basic realm="gismeteo"`)
	http.Error(writer, "Unauthorized", http.StatusUnauthorized)
}

// Error API response, status depends on the error type.
func respondError(writer http.ResponseWriter, err error) {
	d, _ := json.Marshal(&errorResponse{Status: "ERROR", Problem: err.Error()}) // nolint: gosec
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(errorStatus(err))
	writer.Write(d) // nolint: errcheck
}

// Maps known errors into HTTP statuses.
func errorStatus(err error) int {
	switch errors.Cause(err).(type) {
	case *ErrUnknownEntity, *entries.ErrEntryNotFound, *flow.ErrUnknownFlow:
		return http.StatusNotFound
	case *ErrBadRequest, *ErrNoForecast, *enums.ErrUnknownValue:
		return http.StatusBadRequest
	}

	if context.Canceled == errors.Cause(err) {
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// Reads optional JSON object from the request body.
func readInput(request *http.Request) (map[string]interface{}, error) {
	b, err := ioutil.ReadAll(request.Body)
	if err != nil {
		return nil, &ErrBadRequest{}
	}

	if 0 == len(b) {
		return nil, nil
	}

	input := make(map[string]interface{})
	if err := json.Unmarshal(b, &input); err != nil {
		return nil, &ErrBadRequest{}
	}

	return input, nil
}

// Logger middleware for the API.
func (s *GismeteoServer) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Logger.Debug("REST invocation", common.LogURLToken, r.RequestURI, common.LogSystemToken, logSystem)
		next.ServeHTTP(w, r)
	})
}

// Authz middleware.
func (s *GismeteoServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sec := s.Settings.Security()
		if nil == sec || !sec.IsEnabled() {
			next.ServeHTTP(w, r)
			return
		}

		user, err := sec.GetUser(r.Header)
		if err != nil {
			s.Logger.Warn("Unauthorized access attempt", common.LogURLToken, r.RequestURI,
				common.LogErrorToken, err.Error(), common.LogSystemToken, logSystem)
			respondUnAuth(w)
			return
		}

		ctx := context.WithValue(r.Context(), ctxtUserName, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Gets current user out of context.
func getContextUser(request *http.Request) string {
	user, ok := request.Context().Value(ctxtUserName).(string)
	if !ok {
		return "anonymous"
	}

	return user
}
