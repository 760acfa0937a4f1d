package server

import "net/http"

// Performs quick check whether system is OK.
func (s *GismeteoServer) ping(writer http.ResponseWriter, _ *http.Request) {
	respondOk(writer)
}
