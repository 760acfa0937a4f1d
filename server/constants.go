package server

// muxKeys describes enum with known API tokens.
type muxKeys string

const (
	// urlEntityID describes entity ID URL param.
	urlEntityID muxKeys = "entityID"
	// urlForecastMode describes forecast mode URL param.
	urlForecastMode muxKeys = "mode"
	// urlFlowID describes flow ID URL param.
	urlFlowID muxKeys = "flowID"
	// urlEntryID describes config entry ID URL param.
	urlEntryID muxKeys = "entryID"
	// ctxtUserName describes user in the context.
	ctxtUserName muxKeys = "user"
	// routeAPI describes base api prefix.
	routeAPI = "/api/v1"
	// queryFilter describes entities filter query param.
	queryFilter = "filter"
)
