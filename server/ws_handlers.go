package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/providers"
)

// WS message with removed entity.
type wsRemoved struct {
	EntityID string `json:"entity_id"`
	Removed  bool   `json:"removed"`
}

// Handles WS upgrade request.
func (s *GismeteoServer) handleWS(writer http.ResponseWriter, request *http.Request) {
	usr := getContextUser(request)
	c, err := s.wsSettings.Upgrade(writer, request, nil)
	if err != nil {
		s.Logger.Error("Failed to establish a WS connection", err, common.LogUserNameToken, usr,
			common.LogSystemToken, logSystem)
		return
	}

	go s.processWSConnection(c, usr)
}

// Streams entity updates into the WS connection.
// Only this goroutine writes into the connection.
func (s *GismeteoServer) processWSConnection(conn *websocket.Conn, usr string) {
	defer conn.Close() // nolint: errcheck

	stop := make(chan bool, 1)
	pings := make(chan int, 10)
	go s.processIncomingWSMessages(conn, stop, pings, usr)

	subID, updates := s.Settings.FanOut().SubscribeEntityUpdates()
	defer s.Settings.FanOut().UnSubscribeEntityUpdates(subID)

	for {
		var err error
		select {
		case <-stop:
			return
		case mt := <-pings:
			err = conn.WriteMessage(mt, []byte("pong"))
		case msg, ok := <-updates:
			if !ok {
				return
			}

			err = s.writeUpdate(conn, msg)
		}

		if err != nil {
			s.Logger.Debug("Failed to write into WS connection", common.LogUserNameToken, usr,
				common.LogSystemToken, logSystem)
			return
		}
	}
}

// Writes single entity update.
func (s *GismeteoServer) writeUpdate(conn *websocket.Conn, msg *providers.MsgEntityUpdate) error {
	if msg.Removed {
		return conn.WriteJSON(&wsRemoved{EntityID: msg.ID, Removed: true})
	}

	st, ok := s.state.State(msg.ID)
	if !ok {
		return nil
	}

	return conn.WriteJSON(st)
}

// Processes incoming WS messages, only pings are supported.
func (s *GismeteoServer) processIncomingWSMessages(conn *websocket.Conn, stop chan bool, pings chan int, usr string) {
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			s.Logger.Info("Closing WS connection for user", common.LogUserNameToken, usr,
				common.LogSystemToken, logSystem)
			stop <- true
			return
		}

		if "ping" == string(message) {
			select {
			case pings <- mt:
			default:
			}
		}
	}
}
