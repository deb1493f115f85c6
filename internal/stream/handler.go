package stream

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/FarmCalc_Go/internal/logger"
)

// ProfileFunc extracts the caller's profile from a request
type ProfileFunc func(r *http.Request) string

var upgrader = websocket.Upgrader{
	ReadBufferSize:  ReadBufferSize,
	WriteBufferSize: WriteBufferSize,
}

// Handler upgrades the request to a websocket that receives the caller's ranking,
// first immediately and then after every change of its preferences.
func Handler(hub *Hub, source RankingSource, profileOf ProfileFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		profile := profileOf(r)

		// register before the first ranking so no change between the two is lost
		client := hub.Register(profile)

		// fail before upgrading so the caller gets a normal HTTP error
		ranked, err := source.Ranking(r.Context(), profile)
		if err != nil {
			hub.Unregister(client.ID)
			log.Warn(LogMsgRankingFailed, "profile", profile, "error", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.Unregister(client.ID)
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}

		log.Info(LogMsgClientConnected, "client_id", client.ID, "profile", profile)

		done := make(chan struct{})
		go readPump(conn, done)

		writePump(conn, client, done, []Message{
			NewMessage(profile, MessageTypeConnected, map[string]string{"client_id": client.ID}),
			NewMessage(profile, MessageTypeRanking, ranked),
		})

		hub.Unregister(client.ID)
		log.Info(LogMsgClientDisconnected, "client_id", client.ID, "profile", profile)
	}
}

// readPump only handles control frames and notices when the peer goes away
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(MaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(PongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writePump(conn *websocket.Conn, client *Client, done <-chan struct{}, initial []Message) {
	ticker := time.NewTicker(PingInterval)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	write := func(msg Message) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
		if err := conn.WriteJSON(msg); err != nil {
			slog.Debug(LogMsgWriteError, "client_id", client.ID, "error", err)
			return false
		}
		return true
	}

	for _, msg := range initial {
		if !write(msg) {
			return
		}
	}

	for {
		select {
		case <-done:
			return

		case msg, ok := <-client.Messages():
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if !write(msg) {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
