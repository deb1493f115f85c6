package stream

import "time"

// Buffer sizes
const (
	// DeliverBufferSize is the buffer size of the hub delivery channel
	DeliverBufferSize = 100

	// ClientMessageBuffer is the buffer size of each client's outbound queue
	ClientMessageBuffer = 16

	// ReadBufferSize and WriteBufferSize size the websocket I/O buffers
	ReadBufferSize  = 1024
	WriteBufferSize = 4096
)

// Connection settings
const (
	// WriteWait is the time allowed to write one message
	WriteWait = 10 * time.Second

	// PongWait is the time allowed to read the next pong
	PongWait = 60 * time.Second

	// PingInterval must be shorter than PongWait
	PingInterval = (PongWait * 9) / 10

	// MaxMessageSize caps inbound frames; clients only send control frames
	MaxMessageSize = 512
)

// Message types
const (
	MessageTypeConnected = "connected"
	MessageTypeRanking   = "ranking"
)

// Log messages
const (
	LogMsgClientConnected    = "Ranking stream client connected"
	LogMsgClientDisconnected = "Ranking stream client disconnected"
	LogMsgUpgradeFailed      = "Websocket upgrade failed"
	LogMsgWriteError         = "Failed to write stream message"
	LogMsgRankingFailed      = "Failed to compute ranking for stream"
	LogMsgMessageDropped     = "Stream client queue full, message dropped"
	LogMsgDeliverDropped     = "Stream delivery buffer full, message dropped"
	LogMsgSubscriberReady    = "Ranking stream subscribed to preference updates"
)
