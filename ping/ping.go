// Package ping queries the status of a Minecraft: Bedrock Edition server, or any other RakNet
// server answering offline pings, with a single unconnected ping over UDP.
//
// Every call binds its own socket and shares no state with other calls, so independent queries
// may run concurrently.
package ping

import (
	"strconv"
	"time"

	"github.com/gamevidea/bedrockping/internal/protocol"
	"github.com/rs/zerolog"
)

// DefaultPort is the port queried when none is given.
const DefaultPort = protocol.DEFAULT_PORT

// DefaultTimeout bounds both sending the ping and waiting for the pong when no timeout is given.
const DefaultTimeout = protocol.DEFAULT_TIMEOUT

// DefaultBufferSize is the number of bytes of a pong that are read. Bytes past it are dropped.
const DefaultBufferSize = protocol.MAX_MTU_SIZE

// Server describes the server that answered the ping.
type Server struct {
	Host       string    `json:"host"`
	Port       int       `json:"port"`
	RemoteHost string    `json:"remote_host"`
	GUID       int64     `json:"guid"`
	UniqueID   string    `json:"unique_id"`
	Edition    string    `json:"edition"`
	MOTD       [2]string `json:"motd"`
	GameMode   string    `json:"game_mode"`
}

// Version is the protocol and game version the server reports.
type Version struct {
	Protocol int    `json:"protocol"`
	Name     string `json:"name"`
}

// Players holds the player counts. A count the server did not report is UnknownPlayers.
type Players struct {
	Online int `json:"online"`
	Max    int `json:"max"`
}

// Status is the decoded answer to an unconnected ping.
type Status struct {
	Server  Server        `json:"server"`
	Version Version       `json:"version"`
	Players Players       `json:"players"`
	Latency time.Duration `json:"latency"`
}

// Options tunes a query. The zero value queries DefaultPort with DefaultTimeout.
type Options struct {
	// Port of the server. Values <= 0 select DefaultPort.
	Port int

	// ReadTimeout bounds the wait for the pong. Values <= 0 select DefaultTimeout.
	ReadTimeout time.Duration

	// WriteTimeout bounds sending the ping. Values <= 0 select DefaultTimeout.
	WriteTimeout time.Duration

	// BufferSize is the receive buffer size, raised to at least 1024. Values <= 0 select DefaultBufferSize.
	BufferSize int

	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Port <= 0 {
		o.Port = DefaultPort
	}

	if o.ReadTimeout <= 0 {
		o.ReadTimeout = DefaultTimeout
	}

	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultTimeout
	}

	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	} else if o.BufferSize < protocol.MIN_BUFFER_SIZE {
		o.BufferSize = protocol.MIN_BUFFER_SIZE
	}

	return o
}

// Query pings host on port and waits up to timeout in each direction. A port or timeout <= 0
// selects DefaultPort or DefaultTimeout.
func Query(host string, port int, timeout time.Duration) (*Status, error) {
	return QueryOptions(host, Options{
		Port:         port,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
}

// QueryOptions pings host and decodes the pong into a Status.
//
// Numeric fields the server sends malformed are replaced by DefaultProtocol or UnknownPlayers
// rather than failing the query. The guid embedded in the pong data is reported as
// Server.UniqueID and is not required to match Server.GUID.
func QueryOptions(host string, opts Options) (*Status, error) {
	opts = opts.withDefaults()

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("host", host).Int("port", opts.Port).Logger()
	}

	start := time.Now()

	request, err := newPing(start)
	if err != nil {
		return nil, err
	}

	reply, src, err := exchange(host, opts.Port, request, opts, logger)
	if err != nil {
		return nil, err
	}

	latency := time.Since(start)

	guid, data, err := decode(reply, logger)
	if err != nil {
		return nil, err
	}

	fields := splitPongData(data)
	if id := fields.str(fieldServerUniqueID); id != "" && id != strconv.FormatInt(guid, 10) {
		logger.Debug().Int64("guid", guid).Str("unique_id", id).Msg("Pong data reports a different server id")
	}

	status := fields.toStatus(host, opts.Port, src.String(), guid)
	status.Latency = latency

	return status, nil
}
