package ping

import (
	"strconv"
	"strings"

	"github.com/gamevidea/bedrockping/internal/protocol"
)

// Positions of the fields in the MCPE pong data.
const (
	fieldEdition = iota
	fieldMOTD
	fieldProtocol
	fieldVersionName
	fieldPlayersOnline
	fieldPlayersMax
	fieldServerUniqueID
	fieldLevelName
	fieldGameMode
)

const (
	// DefaultProtocol is reported when the protocol field is missing or not a number.
	DefaultProtocol = 1

	// UnknownPlayers is reported when a player count field is missing or not a number.
	UnknownPlayers = -1
)

// pongFields holds the leading semicolon separated fields of the pong data. Indexing past the
// fields that were received yields an empty string.
type pongFields []string

func splitPongData(data string) pongFields {
	parts := strings.Split(data, ";")
	if len(parts) > protocol.PONG_DATA_FIELDS {
		parts = parts[:protocol.PONG_DATA_FIELDS]
	}

	return pongFields(parts)
}

func (f pongFields) str(index int) string {
	if index < len(f) {
		return f[index]
	}

	return ""
}

func (f pongFields) integer(index int, fallback int) int {
	n, err := strconv.ParseInt(f.str(index), 10, 32)
	if err != nil {
		return fallback
	}

	return int(n)
}

// toStatus maps the pong fields onto a Status.
func (f pongFields) toStatus(host string, port int, remoteHost string, guid int64) *Status {
	return &Status{
		Server: Server{
			Host:       host,
			Port:       port,
			RemoteHost: remoteHost,
			GUID:       guid,
			UniqueID:   f.str(fieldServerUniqueID),
			Edition:    f.str(fieldEdition),
			MOTD:       [2]string{f.str(fieldMOTD), f.str(fieldLevelName)},
			GameMode:   f.str(fieldGameMode),
		},
		Version: Version{
			Protocol: f.integer(fieldProtocol, DefaultProtocol),
			Name:     f.str(fieldVersionName),
		},
		Players: Players{
			Online: f.integer(fieldPlayersOnline, UnknownPlayers),
			Max:    f.integer(fieldPlayersMax, UnknownPlayers),
		},
	}
}
