package ping

import (
	"fmt"
	"unicode/utf8"

	"github.com/gamevidea/binary/buffer"
	"github.com/gamevidea/bedrockping/internal/message"
	"github.com/gamevidea/bedrockping/internal/protocol"
	"github.com/rs/zerolog"
)

// decode extracts the server guid and the pong data from a raw unconnected pong. A pong that stops
// inside the fixed header yields empty data.
func decode(raw []byte, logger zerolog.Logger) (int64, string, error) {
	if len(raw) < protocol.UNCONNECTED_PONG_MIN_SIZE {
		return 0, "", fmt.Errorf("%w: got %d bytes, need at least %d", ErrTooShort, len(raw), protocol.UNCONNECTED_PONG_MIN_SIZE)
	}

	buf := buffer.From(raw)

	id, err := buf.ReadUint8()
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrTooShort, err)
	}

	if id != message.IDUnconnectedPong {
		logger.Debug().Uint8("id", id).Msg("Reply is not an unconnected pong, decoding anyway")
	}

	pk := message.UnconnectedPong{}
	if err = pk.Read(buf); err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrTooShort, err)
	}

	if !utf8.Valid(pk.Data) {
		return 0, "", ErrEncoding
	}

	return pk.ServerGUID, string(pk.Data), nil
}
