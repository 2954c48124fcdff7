package ping

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gamevidea/binary/buffer"
	"github.com/gamevidea/bedrockping/internal/message"
	"github.com/gamevidea/bedrockping/internal/protocol"
)

// newPing encodes an unconnected ping stamped with now and a fresh random client guid.
func newPing(now time.Time) ([]byte, error) {
	if now.Before(time.Unix(0, 0)) {
		return nil, fmt.Errorf("%w: %s is before the unix epoch", ErrClock, now)
	}

	ms := now.UnixMilli()
	if !time.UnixMilli(ms).Equal(now.Truncate(time.Millisecond)) {
		return nil, fmt.Errorf("%w: %s overflows int64 milliseconds", ErrClock, now)
	}

	pk := message.UnconnectedPing{
		SendTimestamp: ms,
		ClientGUID:    int64(rand.Uint64()),
	}

	buf := buffer.New(protocol.UNCONNECTED_PING_SIZE)
	if err := pk.Write(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
