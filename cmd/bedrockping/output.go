package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gamevidea/bedrockping/ping"
)

// printStatus writes status to w, either indented JSON or a short human readable summary.
func printStatus(w io.Writer, status *ping.Status, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	_, err := fmt.Fprintf(w, `server:   %s:%d (%s)
guid:     %d
edition:  %s
motd:     %s
          %s
mode:     %s
version:  %s (protocol %d)
players:  %s/%s
latency:  %s
`,
		status.Server.Host, status.Server.Port, status.Server.RemoteHost,
		status.Server.GUID,
		status.Server.Edition,
		status.Server.MOTD[0],
		status.Server.MOTD[1],
		status.Server.GameMode,
		status.Version.Name, status.Version.Protocol,
		count(status.Players.Online), count(status.Players.Max),
		status.Latency.Round(time.Millisecond),
	)
	return err
}

func count(n int) string {
	if n == ping.UnknownPlayers {
		return "?"
	}

	return fmt.Sprint(n)
}
