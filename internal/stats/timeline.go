package stats

import (
	"strconv"

	"github.com/willowsc/willow/internal/event"
)

// TapeEntry is one slot on the recent-deliveries tape.
type TapeEntry struct {
	Seq    int64  `json:"seq"`
	Label  string `json:"label"`
	Wicket bool   `json:"wicket"`
}

// Tape returns the most recent n deliveries of the innings, newest first,
// with the shorthand labels a scorer reads at a glance: W, 4, 6, Wd, Nb,
// B, Lb, or the run count. Meta-events are skipped; the tape shows balls,
// not bookkeeping.
func Tape(log event.Log, innings, n int) []TapeEntry {
	var out []TapeEntry
	for _, b := range log {
		if len(out) == n {
			break
		}
		if b.Innings != innings || b.Kind.IsMeta() {
			continue
		}
		out = append(out, TapeEntry{
			Seq:    b.Seq,
			Label:  tapeLabel(b),
			Wicket: b.IsWicket,
		})
	}
	return out
}

func tapeLabel(b event.Ball) string {
	if b.IsWicket {
		return "W"
	}
	switch b.Extra {
	case event.ExtraWide:
		return "Wd"
	case event.ExtraNoBall:
		return "Nb"
	case event.ExtraBye:
		return "B"
	case event.ExtraLegBye:
		return "Lb"
	}
	switch b.BatRuns {
	case 4:
		return "4"
	case 6:
		return "6"
	}
	return strconv.Itoa(b.Runs)
}
