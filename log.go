package blast

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Logs contains the narrative log of effects, as seen by the player.
type Logs struct {
	Entries  []logEntry // all the log entries
	Index    int        // index of next log entry
	NextTick int        // index of first log entry in a propagation
}

// logEntry describes a log entry.
type logEntry struct {
	Text  string   // text for entry
	Index int      // index of entry in log
	Tick  bool     // whether first entry in a propagation
	Style logStyle // style
	Dups  int      // number of duplicates of current entry
}

func (e logEntry) String() string {
	tick := ""
	if e.Tick {
		tick = "• "
	}
	s := e.Text
	if e.Dups > 0 {
		s += fmt.Sprintf(" (%d×)", e.Dups+1)
	}
	return tick + s
}

// logStyle describes various logging styles.
type logStyle int

const (
	logNormal     logStyle = iota
	logHurtMons            // when monsters are hurt
	logHurtPlayer          // when player is hurt
	logNotable             // when you discover or see something notable
	logSpecial             // important special message
	logStatusEnd           // when a player's status ends
)

func (st logStyle) String() string {
	switch st {
	case logHurtMons:
		return "hurt-monster"
	case logHurtPlayer:
		return "hurt-player"
	case logNotable:
		return "notable"
	case logSpecial:
		return "special"
	case logStatusEnd:
		return "status-end"
	default:
		return "normal"
	}
}

// UpperFirst returns a string with its first letter in upper case.
func UpperFirst(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[utf8.RuneLen(r):]
}

func (e *Engine) Logf(format string, a ...any) {
	e.LogEntry(logEntry{Text: UpperFirst(fmt.Sprintf(format, a...)), Index: e.Logs.Index})
}

func (e *Engine) LogfStyled(format string, style logStyle, a ...any) {
	e.LogEntry(logEntry{Text: UpperFirst(fmt.Sprintf(format, a...)), Index: e.Logs.Index, Style: style})
}

// LogEntry adds a new log entry to the engine logs. Consecutive identical
// entries within a propagation are folded.
func (e *Engine) LogEntry(le logEntry) {
	if le.Index == e.Logs.NextTick {
		le.Tick = true
	}
	if !le.Tick && len(e.Logs.Entries) > 0 {
		last := &e.Logs.Entries[len(e.Logs.Entries)-1]
		if last.Text == le.Text {
			last.Dups++
			return
		}
	}
	e.Logs.Entries = append(e.Logs.Entries, le)
	e.Logs.Index++
	if len(e.Logs.Entries) > 100000 {
		e.Logs.Entries = e.Logs.Entries[10000:]
	}
}

// Messages returns the texts of the log entries starting at the given
// index, duplicates folded.
func (e *Engine) Messages(from int) []string {
	var msgs []string
	for _, le := range e.Logs.Entries {
		if le.Index < from {
			continue
		}
		msgs = append(msgs, le.String())
	}
	return msgs
}

// newTick marks the start of a new propagation in the log.
func (e *Engine) newTick() {
	e.Logs.NextTick = e.Logs.Index
}
