// Package logger is a central log for the application. Log entries are
// accumulated in memory and can be echoed to an io.Writer as they arrive or
// inspected after the fact with the Tail() function.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission allows the caller of a log function to declare whether logging
// is allowed in the current context.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow can be used by the Log() and Logf() functions when logging is always
// permitted.
var Allow Permission = allow{}

// the maximum number of entries kept by the central log. once reached the
// oldest entries are discarded
const maxEntries = 256

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type central struct {
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

var log = central{
	entries: make([]entry, 0, maxEntries),
}

// Log adds a new entry to the central logger. The detail argument can be
// anything that satisfies the Stringer or error interfaces. Any other type is
// formatted with the %v verb.
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case fmt.Stringer:
		s = d.String()
	case error:
		s = d.Error()
	default:
		s = fmt.Sprintf("%v", detail)
	}

	log.crit.Lock()
	defer log.crit.Unlock()

	// each line of a multi-line detail gets its own entry
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}

		e := entry{tag: tag, detail: l}
		if len(log.entries) >= maxEntries {
			log.entries = log.entries[1:]
		}
		log.entries = append(log.entries, e)

		if log.echo != nil {
			io.WriteString(log.echo, e.String())
			io.WriteString(log.echo, "\n")
		}
	}
}

// Logf is a formatted version of Log()
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// SetEcho prints entries to the io.Writer as they arrive. A nil writer stops
// any previous echoing. If writeRecent is true then entries already in the
// log are written out immediately.
func SetEcho(w io.Writer, writeRecent bool) {
	log.crit.Lock()
	defer log.crit.Unlock()

	log.echo = w

	if w != nil && writeRecent {
		for _, e := range log.entries {
			io.WriteString(w, e.String())
			io.WriteString(w, "\n")
		}
	}
}

// Tail writes the last n entries to the io.Writer. A negative value of n
// writes every entry in the log.
func Tail(w io.Writer, n int) {
	log.crit.Lock()
	defer log.crit.Unlock()

	s := 0
	if n >= 0 && len(log.entries) > n {
		s = len(log.entries) - n
	}

	for _, e := range log.entries[s:] {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
}
