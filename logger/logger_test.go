package logger_test

import (
	"strings"
	"testing"

	"github.com/sinekeys/sinekeys/logger"
	"github.com/sinekeys/sinekeys/test"
)

func TestLogAndTail(t *testing.T) {
	logger.Log(logger.Allow, "test", "first entry")
	logger.Logf(logger.Allow, "test", "entry number %d", 2)

	b := &strings.Builder{}
	logger.Tail(b, 2)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	test.ExpectEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "test: first entry")
	test.ExpectEquality(t, lines[1], "test: entry number 2")
}

func TestMultilineDetail(t *testing.T) {
	logger.Log(logger.Allow, "multi", "line one\nline two")

	b := &strings.Builder{}
	logger.Tail(b, 2)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	test.ExpectEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "multi: line one")
	test.ExpectEquality(t, lines[1], "multi: line two")
}

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	before := &strings.Builder{}
	logger.Tail(before, -1)

	logger.Log(deny{}, "denied", "this should not appear")

	after := &strings.Builder{}
	logger.Tail(after, -1)

	test.ExpectEquality(t, before.String(), after.String())
}
