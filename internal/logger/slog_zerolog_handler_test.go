package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSlogBridge_FieldMapping(t *testing.T) {
	var buf bytes.Buffer
	zl := Build(Config{Level: "info"}, &buf)
	log := NewSlog(&zl)

	log.Warn("cache get failed", "key", "csq:enc:1", "err", errors.New("redis down"), "attempts", 3)

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"msg":"cache get failed"`,
		`"key":"csq:enc:1"`,
		`"err":"redis down"`,
		`"attempts":3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line %q missing %q", out, want)
		}
	}
}

func TestSlogBridge_DebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	zl := Build(Config{Level: "info"}, &buf)
	log := NewSlog(&zl)

	log.Debug("noise")
	if buf.Len() != 0 {
		t.Fatalf("debug line emitted at info level: %q", buf.String())
	}
}

func TestSlogBridge_WithAttrsAccumulates(t *testing.T) {
	var buf bytes.Buffer
	zl := Build(Config{Level: "info"}, &buf)
	log := NewSlog(&zl).With("component", "ingest")

	log.Info("consumer starting")
	if out := buf.String(); !strings.Contains(out, `"component":"ingest"`) {
		t.Fatalf("accumulated attr missing: %q", out)
	}
}
