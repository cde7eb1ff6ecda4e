package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func decode(t *testing.T, line []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(line, &m); err != nil {
		t.Fatalf("decode %q: %v", line, err)
	}
	return m
}

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf))

	l.Info("split complete",
		String("input", "in.fasta"),
		Int("pieces", 3),
		Ints("sizes", []int{4, 3, 3}),
		Bool("verified", true),
		Duration("took", time.Second),
		Err(errors.New("boom")),
	)

	m := decode(t, buf.Bytes())
	if m["message"] != "split complete" {
		t.Errorf("message = %v", m["message"])
	}
	if m["level"] != "info" {
		t.Errorf("level = %v", m["level"])
	}
	if m["input"] != "in.fasta" || m["pieces"] != float64(3) || m["verified"] != true {
		t.Errorf("fields = %v", m)
	}
	if m["error"] != "boom" {
		t.Errorf("error = %v", m["error"])
	}
}

func TestZerologAdapterLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug written at info level: %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn missing: %q", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := With(NewZerologAdapterWithLogger(zerolog.New(&buf)), String("file", "a.fasta"))
	l.Error("failed")

	m := decode(t, buf.Bytes())
	if m["file"] != "a.fasta" {
		t.Errorf("file = %v", m["file"])
	}

	// Non-zerolog loggers get the fields prepended.
	rec := &recorder{}
	With(rec, String("file", "b.fasta")).Info("ok", Int("n", 1))
	if len(rec.fields) != 2 || rec.fields[0].Key != "file" || rec.fields[1].Key != "n" {
		t.Errorf("fields = %v", rec.fields)
	}
}

type recorder struct {
	NoopLogger
	fields []Field
}

func (r *recorder) Info(msg string, fields ...Field) { r.fields = fields }
