package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestInitWriterProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := InitWriter("production", &buf)
	l.Info("hello", "requestId", "r1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if entry["requestId"] != "r1" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestWithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	InitWriter("development", &buf)

	ctx := With(context.Background(), "requestId", "abc")
	From(ctx).Info("scoped")

	if !strings.Contains(buf.String(), "requestId=abc") {
		t.Fatalf("expected scoped field in %q", buf.String())
	}
}
