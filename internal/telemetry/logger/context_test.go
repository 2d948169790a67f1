package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)
	FromContext(ctx).Info("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("output = %q, want test message", buf.String())
	}
}

func TestFromContext_Default(t *testing.T) {
	if FromContext(context.Background()) != Default() {
		t.Error("FromContext(empty) should return Default()")
	}
	if FromContext(nil) != Default() {
		t.Error("FromContext(nil) should return Default()")
	}
}
