package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Envs(t *testing.T) {
	for _, env := range []string{"local", "test", "prod"} {
		l, err := New(env, "")
		if err != nil {
			t.Fatalf("New(%q): %v", env, err)
		}
		_ = l.Sync()
	}
}

func TestNew_UnknownEnv(t *testing.T) {
	if _, err := New("staging", ""); err == nil {
		t.Fatal("expected error for unknown env")
	}
}

func TestNew_LevelOverride(t *testing.T) {
	l, err := New("prod", "warn")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info must be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn must be enabled")
	}

	if _, err := New("local", "loud"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must never return nil")
	}

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))
	FromContext(ctx).Info("hello")

	if logs.Len() != 1 || logs.All()[0].Message != "hello" {
		t.Errorf("expected the stored logger to be used, got %v", logs.All())
	}

	var nilLogger *zap.Logger
	if FromContext(WithLogger(context.Background(), nilLogger)) == nil {
		t.Fatal("a stored nil logger must fall back to no-op")
	}
}
