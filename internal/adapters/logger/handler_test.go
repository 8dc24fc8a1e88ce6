package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/reqsync/internal/adapters/logger"
)

func newTestHandler(t *testing.T, level slog.Level) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}), buf
}

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t, slog.LevelInfo)
			slog.New(handler).Log(t.Context(), tt.level, "regenerating manifest")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name string
		log  func(lg *slog.Logger)
		want string
	}{
		{
			name: "record attributes",
			log:  func(lg *slog.Logger) { lg.Info("changed", "file", "dev.txt", "count", 2) },
			want: "changed file=dev.txt count=2\n",
		},
		{
			name: "handler attributes come first",
			log:  func(lg *slog.Logger) { lg.With("op", "watch").Info("changed", "file", "dev.txt") },
			want: "changed op=watch file=dev.txt\n",
		},
		{
			name: "group attribute",
			log:  func(lg *slog.Logger) { lg.Info("loaded", slog.Group("src", slog.String("enc", "utf-16"))) },
			want: "loaded src.enc=utf-16\n",
		},
		{
			name: "nested groups",
			log:  func(lg *slog.Logger) { lg.WithGroup("a").WithGroup("b").Info("nested", "k", "v") },
			want: "nested a.b.k=v\n",
		},
		{
			name: "group does not apply to earlier attributes",
			log:  func(lg *slog.Logger) { lg.With("x", 1).WithGroup("g").Info("mixed", "y", 2) },
			want: "mixed x=1 g.y=2\n",
		},
		{
			name: "empty group name is ignored",
			log:  func(lg *slog.Logger) { lg.WithGroup("").Info("plain", "k", "v") },
			want: "plain k=v\n",
		},
		{
			name: "empty value",
			log:  func(lg *slog.Logger) { lg.Info("empty", "k", "") },
			want: "empty k=\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t, slog.LevelInfo)
			tt.log(slog.New(handler))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		recordLevel  slog.Level
		want         bool
	}{
		{name: "debug below info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelDebug, want: false},
		{name: "info at info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelInfo, want: true},
		{name: "error above info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelError, want: true},
		{name: "warn below error", handlerLevel: slog.LevelError, recordLevel: slog.LevelWarn, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: tt.handlerLevel})
			assert.Equal(t, tt.want, handler.Enabled(t.Context(), tt.recordLevel))
		})
	}
}

func TestPrettyHandler_NilOptions(t *testing.T) {
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, nil)
	assert.True(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
}
