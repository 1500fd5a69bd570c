package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
		want    []string
	}{
		{
			name:    "success",
			wantMsg: `msg="RPC ok"`,
			want:    []string{"level=INFO", "request_id=req-1"},
		},
		{
			name:    "connect error",
			err:     connect.NewError(connect.CodeInvalidArgument, errors.New("bad line")),
			wantMsg: `msg="RPC error"`,
			want:    []string{"level=WARN", "code=invalid_argument", `error="bad line"`},
		},
		{
			name:    "plain error",
			err:     errors.New("boom"),
			wantMsg: `msg="RPC error"`,
			want:    []string{"level=ERROR", "error=boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return connect.NewResponse(&struct{}{}), nil
			})

			ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
			_, err := LoggingInterceptor()(next)(ctx, connect.NewRequest(&struct{}{}))
			require.Equal(t, tt.err, err)

			out := buf.String()
			assert.Contains(t, out, tt.wantMsg)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}
