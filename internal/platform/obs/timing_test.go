package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})
	return &buf
}

func TestTimeLogsRequestIDAndError(t *testing.T) {
	buf := captureLog(t)
	ctx := WithRequestID(context.Background(), "abc")
	require.Equal(t, "abc", RequestID(ctx))

	err := errors.New("boom")
	Time(ctx, "plan")(&err)
	require.Contains(t, buf.String(), "req_id=abc op=plan")
	require.Contains(t, buf.String(), "err=boom")

	buf.Reset()
	var none error
	Time(context.Background(), "noop")(&none)
	require.Contains(t, buf.String(), "req_id= op=noop")
	require.NotContains(t, buf.String(), "err=")
}
