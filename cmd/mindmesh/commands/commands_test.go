package commands

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localEnv makes config loading independent of the machine running the tests.
func localEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "MINDMESH_") || key == "GEMINI_API_KEY" || key == "PORT" {
			t.Setenv(key, "")
		}
	}
	t.Setenv("MINDMESH_MODE", "local")
	t.Setenv("MINDMESH_USE_MOCK_LLM", "1")
}

func run(t *testing.T, ctx context.Context, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestBreatheCommand(t *testing.T) {
	localEnv(t)

	_, err := run(t, context.Background(), "", "breathe", "--tick", "soon")
	require.Error(t, err, "bad duration flag is rejected")

	out, err := run(t, context.Background(), "", "breathe", "-t", "relaxing", "-n", "1", "--tick", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "Relaxing Breath")
	assert.Equal(t, 1, strings.Count(out, "Breathe In"))
	assert.Contains(t, out, "Breathe Out  6s")
	assert.NotContains(t, out, "Hold")
	assert.Contains(t, out, "Done, 1 cycles.")
}

func TestBreatheCommand_Cancelled(t *testing.T) {
	localEnv(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	out, err := run(t, ctx, "", "breathe", "-t", "box", "-n", "0", "--tick", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "Stopped.")
}

func TestBreatheCommand_UnknownTechnique(t *testing.T) {
	localEnv(t)

	_, err := run(t, context.Background(), "", "breathe", "-t", "square")
	assert.Error(t, err)
}

func TestBreatheCommand_NonPositiveTick(t *testing.T) {
	localEnv(t)

	for _, tick := range []string{"0", "-1s"} {
		_, err := run(t, context.Background(), "", "breathe", "--tick="+tick)
		assert.Error(t, err, tick)
	}
}

func TestCheckinCommand(t *testing.T) {
	localEnv(t)

	answers := strings.Join([]string{"8", "nope", "3", "yes", "1", "1", "1", "1", "1", "1", "1", ""}, "\n") + "\n"
	out, err := run(t, context.Background(), answers, "checkin")
	require.NoError(t, err)

	assert.Contains(t, out, "[11/11]")
	assert.Contains(t, out, "Please try again.")
	assert.Contains(t, out, "Mildly Stressed")
}

func TestCheckinCommand_EndsEarly(t *testing.T) {
	localEnv(t)

	out, err := run(t, context.Background(), "1\n", "checkin")
	require.NoError(t, err)
	assert.Contains(t, out, "ended early")
	// feeling 1 alone scores 9
	assert.Contains(t, out, "Mentally Balanced")
}

func TestServe(t *testing.T) {
	localEnv(t)
	t.Setenv("MINDMESH_PORT", "0")
	t.Setenv("MINDMESH_LOG_FILE", t.TempDir()+"/serve.log")

	// load config the way the root command does
	require.NoError(t, newRootCmd().PersistentPreRunE(nil, nil))

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, ready) }()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("serve exited early: %v", err)
	}

	port := addr[strings.LastIndex(addr, ":"):]
	resp, err := http.Get("http://127.0.0.1" + port + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not shut down")
	}
}
