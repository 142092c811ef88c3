package probe

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProber(buf *bytes.Buffer, run Runner) *Prober {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewProber(logger, 50*time.Millisecond, 50*time.Millisecond)
	p.run = run
	return p
}

func TestCheckInstalled(t *testing.T) {
	t.Parallel()

	t.Run("preferred shell", func(t *testing.T) {
		t.Parallel()
		var calls []string
		p := newTestProber(&bytes.Buffer{}, func(_ context.Context, name string, args ...string) ([]byte, error) {
			calls = append(calls, name)
			assert.Equal(t, []string{"--version"}, args)
			return []byte("2.3.1\nextra"), nil
		})

		res := p.CheckInstalled(context.Background())

		assert.Equal(t, InstallResult{Installed: true, Binary: "mongosh", Version: "2.3.1"}, res)
		assert.Equal(t, []string{"mongosh"}, calls)
	})

	t.Run("legacy shell fallback", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := newTestProber(&buf, func(_ context.Context, name string, _ ...string) ([]byte, error) {
			if name == "mongosh" {
				return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
			}
			return []byte("MongoDB shell version v4.4.29"), nil
		})

		res := p.CheckInstalled(context.Background())

		require.True(t, res.Installed)
		assert.Equal(t, "mongo", res.Binary)
		assert.Contains(t, buf.String(), "MongoDB shell not in PATH")
	})

	t.Run("nothing installed", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := newTestProber(&buf, func(_ context.Context, name string, _ ...string) ([]byte, error) {
			return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
		})

		res := p.CheckInstalled(context.Background())

		assert.False(t, res.Installed)
		assert.Contains(t, buf.String(), "MongoDB not found in system PATH")
	})

	t.Run("non-zero exit", func(t *testing.T) {
		t.Parallel()
		p := newTestProber(&bytes.Buffer{}, func(context.Context, string, ...string) ([]byte, error) {
			return nil, errors.New("exit status 1")
		})

		assert.False(t, p.CheckInstalled(context.Background()).Installed)
	})

	t.Run("hung shell times out", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := newTestProber(&buf, func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
			<-ctx.Done()
			return nil, errors.New("signal: killed")
		})

		start := time.Now()
		res := p.CheckInstalled(context.Background())

		assert.False(t, res.Installed)
		assert.Less(t, time.Since(start), 2*time.Second)
		assert.Contains(t, buf.String(), "MongoDB shell timed out")
	})
}

func TestNewProber_Defaults(t *testing.T) {
	t.Parallel()

	p := NewProber(slog.Default(), 0, -1)

	assert.Equal(t, DefaultProbeTimeout, p.probeTimeout)
	assert.Equal(t, DefaultConnTimeout, p.connTimeout)
	assert.Equal(t, []string{"mongosh", "mongo"}, p.shells)
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", firstLine([]byte("a\nb")))
	assert.Empty(t, firstLine(nil))
}
