// Package probe answers the two questions asked before any schema work: is a MongoDB
// shell installed on this machine, and is a MongoDB deployment reachable.
package probe

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/UnknownOlympus/hrms-lite/internal/repository"
)

const (
	DefaultProbeTimeout = 10 * time.Second
	DefaultConnTimeout  = 5 * time.Second
)

// Shells are tried in order: the current shell first, then the legacy one.
var Shells = []string{"mongosh", "mongo"}

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// InstallResult is the outcome of CheckInstalled.
type InstallResult struct {
	Installed bool
	Binary    string
	Version   string
}

// Reachability is the outcome of CheckRunning. Client is set only when Reachable,
// and the caller then owns it.
type Reachability struct {
	Reachable bool
	Client    *mongo.Client
	URI       string
	Err       error
}

type Prober struct {
	log          *slog.Logger
	run          Runner
	shells       []string
	probeTimeout time.Duration
	connTimeout  time.Duration
}

func NewProber(log *slog.Logger, probeTimeout, connTimeout time.Duration) *Prober {
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	if connTimeout <= 0 {
		connTimeout = DefaultConnTimeout
	}

	return &Prober{
		log:          log.With(slog.String("division", "probe")),
		run:          execRunner,
		shells:       Shells,
		probeTimeout: probeTimeout,
		connTimeout:  connTimeout,
	}
}

// CheckInstalled runs `<shell> --version` for each known shell until one succeeds.
// A missing executable or a hung shell is a negative result, never an error.
func (p *Prober) CheckInstalled(ctx context.Context) InstallResult {
	for _, shell := range p.shells {
		out, err := p.version(ctx, shell)
		if err == nil {
			version := firstLine(out)
			p.log.InfoContext(ctx, "MongoDB shell found", "binary", shell, "version", version)
			return InstallResult{Installed: true, Binary: shell, Version: version}
		}

		switch {
		case errors.Is(err, exec.ErrNotFound):
			p.log.DebugContext(ctx, "MongoDB shell not in PATH", "binary", shell)
		case errors.Is(err, context.DeadlineExceeded):
			p.log.WarnContext(ctx, "MongoDB shell timed out", "binary", shell, "timeout", p.probeTimeout.String())
		default:
			p.log.DebugContext(ctx, "MongoDB shell failed", "binary", shell, "error", err)
		}
	}

	p.log.WarnContext(ctx, "MongoDB not found in system PATH")
	return InstallResult{}
}

func (p *Prober) version(pctx context.Context, shell string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(pctx, p.probeTimeout)
	defer cancel()

	out, err := p.run(ctx, shell, "--version")
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return out, err
}

// CheckRunning connects to uri and pings the deployment, bounded by the connection
// timeout. Failures are reported in the result, not returned.
func (p *Prober) CheckRunning(ctx context.Context, uri string) Reachability {
	client, err := repository.NewClient(ctx, uri, p.connTimeout)
	if err != nil {
		p.log.WarnContext(ctx, "MongoDB service not running or not accessible", "error", err)
		return Reachability{Err: err}
	}

	p.log.InfoContext(ctx, "MongoDB service is running")
	return Reachability{Reachable: true, Client: client, URI: uri}
}

func firstLine(out []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(out))
	if sc.Scan() {
		return sc.Text()
	}
	return ""
}
