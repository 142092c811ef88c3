package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/probe"
)

// State is the furthest point a setup run reached.
type State int

const (
	StateNotInstalled State = iota
	StateNotRunning
	StateRunning
	StateInitialized
	StateSeeded
)

func (s State) String() string {
	switch s {
	case StateNotInstalled:
		return "not_installed"
	case StateNotRunning:
		return "not_running"
	case StateRunning:
		return "running"
	case StateInitialized:
		return "initialized"
	case StateSeeded:
		return "seeded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Checker probes the local installation and the deployment.
type Checker interface {
	CheckInstalled(ctx context.Context) probe.InstallResult
	CheckRunning(ctx context.Context, uri string) probe.Reachability
}

// SchemaInitializer creates collections and indexes in a database.
type SchemaInitializer interface {
	Initialize(ctx context.Context, db *mongo.Database) error
}

// SampleSeeder inserts demo rows.
type SampleSeeder interface {
	Seed(ctx context.Context) (SeedResult, error)
}

// SeederFactory builds a seeder bound to the initialized database.
type SeederFactory func(db *mongo.Database) SampleSeeder

// Prompter asks the operator a yes/no question.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// Report describes how far a run got. Seed and SeedErr are only meaningful once the
// state reached StateInitialized.
type Report struct {
	RunID     string
	State     State
	URI       string
	Database  string
	Seed      SeedResult
	SeedErr   error
	// PromptErr is set when the seeding question could not be answered. Seeding is
	// then skipped and the run still succeeds.
	PromptErr error
}

// Succeeded reports whether the database ended up initialized.
func (r Report) Succeeded() bool {
	return r.State >= StateInitialized
}

type Runner struct {
	log         *slog.Logger
	checker     Checker
	initializer SchemaInitializer
	newSeeder   SeederFactory
	prompter    Prompter
	metrics     *metrics.Metrics
	uri         string
	database    string
}

func NewRunner(
	log *slog.Logger,
	checker Checker,
	initializer SchemaInitializer,
	newSeeder SeederFactory,
	prompter Prompter,
	metrics *metrics.Metrics,
	uri, database string,
) *Runner {
	return &Runner{
		log:         log,
		checker:     checker,
		initializer: initializer,
		newSeeder:   newSeeder,
		prompter:    prompter,
		metrics:     metrics,
		uri:         uri,
		database:    database,
	}
}

// Run walks the setup states in order and stops at the first one that fails. The
// client obtained from the reachability check is released on every return path.
// Seeding failures are recorded in the report and do not fail the run. A failure
// caused by cancelling ctx is reported as ErrCancelled.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	report, err := r.run(ctx)
	if err != nil && ctx.Err() != nil && !errors.Is(err, ErrCancelled) {
		err = fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	return report, err
}

func (r *Runner) run(ctx context.Context) (Report, error) {
	const opn = "Runner.Run"

	report := Report{RunID: uuid.NewString(), State: StateNotInstalled, URI: r.uri, Database: r.database}
	log := r.log.With(
		slog.String("op", opn),
		slog.String("division", "setup"),
		slog.String("run_id", report.RunID),
	)

	installed := r.checker.CheckInstalled(ctx)
	if !installed.Installed {
		r.metrics.Stage("install", ErrNotInstalled)
		return report, ErrNotInstalled
	}
	r.metrics.Stage("install", nil)
	report.State = StateNotRunning

	reach := r.checker.CheckRunning(ctx, r.uri)
	if !reach.Reachable || reach.Client == nil {
		r.metrics.Stage("connect", ErrUnreachable)
		if reach.Err == nil {
			return report, ErrUnreachable
		}
		return report, fmt.Errorf("%w: %w", ErrUnreachable, reach.Err)
	}
	defer r.release(log, reach.Client)
	r.metrics.Stage("connect", nil)
	report.State = StateRunning

	db := reach.Client.Database(r.database)
	if err := r.initializer.Initialize(ctx, db); err != nil {
		r.metrics.Stage("initialize", err)
		if !errors.Is(err, ErrSchema) {
			err = fmt.Errorf("%w: %w", ErrSchema, err)
		}
		return report, err
	}
	r.metrics.Stage("initialize", nil)
	report.State = StateInitialized
	r.metrics.LastSuccessfulUp.SetToCurrentTime()
	log.InfoContext(ctx, "Database setup completed", "database", r.database)

	confirmed, err := r.prompter.Confirm(ctx, "Would you like to create sample data?")
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return report, err
		}
		report.PromptErr = fmt.Errorf("failed to read confirmation: %w", err)
		log.WarnContext(ctx, "Sample data skipped", sl.Err(report.PromptErr))
		return report, nil
	}
	if !confirmed {
		log.InfoContext(ctx, "Sample data skipped")
		return report, nil
	}

	report.Seed, report.SeedErr = r.newSeeder(db).Seed(ctx)
	r.metrics.Stage("seed", report.SeedErr)
	if report.SeedErr != nil {
		log.WarnContext(ctx, "Error inserting sample data", sl.Err(report.SeedErr))
		return report, nil
	}
	report.State = StateSeeded

	return report, nil
}

func (r *Runner) release(log *slog.Logger, client *mongo.Client) {
	const disconnectTimeout = 5 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.WarnContext(ctx, "Failed to close MongoDB connection", sl.Err(err))
		return
	}
	log.DebugContext(ctx, "MongoDB connection closed")
}
