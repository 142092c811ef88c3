package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/config"
	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/probe"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
	"github.com/UnknownOlympus/hrms-lite/internal/setup"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the setup utility and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stdout, "\n❌ Unexpected error: %v\n", r)
			fmt.Fprintln(stdout, "Please check your MongoDB installation and try again.")
			code = 1
		}
	}()

	flags := config.SetupFlags()
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}

	logger := sl.New(cfg.Env, stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	prober := probe.NewProber(logger, cfg.Setup.ProbeTimeout, cfg.Mongo.Timeout)

	newSeeder := func(db *mongo.Database) setup.SampleSeeder {
		now := time.Now()
		rnd := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(os.Getpid()))) //nolint:gosec // sample data only
		return setup.NewSeeder(logger,
			repository.NewEmployeeRepository(db, appMetrics),
			repository.NewAttendanceRepository(db, appMetrics),
			appMetrics, rnd, nil)
	}

	runner := setup.NewRunner(logger, prober, setup.NewInitializer(logger), newSeeder,
		prompter(cfg.Setup.Seed, stdin, stdout), appMetrics, cfg.Mongo.URI, cfg.Mongo.Database)

	fmt.Fprintln(stdout, "🚀 HRMS Lite - MongoDB Database Setup")
	fmt.Fprintln(stdout, strings.Repeat("=", 40))

	report, err := runner.Run(ctx)
	printReport(stdout, report, err, cfg.HTTP.Port)

	if err != nil {
		logger.Debug("setup failed", "run_id", report.RunID, "state", report.State.String(), sl.Err(err))
		return 1
	}
	return 0
}

func prompter(mode string, stdin io.Reader, stdout io.Writer) setup.Prompter {
	switch mode {
	case config.SeedYes:
		return setup.StaticPrompter{Answer: true}
	case config.SeedNo:
		return setup.StaticPrompter{Answer: false}
	default:
		return setup.NewTerminalPrompter(stdin, stdout)
	}
}

func printReport(out io.Writer, report setup.Report, err error, port int) {
	if report.State >= setup.StateNotRunning {
		fmt.Fprintln(out, "✅ MongoDB shell found")
	}
	if report.State >= setup.StateRunning {
		fmt.Fprintln(out, "✅ MongoDB service is running")
	}
	if report.Succeeded() {
		fmt.Fprintf(out, "\n🎉 Database '%s' setup completed successfully!\n", report.Database)
		fmt.Fprintf(out, "📊 Database URL: %s\n", report.URI)
	}
	switch {
	case report.State == setup.StateSeeded:
		fmt.Fprintf(out, "✅ Inserted %d sample employees\n", report.Seed.Employees)
		fmt.Fprintf(out, "✅ Inserted %d sample attendance records\n", report.Seed.Attendance)
	case report.SeedErr != nil:
		fmt.Fprintf(out, "⚠️ Error inserting sample data: %v\n", report.SeedErr)
	case report.PromptErr != nil:
		fmt.Fprintf(out, "⚠️ Sample data skipped: %v\n", report.PromptErr)
	}

	switch {
	case err == nil:
		fmt.Fprintln(out, "\n✅ Setup completed! You can now run:")
		fmt.Fprintln(out, "   go run ./cmd/main")
		fmt.Fprintln(out, "\n🌐 Your HRMS Lite backend will be available at:")
		fmt.Fprintf(out, "   http://localhost:%d/api/\n", port)
	case errors.Is(err, setup.ErrCancelled):
		fmt.Fprintln(out, "\n\n⏹️ Setup cancelled by user")
	case errors.Is(err, setup.ErrNotInstalled):
		fmt.Fprintln(out, "❌ MongoDB not found in system PATH")
	case errors.Is(err, setup.ErrUnreachable):
		fmt.Fprintf(out, "❌ MongoDB service not running or not accessible: %v\n", err)
	default:
		fmt.Fprintf(out, "❌ Error creating database: %v\n", err)
	}

	if guide := setup.Guidance(err); guide != nil {
		fmt.Fprintln(out)
		for _, line := range guide {
			fmt.Fprintln(out, line)
		}
	}
}
