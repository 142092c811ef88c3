package setup_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/probe"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
	"github.com/UnknownOlympus/hrms-lite/internal/schema"
	"github.com/UnknownOlympus/hrms-lite/internal/setup"
	mocks "github.com/UnknownOlympus/hrms-lite/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tamathecxder/randomail"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func startMongo(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcmongo.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	return strings.TrimSuffix(uri, "/")
}

func connect(t *testing.T, uri string) *mongo.Client {
	t.Helper()

	res := probe.NewProber(newTestLogger(), time.Second, 10*time.Second).CheckRunning(context.Background(), uri)
	require.True(t, res.Reachable, "mongo container unreachable: %v", res.Err)
	t.Cleanup(func() { _ = res.Client.Disconnect(context.Background()) })

	return res.Client
}

func indexNames(t *testing.T, coll *mongo.Collection) []string {
	t.Helper()

	specs, err := coll.Indexes().ListSpecifications(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	return names
}

func TestIntegration_Schema(t *testing.T) {
	base := startMongo(t)
	uri := base + "/hrms_it"
	client := connect(t, uri)
	db := client.Database(schema.ResolveDatabase(uri))
	ctx := context.Background()
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	initializer := setup.NewInitializer(newTestLogger())
	require.NoError(t, initializer.Initialize(ctx, db))

	t.Run("initialize is idempotent", func(t *testing.T) {
		require.NoError(t, initializer.Initialize(ctx, db))

		assert.ElementsMatch(t, []string{"_id_", "employee_id_1", "email_1"},
			indexNames(t, db.Collection(schema.EmployeesCollection)))
		assert.ElementsMatch(t, []string{"_id_", "employee_1_date_1", "date_1", "status_1"},
			indexNames(t, db.Collection(schema.AttendanceCollection)))
	})

	employees := repository.NewEmployeeRepository(db, testMetrics)
	attendance := repository.NewAttendanceRepository(db, testMetrics)

	ids, err := employees.SaveEmployees(ctx, []models.Employee{{
		EmployeeID: "IT-001", FullName: "Integration User", Email: randomail.GenerateRandomEmail(), Department: "QA",
	}})
	require.NoError(t, err)
	require.Len(t, ids, 1)

	t.Run("duplicate employee id rejected", func(t *testing.T) {
		_, err := employees.SaveEmployees(ctx, []models.Employee{{
			EmployeeID: "IT-001", FullName: "Someone Else", Email: randomail.GenerateRandomEmail(), Department: "HR",
		}})
		require.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("duplicate attendance day rejected", func(t *testing.T) {
		morning := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
		_, err := attendance.SaveAttendance(ctx, []models.Attendance{
			{Employee: ids[0], Date: morning, Status: models.StatusPresent},
		})
		require.NoError(t, err)

		_, err = attendance.SaveAttendance(ctx, []models.Attendance{
			{Employee: ids[0], Date: morning.Add(6 * time.Hour), Status: models.StatusAbsent},
		})
		require.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("unknown employee rejected", func(t *testing.T) {
		_, err := attendance.SaveAttendance(ctx, []models.Attendance{
			{Employee: [12]byte{1}, Date: time.Now(), Status: models.StatusPresent},
		})
		require.ErrorIs(t, err, repository.ErrUnknownEmployee)
	})

	t.Run("validator rejects unknown status", func(t *testing.T) {
		_, err := db.Collection(schema.AttendanceCollection).InsertOne(ctx, bson.M{
			"employee": ids[0], "date": time.Now(), "status": "Late",
		})
		require.Error(t, err)
	})
}

func TestIntegration_Run(t *testing.T) {
	base := startMongo(t)
	uri := base + "/hrms_lite"
	ctx := context.Background()
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	logger := newTestLogger()

	prober := probe.NewProber(logger, time.Second, 10*time.Second)
	checker := mocks.NewChecker(t)
	checker.On("CheckInstalled", mock.Anything).Return(probe.InstallResult{Installed: true, Binary: "mongosh"})
	checker.On("CheckRunning", mock.Anything, uri).Return(func(ctx context.Context, uri string) probe.Reachability {
		return prober.CheckRunning(ctx, uri)
	})

	factory := func(db *mongo.Database) setup.SampleSeeder {
		return setup.NewSeeder(logger,
			repository.NewEmployeeRepository(db, testMetrics),
			repository.NewAttendanceRepository(db, testMetrics),
			testMetrics, rand.New(rand.NewSource(1)), nil)
	}

	runner := setup.NewRunner(logger, checker, setup.NewInitializer(logger), factory,
		setup.StaticPrompter{Answer: true}, testMetrics, uri, schema.ResolveDatabase(uri))

	report, err := runner.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, setup.StateSeeded, report.State)
	assert.Equal(t, setup.SeedResult{Employees: 3, Attendance: 15}, report.Seed)

	client := connect(t, uri)
	db := client.Database("hrms_lite")
	empCount, err := db.Collection(schema.EmployeesCollection).CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, empCount)
	attCount, err := db.Collection(schema.AttendanceCollection).CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	assert.EqualValues(t, 15, attCount)

	// A second run initializes again but the sample employees already exist.
	again, err := runner.Run(ctx)
	require.NoError(t, err)
	assert.True(t, again.Succeeded())
	require.ErrorIs(t, again.SeedErr, repository.ErrDuplicate)
}
