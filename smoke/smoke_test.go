package smoke

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/8adiq/basic-user/app/routes"
	"github.com/8adiq/basic-user/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

type nopMailer struct{}

func (nopMailer) SendVerification(email, token string) error { return nil }

func setupTestServer(t *testing.T) *httptest.Server {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mailer services.Mailer = nopMailer{}
	server := httptest.NewServer(routes.SetupAPIRoutes(db, mailer))
	t.Cleanup(server.Close)
	return server
}

func TestRunAgainstLiveServer(t *testing.T) {
	server := setupTestServer(t)

	runner := New(server.URL)
	var out bytes.Buffer
	runner.SetOutput(&out)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(runner.steps()), report.Passed)
	require.Zero(t, report.Failed)
	require.False(t, report.ConnectionFailure)

	runner.Print(report)
	require.Contains(t, out.String(), "passed, 0 failed")
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	// A server that is up but serves nothing useful: every step gets an
	// unexpected response, so the run must stop after the first step.
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	runner := New(server.URL)
	runner.SetOutput(new(bytes.Buffer))

	report, err := runner.Run(context.Background())
	require.Error(t, err)
	require.False(t, report.ConnectionFailure)
	require.Len(t, report.Steps, 1)
	require.Equal(t, 1, report.Failed)
}

func TestRunReportsConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	runner := New(baseURL)
	var out bytes.Buffer
	runner.SetOutput(&out)

	report, err := runner.Run(context.Background())
	require.Error(t, err)
	require.True(t, report.ConnectionFailure)
	require.Equal(t, 1, report.Failed)
	require.Zero(t, report.Passed)

	runner.Print(report)
	require.Contains(t, out.String(), "is the server running?")
}
