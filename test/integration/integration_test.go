package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kmsol/fabtrack/internal/domain/dashboard"
	"github.com/kmsol/fabtrack/internal/domain/notice"
	"github.com/kmsol/fabtrack/internal/domain/project"
	"github.com/kmsol/fabtrack/internal/httpapi"
	"github.com/kmsol/fabtrack/internal/seed"
	"github.com/kmsol/fabtrack/internal/sqlite"
)

var clock = time.Date(2024, time.December, 10, 9, 0, 0, 0, time.UTC)

// startServer boots the full stack against the given database file. Calling
// it twice with the same path simulates a restart.
func startServer(t *testing.T, dbPath string) *httptest.Server {
	t.Helper()

	db, err := sqlite.New(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := httpapi.NewHandler(httpapi.Services{
		Projects:  project.NewService(sqlite.NewProjectStore(db), seed.Provider{}, logger),
		Dashboard: dashboard.NewService(dashboard.WithClock(func() time.Time { return clock })),
		Notices:   notice.NewService(seed.Board{}, logger),
	}, logger)

	server := httptest.NewServer(handler.Router())
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

type listResponse struct {
	Projects []project.Project `json:"projects"`
	Total    int               `json:"total"`
}

func TestFullLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fabtrack.db")
	server := startServer(t, dbPath)

	// A fresh store serves the seed dataset without persisting it.
	var list listResponse
	getJSON(t, server.URL+"/api/projects", &list)
	require.Equal(t, 4, list.Total)

	// Edit project 1 and save it back.
	var p project.Project
	getJSON(t, server.URL+"/api/projects/1", &p)
	p.Remarks = "부품 입고 완료"
	p.Items[0].BOMStatus = project.StatusComplete

	body, err := json.Marshal(p)
	require.NoError(t, err)
	resp, err := http.Post(server.URL+"/api/projects", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The edit is visible on re-read.
	var reread project.Project
	getJSON(t, server.URL+"/api/projects/1", &reread)
	require.Equal(t, "부품 입고 완료", reread.Remarks)
	require.Equal(t, project.StatusComplete, reread.Items[0].BOMStatus)

	// A restart keeps the persisted collection, not the seed.
	restarted := startServer(t, dbPath)
	var afterRestart project.Project
	getJSON(t, restarted.URL+"/api/projects/1", &afterRestart)
	require.Equal(t, "부품 입고 완료", afterRestart.Remarks)

	// Delete needs the confirm gate, then removes the project for good.
	req, err := http.NewRequest(http.MethodDelete, restarted.URL+"/api/projects/1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	req, err = http.NewRequest(http.MethodDelete, restarted.URL+"/api/projects/1?confirm=true", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	getJSON(t, restarted.URL+"/api/projects", &list)
	require.Equal(t, 3, list.Total)
}

func TestDashboardTracksEdits(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fabtrack.db")
	server := startServer(t, dbPath)

	var dash struct {
		Stats dashboard.Stats `json:"stats"`
	}
	getJSON(t, server.URL+"/api/dashboard", &dash)
	require.Equal(t, 4, dash.Stats.Total)
	require.Equal(t, 10, dash.Stats.DelayedTasks)

	// Completing a dated task removes it from the delayed count.
	var p project.Project
	getJSON(t, server.URL+"/api/projects/1", &p)
	p.Items[0].DrawingStatus = project.StatusComplete

	body, err := json.Marshal(p)
	require.NoError(t, err)
	resp, err := http.Post(server.URL+"/api/projects", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	getJSON(t, server.URL+"/api/dashboard", &dash)
	require.Equal(t, 9, dash.Stats.DelayedTasks)
}
