//go:build integration
// +build integration

package tests

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"testing"

	dbadapter "momentum/internal/adapter/db"
	httpadapter "momentum/internal/adapter/http"
	"momentum/internal/adapter/http/handlers"
	appservice "momentum/internal/app/service"
	"momentum/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestRouter(db *sqlx.DB, limiter ratelimit.Limiter) *gin.Engine {
	router := gin.New()

	taskRepository := dbadapter.NewTaskRepository(db)
	reminderRepository := dbadapter.NewReminderRepository(db)
	renegotiationRepository := dbadapter.NewRenegotiationRepository(db)

	lifecycleService := appservice.NewLifecycleService(taskRepository, reminderRepository)
	renegotiationService := appservice.NewRenegotiationService(taskRepository, renegotiationRepository)

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(lifecycleService)
	renegotiationHandler := handlers.NewRenegotiationHandler(renegotiationService)
	httpadapter.RegisterRoutes(router, healthHandler, taskHandler, renegotiationHandler, limiter)

	return router
}

// seedTask inserts one row with the given column overrides on top of an
// active task owned by testOwner, and returns its id.
func seedTask(t *testing.T, db *sqlx.DB, columns map[string]any) uint64 {
	t.Helper()

	row := map[string]any{
		"owner_id": testOwner,
		"title":    "Seeded task",
		"status":   "active",
	}
	for key, value := range columns {
		row[key] = value
	}

	names := make([]string, 0, len(row))
	for name := range row {
		names = append(names, name)
	}
	sort.Strings(names)

	placeholders := make([]string, 0, len(names))
	values := make([]any, 0, len(names))
	for _, name := range names {
		placeholders = append(placeholders, "?")
		values = append(values, row[name])
	}

	query := fmt.Sprintf(
		"INSERT INTO tasks (%s) VALUES (%s)",
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
	)
	result, err := db.Exec(query, values...)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)
	return uint64(id)
}

func seedReminder(t *testing.T, db *sqlx.DB, taskID uint64) {
	t.Helper()

	_, err := db.Exec(
		"INSERT INTO reminders (task_id, remind_at) VALUES (?, NOW())",
		taskID,
	)
	require.NoError(t, err)
}

func seedRenegotiationEvent(t *testing.T, db *sqlx.DB, taskID uint64, action, reason string) {
	t.Helper()

	_, err := db.Exec(
		"INSERT INTO renegotiation_events (task_id, action, reason_code) VALUES (?, ?, ?)",
		taskID, action, reason,
	)
	require.NoError(t, err)
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
