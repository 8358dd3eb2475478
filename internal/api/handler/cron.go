package handler

import (
	"net/http"

	"github.com/vfg2006/performance-forecast-api/internal/scheduler"
)

// CronJobServices contém os agendadores expostos na rota de status
type CronJobServices struct {
	TokenRefreshService *scheduler.TokenRefreshService
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.TokenRefreshService != nil {
			status["token-refresh"] = services.TokenRefreshService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
