package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

const version = "1.0.0"

func HealthCheckHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := &types.HealthResponse{
			Status:            "healthy",
			Version:           version,
			Platform:          runtime.GOOS,
			ChromeUserDataDir: svcCtx.ChromeUserDataDir(),
			InputAvailable:    true,
			FailsafeEnabled:   svcCtx.Config.Failsafe.Enabled,
			Timestamp:         time.Now().UTC().Format(time.RFC3339),
		}
		if err := svcCtx.Input.Available(); err != nil {
			resp.InputAvailable = false
			resp.InputError = err.Error()
		}
		httputil.OkJSON(w, resp)
	}
}
