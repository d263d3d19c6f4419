package run

import (
	"errors"
	"net/http"

	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/runner"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

// StopHandler requests a cooperative stop of the active run.
func StopHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svcCtx.Runner.Stop(); err != nil {
			if errors.Is(err, runner.ErrNotRunning) {
				httputil.BadRequest(w, "no automation is running")
				return
			}
			httputil.InternalError(w, err.Error())
			return
		}
		httputil.OkJSON(w, &types.StopResponse{Message: "Stopping automation"})
	}
}
