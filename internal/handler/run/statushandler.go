package run

import (
	"net/http"

	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/svc"
)

// StatusHandler serves a snapshot of the run state. Clients poll this.
func StatusHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.OkJSON(w, svcCtx.Runner.Status())
	}
}
