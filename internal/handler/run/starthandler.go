package run

import (
	"errors"
	"net/http"

	"github.com/searchbot/searchbot/internal/browser"
	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/runner"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

const defaultDelaySeconds = 3

// StartHandler begins an automation run. The request's profile selection
// wins over the persisted one; Chrome with no resolvable profiles is
// rejected unless the client opted into the default profile.
func StartHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.StartRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.BadRequest(w, "invalid request body")
			return
		}
		if len(req.Terms) == 0 {
			httputil.BadRequest(w, "no search terms provided")
			return
		}

		delay := req.Delay
		if delay == 0 {
			delay = defaultDelaySeconds
		}

		browserName := req.Browser
		if browserName == "" {
			browserName = string(browser.KindChrome)
		}
		kind, err := browser.ParseKind(browserName)
		if err != nil {
			httputil.BadRequest(w, err.Error())
			return
		}

		var profiles []browser.Profile
		if kind.SupportsProfiles() {
			profiles = req.SelectedProfiles
			if len(profiles) == 0 {
				profiles = svcCtx.Store.SelectedProfiles()
			}
			if len(profiles) == 0 && !req.UseDefaultIfNoProfile {
				httputil.BadRequest(w, "no Chrome profiles selected; pass useDefaultIfNoProfile to use the default profile")
				return
			}
		}

		runID, err := svcCtx.Runner.Start(runner.Config{
			Terms:        req.Terms,
			DelaySeconds: delay,
			Browser:      kind,
			Profiles:     profiles,
		})
		switch {
		case errors.Is(err, runner.ErrAlreadyRunning):
			httputil.Conflict(w, "automation is already running")
			return
		case errors.Is(err, runner.ErrNoInputBackend):
			httputil.ErrorWithCode(w, http.StatusServiceUnavailable, err.Error())
			return
		case err != nil:
			httputil.BadRequest(w, err.Error())
			return
		}

		httputil.WriteJSON(w, http.StatusAccepted, &types.StartResponse{
			Message: "Automation started",
			RunID:   runID,
		})
	}
}
