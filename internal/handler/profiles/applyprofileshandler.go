package profiles

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/searchbot/searchbot/internal/browser"
	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

// ApplyProfilesHandler validates the requested selection against the
// enumerated profiles and persists the valid subset. Unknown profiles are
// reported in a warning rather than failing the whole request.
func ApplyProfilesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ApplyProfilesRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.BadRequest(w, "invalid request body")
			return
		}

		known := make(map[string]browser.Profile)
		for _, p := range svcCtx.RefreshProfiles() {
			known[p.Directory] = p
		}

		var valid []browser.Profile
		var invalid []string
		for _, p := range req.SelectedProfiles {
			if full, ok := known[p.Directory]; ok {
				valid = append(valid, full)
			} else {
				name := p.Name
				if name == "" {
					name = p.Directory
				}
				invalid = append(invalid, name)
			}
		}

		if err := svcCtx.Store.SaveSelectedProfiles(valid); err != nil {
			httputil.InternalError(w, err.Error())
			return
		}

		resp := &types.ApplyProfilesResponse{
			Message:  fmt.Sprintf("Applied %d profiles", len(valid)),
			Profiles: valid,
		}
		if len(invalid) > 0 {
			resp.Warning = fmt.Sprintf("Profiles not found: %s", strings.Join(invalid, ", "))
		}
		httputil.OkJSON(w, resp)
	}
}
