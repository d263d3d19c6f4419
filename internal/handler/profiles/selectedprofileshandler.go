package profiles

import (
	"net/http"

	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

// SelectedProfilesHandler serves the persisted profile selection.
func SelectedProfilesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.OkJSON(w, &types.ProfilesResponse{Profiles: svcCtx.Store.SelectedProfiles()})
	}
}
