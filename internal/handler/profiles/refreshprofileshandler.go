package profiles

import (
	"net/http"

	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

// RefreshProfilesHandler re-enumerates profiles from disk.
func RefreshProfilesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.OkJSON(w, &types.ProfilesResponse{Profiles: svcCtx.RefreshProfiles()})
	}
}
