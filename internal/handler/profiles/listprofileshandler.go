package profiles

import (
	"net/http"

	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

// ListProfilesHandler enumerates Chrome profiles from disk on every
// request, so profiles created or renamed while the server runs show up on
// the next poll.
func ListProfilesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.OkJSON(w, &types.ProfilesResponse{Profiles: svcCtx.RefreshProfiles()})
	}
}
