package terms

import (
	"fmt"
	"net/http"

	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

// SaveTermsHandler persists the term list to the data directory.
func SaveTermsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SaveTermsRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.BadRequest(w, "invalid request body")
			return
		}
		if err := svcCtx.Store.SaveTerms(req.Terms); err != nil {
			httputil.InternalError(w, err.Error())
			return
		}
		httputil.OkJSON(w, &types.SaveTermsResponse{
			Message: fmt.Sprintf("Saved %d terms", len(req.Terms)),
		})
	}
}
