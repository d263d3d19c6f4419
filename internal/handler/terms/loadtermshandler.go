package terms

import (
	"net/http"

	"github.com/searchbot/searchbot/internal/httputil"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

// LoadTermsHandler serves the persisted term list. A missing document is an
// empty list, never an error.
func LoadTermsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		terms := svcCtx.Store.Terms()
		if terms == nil {
			terms = []string{}
		}
		httputil.OkJSON(w, &types.LoadTermsResponse{Terms: terms})
	}
}
