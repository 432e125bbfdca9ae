package middleware

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// RouteParams copia parâmetros da rota para os campos de log da requisição.
// Precisa rodar depois do httprouter, como middleware de rota.
func RouteParams(names ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params := httprouter.ParamsFromContext(r.Context())
			for _, name := range names {
				if value := params.ByName(name); value != "" {
					log.AddRequestField(r.Context(), name, value)
				}
			}

			if window := r.URL.Query().Get("window"); window != "" {
				log.AddRequestField(r.Context(), "window", window)
			}

			next.ServeHTTP(w, r)
		})
	}
}
