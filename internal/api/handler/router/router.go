package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// Route é uma rota com middlewares próprios, aplicados depois do roteamento
// para que enxerguem os parâmetros do caminho
type Route struct {
	Method      string
	Path        string
	Handler     http.Handler
	Middlewares []alice.Constructor
}

type Option func(*Router)

func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		for _, route := range routes {
			r.Handle(route)
		}
	}
}

// Router responde rotas desconhecidas no mesmo formato de erro da API
type Router struct {
	mux *httprouter.Router
}

func New(opts ...Option) *Router {
	mux := httprouter.New()
	mux.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada: "+r.URL.Path, nil)
	})
	mux.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método "+r.Method+" não suportado em "+r.URL.Path, nil)
	})

	rt := &Router{mux: mux}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (r *Router) Handle(route Route) {
	r.mux.Handler(route.Method, route.Path, alice.New(route.Middlewares...).Then(route.Handler))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
