package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"

	"journey-route-service/internal/api/handlers"
	"journey-route-service/internal/ports"
)

// NewRouter wires preview handlers with their dependencies and returns an
// http.Handler. The map frontend runs on another port during writing, so
// responses allow cross-origin reads.
func NewRouter(loader ports.EntryLoader, routesDir string) http.Handler {
	router := httprouter.New()

	entryHandler := &handlers.EntryHandler{Loader: loader}
	routeHandler := &handlers.RouteHandler{Dir: routesDir}

	router.HandlerFunc(http.MethodGet, "/health", handlers.Health)
	router.HandlerFunc(http.MethodGet, "/entries", entryHandler.List)
	router.GET("/routes/:stem", routeHandler.Get)

	var h http.Handler = router
	h = gzhttp.GzipHandler(h)
	h = cors.Default().Handler(h)
	return loggingMiddleware(h)
}
