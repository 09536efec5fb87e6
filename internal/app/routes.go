package app

import (
	"strings"

	"github.com/vancomm/minefield-annotator/internal/handlers"
)

func (a *App) loadRoutes() {
	annotate := handlers.NewAnnotateHandler(a.log, a.ws)

	base := strings.TrimSuffix(a.opts.BasePath, "/")
	a.router.HandleFunc("POST "+base+"/annotate", annotate.Annotate)
	a.router.HandleFunc("GET "+base+"/annotate/connect", annotate.ConnectWS)
	a.router.HandleFunc("GET "+base+"/healthz", annotate.Health)
}
