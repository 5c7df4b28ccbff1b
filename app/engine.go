package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Engine is the HTTP shell of the service: shared middleware plus the
// operational endpoints. Business routes are attached through WithRoutes
// and stay out of this package.
type Engine struct {
	*Options
	*gin.Engine
}

var methods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodHead, http.MethodOptions}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Options: NewOptions(opts...),
	}

	if !e.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	e.Engine = gin.Default()

	e.Use(RequestID())
	if e.CorsMode {
		e.Use(Cors())
	}

	e.InstallHandlers()

	for _, route := range e.RouteFuncs {
		if route != nil {
			route(e.Engine)
		}
	}

	return e
}

func (e *Engine) InstallHandlers() {
	e.HandleAllMethods("/", e.OK)
	e.HandleAllMethods("/health-check", e.OK)
	e.GET("/meta", e.Meta)
}

func (e *Engine) HandleAllMethods(relativePath string, handlers ...gin.HandlerFunc) {
	for _, method := range methods {
		e.Handle(method, relativePath, handlers...)
	}
}

func (e *Engine) OK(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (e *Engine) Meta(c *gin.Context) {
	meta := NewMetaGenerator().Generate(e.MetaExtra)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(meta))
}
