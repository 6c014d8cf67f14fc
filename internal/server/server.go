package server

import (
	"ycliu87/Car-Garage/internal/api/controller"

	"github.com/gin-gonic/gin"
)

// Config carries the asset locations the engine needs at construction.
type Config struct {
	TemplatesGlob string
	StaticDir     string
}

// Server owns the gin engine and the route table.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the engine, loads the templates and wires every route to
// its controller.
func NewServer(cfg Config, catalog *controller.CatalogController, auth *controller.AuthController) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(), Tracing())

	engine.LoadHTMLGlob(cfg.TemplatesGlob)
	if cfg.StaticDir != "" {
		engine.Static("/static", cfg.StaticDir)
	}

	// Catalog
	engine.GET("/", catalog.Home)
	engine.GET("/cars", catalog.List)
	engine.GET("/create-car", catalog.CreateForm)
	engine.POST("/cars", catalog.Create)
	engine.GET("/car/:id", catalog.Detail)
	engine.GET("/update-car/:id", catalog.UpdateForm)
	engine.POST("/update-car/:id", catalog.Update)
	engine.GET("/delete-car/:id", catalog.Delete)
	engine.POST("/search", catalog.Search)
	engine.GET("/404", catalog.NotFoundPage)

	// Session/Auth
	engine.GET("/register", auth.RegisterForm)
	engine.POST("/register", auth.Register)
	engine.GET("/login", auth.LoginForm)
	engine.POST("/login", auth.Login)
	engine.GET("/logout", auth.Logout)
	engine.GET("/user", auth.Profile)

	return &Server{engine: engine}
}

// Engine exposes the underlying gin engine for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
