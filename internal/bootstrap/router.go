package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/arka-001/portfolio-edge/internal/api/http"
	"github.com/arka-001/portfolio-edge/internal/api/http/middleware"
	"github.com/arka-001/portfolio-edge/internal/api/http/routes"
	"github.com/arka-001/portfolio-edge/internal/contact"
	"github.com/arka-001/portfolio-edge/internal/content"
	"github.com/arka-001/portfolio-edge/internal/upstream"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string

	Client    *content.Client
	Submitter *contact.Submitter
	Probe     *upstream.Probe

	ContactRatePerMinute int
	ContactBurst         int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Probe)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Client:               dep.Client,
		Submitter:            dep.Submitter,
		ContactRatePerMinute: dep.ContactRatePerMinute,
		ContactBurst:         dep.ContactBurst,
	})

	return r
}
