package routes

import (
	"github.com/gin-gonic/gin"

	httpapi "github.com/arka-001/portfolio-edge/internal/api/http"
	"github.com/arka-001/portfolio-edge/internal/api/http/middleware"
	"github.com/arka-001/portfolio-edge/internal/contact"
	"github.com/arka-001/portfolio-edge/internal/content"
)

type V1Deps struct {
	Client    *content.Client
	Submitter *contact.Submitter

	// Contact rate limit, per client IP.
	ContactRatePerMinute int
	ContactBurst         int
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	contentHandler := httpapi.NewContentHandler(dep.Client)
	contentHandler.RegisterRoutes(api)

	contactGroup := api.Group("")
	contactGroup.Use(middleware.RateLimitMiddleware(dep.ContactRatePerMinute, dep.ContactBurst))

	contactHandler := httpapi.NewContactHandler(dep.Submitter)
	contactHandler.RegisterRoutes(contactGroup)
}
