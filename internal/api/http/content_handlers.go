package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arka-001/portfolio-edge/internal/content"
	"github.com/arka-001/portfolio-edge/internal/sections"
)

// ContentHandler exposes the resolved content categories. Every endpoint
// answers 200 with live-or-fallback data; an unreachable upstream is not an
// error here.
type ContentHandler struct {
	client *content.Client
}

func NewContentHandler(client *content.Client) *ContentHandler {
	return &ContentHandler{client: client}
}

// skillView and serviceView attach the resolved glyph so the frontend does
// not have to carry the dispatch table.
type skillView struct {
	content.Skill
	Glyph content.Glyph `json:"glyph"`
}

type serviceView struct {
	content.Service
	Glyph content.Glyph `json:"glyph"`
}

func (h *ContentHandler) GetHero(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.Hero(c.Request.Context()))
}

func (h *ContentHandler) GetAbout(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.About(c.Request.Context()))
}

func (h *ContentHandler) GetSkills(c *gin.Context) {
	skills := h.client.Skills(c.Request.Context())
	views := make([]skillView, 0, len(skills))
	for _, s := range skills {
		views = append(views, skillView{Skill: s, Glyph: content.SkillGlyph(s)})
	}
	c.JSON(http.StatusOK, views)
}

func (h *ContentHandler) GetProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.Projects(c.Request.Context()))
}

func (h *ContentHandler) GetEducation(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.Education(c.Request.Context()))
}

func (h *ContentHandler) GetServices(c *gin.Context) {
	services := h.client.Services(c.Request.Context())
	views := make([]serviceView, 0, len(services))
	for _, s := range services {
		views = append(views, serviceView{Service: s, Glyph: content.ServiceGlyph(s.Icon)})
	}
	c.JSON(http.StatusOK, views)
}

func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.Testimonials(c.Request.Context()))
}

func (h *ContentHandler) GetBlogPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.BlogPosts(c.Request.Context()))
}

// heroViewResponse adds the computed WhatsApp deep link to the merged view.
type heroViewResponse struct {
	sections.HeroView
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}

// GetHeroView returns the merged hero + about view the landing section
// renders, hero and about fetched concurrently.
func (h *ContentHandler) GetHeroView(c *gin.Context) {
	view := sections.LoadHero(c.Request.Context(), h.client)
	c.JSON(http.StatusOK, heroViewResponse{
		HeroView:     view,
		WhatsAppLink: view.WhatsAppLink(),
	})
}

// aboutViewResponse adds the filtered social links to the about view.
type aboutViewResponse struct {
	sections.AboutView
	SocialLinks []sections.SocialLink `json:"social_links"`
}

// GetAboutView returns the profile + skills view.
func (h *ContentHandler) GetAboutView(c *gin.Context) {
	view := sections.LoadAbout(c.Request.Context(), h.client)
	c.JSON(http.StatusOK, aboutViewResponse{
		AboutView:   view,
		SocialLinks: view.SocialLinks(),
	})
}

// GetBlogView returns the latest posts for the homepage blog section.
func (h *ContentHandler) GetBlogView(c *gin.Context) {
	c.JSON(http.StatusOK, sections.LoadBlog(c.Request.Context(), h.client))
}

func (h *ContentHandler) RegisterRoutes(r gin.IRouter) {
	cg := r.Group("/content")
	cg.GET("/hero", h.GetHero)
	cg.GET("/about", h.GetAbout)
	cg.GET("/skills", h.GetSkills)
	cg.GET("/projects", h.GetProjects)
	cg.GET("/education", h.GetEducation)
	cg.GET("/services", h.GetServices)
	cg.GET("/testimonials", h.GetTestimonials)
	cg.GET("/blog", h.GetBlogPosts)

	vg := r.Group("/views")
	vg.GET("/hero", h.GetHeroView)
	vg.GET("/about", h.GetAboutView)
	vg.GET("/blog", h.GetBlogView)
}
