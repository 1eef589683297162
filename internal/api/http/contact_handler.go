package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arka-001/portfolio-edge/internal/contact"
)

// ContactHandler validates and forwards contact form submissions to the
// content API. Validation failures come back in the shape the frontend
// already handles: a 400 with {"email": ["..."]} for a rejected address.
type ContactHandler struct {
	submitter *contact.Submitter
}

func NewContactHandler(submitter *contact.Submitter) *ContactHandler {
	return &ContactHandler{submitter: submitter}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var in contact.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, subject and message are required"})
		return
	}

	if !contact.ValidateEmail(in.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"email": []string{"Please enter a valid email format."}})
		return
	}

	result, err := h.submitter.Submit(c.Request.Context(), in)
	if err != nil {
		var submitErr *contact.SubmitError
		if errors.As(err, &submitErr) && submitErr.StatusCode == http.StatusBadRequest {
			// Pass the upstream's field errors through untouched so the
			// form can surface them inline.
			c.Data(http.StatusBadRequest, "application/json", submitErr.Body)
			return
		}

		log.Printf("[error] contact submission error=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Something went wrong. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ContactHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/contact", h.SubmitContact)
}
