package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with either a rendered template or a redirect, so
// the helpers here cover exactly those two shapes.

// Page renders the named template with the given status.
func Page(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

// InvalidForm re-renders a form template with its Invalid flag raised.
func InvalidForm(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Invalid"] = true
	c.HTML(status, name, data)
}

// SeeOther redirects after a form submission so a browser refresh does not
// replay the POST.
func SeeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// Found redirects a plain GET.
func Found(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// Created answers 201 with a Location header pointing at the list view.
func Created(c *gin.Context, location string) {
	c.Header("Location", location)
	c.Status(http.StatusCreated)
}

// InternalError logs the failure and answers 500. Unexpected errors never
// leak their message into the page.
func InternalError(c *gin.Context, err error) {
	slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
	c.String(http.StatusInternalServerError, "internal server error")
}
