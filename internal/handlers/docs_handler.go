package handlers

import (
	"crypto/md5"
	"embed"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed docs/scalar.html docs/openapi.json
var docsFS embed.FS

// docsCSP lets the Scalar bundle load from its CDN on the docs page only
const docsCSP = "default-src 'none'; script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; font-src https://cdn.jsdelivr.net https://fonts.scalar.com; img-src 'self' data:; connect-src 'self'; frame-ancestors 'none'"

// DocsHandler handles API documentation endpoints
type DocsHandler struct {
	scalarHTML  []byte
	scalarETag  string
	openAPI     []byte
	openAPIETag string
}

// NewDocsHandler creates a new documentation handler from the embedded assets
func NewDocsHandler() *DocsHandler {
	scalarHTML, _ := docsFS.ReadFile("docs/scalar.html")
	openAPI, _ := docsFS.ReadFile("docs/openapi.json")

	return &DocsHandler{
		scalarHTML:  scalarHTML,
		scalarETag:  generateETag(scalarHTML),
		openAPI:     openAPI,
		openAPIETag: generateETag(openAPI),
	}
}

// ServeScalarUI serves the Scalar HTML page
// @Summary API Documentation UI
// @Description Serves the interactive Scalar documentation interface
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Content-Security-Policy", docsCSP)

	if notModified(c, h.scalarETag) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOpenAPI serves the OpenAPI document
// This endpoint is called by Scalar to load the API specification
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().Header().Set("Cache-Control", "public, max-age=300")

	if notModified(c, h.openAPIETag) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, "application/json; charset=utf-8", h.openAPI)
}

func notModified(c echo.Context, etag string) bool {
	if etag == "" {
		return false
	}
	c.Response().Header().Set("ETag", etag)
	match := c.Request().Header.Get("If-None-Match")
	return match != "" && match == etag
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
