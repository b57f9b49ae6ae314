package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/yanqian/hireup-faq/internal/domain/faq"
	"github.com/yanqian/hireup-faq/internal/interface/http/view"
)

// Handler wires the HTTP transport to the FAQ service.
type Handler struct {
	faqSvc faq.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Page renders the FAQ page for the search parameter in the URL.
func (h *Handler) Page(c *gin.Context) {
	page, err := h.faqSvc.Page(c.Request.Context(), sessionID(c), c.Query(faq.QueryParam))
	if err != nil {
		abortWithError(c, fromDomainError(err, "faq_failed"))
		return
	}
	h.render(c, http.StatusOK, view.Document(page))
}

// SubmitSearch moves the search box text into the URL. When there is nothing
// to change it answers 204 so the browser stays where it is.
func (h *Handler) SubmitSearch(c *gin.Context) {
	nav := h.faqSvc.SubmitSearch(c.PostForm(faq.QueryParam), c.PostForm("active"))
	if !nav.Navigate {
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, nav.Location)
}

// Toggle expands or collapses one item.
func (h *Handler) Toggle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "item id must be a positive integer", err))
		return
	}
	if _, err := h.faqSvc.Toggle(c.Request.Context(), sessionID(c), id); err != nil {
		abortWithError(c, fromDomainError(err, "toggle_failed"))
		return
	}
	h.afterToggle(c, "#faq-"+strconv.Itoa(id))
}

// ToggleAll expands every item, or collapses them when all are open.
func (h *Handler) ToggleAll(c *gin.Context) {
	if _, err := h.faqSvc.ToggleAll(c.Request.Context(), sessionID(c)); err != nil {
		abortWithError(c, fromDomainError(err, "toggle_failed"))
		return
	}
	h.afterToggle(c, "")
}

// ListFAQs returns the filtered dataset as JSON.
func (h *Handler) ListFAQs(c *gin.Context) {
	query := c.Query(faq.QueryParam)
	c.JSON(http.StatusOK, gin.H{
		"query": query,
		"items": h.faqSvc.Search(query),
	})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// afterToggle answers htmx with the refreshed panel and plain forms with a
// redirect back to the page, keeping the active search.
func (h *Handler) afterToggle(c *gin.Context, anchor string) {
	query := c.PostForm(faq.QueryParam)
	if !isHTMXRequest(c.Request) {
		c.Redirect(http.StatusSeeOther, h.faqSvc.Location(query)+anchor)
		return
	}
	page, err := h.faqSvc.Page(c.Request.Context(), sessionID(c), query)
	if err != nil {
		abortWithError(c, fromDomainError(err, "faq_failed"))
		return
	}
	h.render(c, http.StatusOK, view.Panel(page))
}

func (h *Handler) render(c *gin.Context, status int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(c.Request.Context(), &buf); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "render_failed", "failed to render page", err))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
