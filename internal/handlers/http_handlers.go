package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"wirralclean/internal/models"
	"wirralclean/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// HTTPHandler holds the dependencies for the page and API handlers.
type HTTPHandler struct {
	content    *models.Content
	calculator *services.CalculatorService
	wheel      *services.WheelService
	relay      services.Dispatcher
	templates  *template.Template
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(content *models.Content, calculator *services.CalculatorService, wheel *services.WheelService, relay services.Dispatcher, templates *template.Template) *HTTPHandler {
	configureValidator()
	return &HTTPHandler{
		content:    content,
		calculator: calculator,
		wheel:      wheel,
		relay:      relay,
		templates:  templates,
	}
}

// renderPage is a helper to perform a two-step template rendering.
// It first executes the content template into a buffer, then executes the main
// layout template, passing the rendered content as a variable.
func (h *HTTPHandler) renderPage(c *gin.Context, pageData gin.H, contentTmpl string) {
	pageData["Content"] = h.content

	// Step 1: Render the specific page content into a buffer.
	buf := new(bytes.Buffer)
	err := h.templates.ExecuteTemplate(buf, contentTmpl, pageData)
	if err != nil {
		logger.Errorf("Error executing content template %s: %v", contentTmpl, err)
		c.String(http.StatusInternalServerError, "Template rendering error")
		return
	}

	// Step 2: Add the rendered content to the main data map and render the layout.
	pageData["PageContent"] = template.HTML(buf.String())

	c.Header("Content-Type", "text/html; charset=utf-8")
	err = h.templates.ExecuteTemplate(c.Writer, "layout.html", pageData)
	if err != nil {
		logger.Errorf("Error executing layout template: %v", err)
		c.String(http.StatusInternalServerError, "Template rendering error")
	}
}

// renderPartial writes a template fragment for HTMX swaps.
func (h *HTTPHandler) renderPartial(c *gin.Context, code int, name string, data gin.H) {
	c.Status(code)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		logger.Errorf("Error executing template %s: %v", name, err)
		c.String(http.StatusInternalServerError, "Template error")
	}
}

// RegisterPublicRoutes registers routes that do not need a visitor session.
func (h *HTTPHandler) RegisterPublicRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/", h.ShowIndex)
	router.GET("/landing", h.ShowLanding)
	router.POST("/quote", h.SubmitQuoteForm)
	router.POST("/landing/quote", h.SubmitLandingQuoteForm)

	api := router.Group("/api")
	api.GET("/rooms", h.ListRooms)
	api.POST("/estimate", h.Estimate)
	api.GET("/booking/slots", h.BookingSlots)
	api.POST("/quote", h.SubmitQuoteJSON)
}

// RegisterVisitorRoutes registers routes that read or change visitor state.
// The group must carry VisitorMiddleware.
func (h *HTTPHandler) RegisterVisitorRoutes(group *gin.RouterGroup) {
	group.GET("/calculator", h.ShowCalculator)
	group.GET("/spin", h.ShowSpin)

	api := group.Group("/api")
	api.GET("/calculator", h.CalculatorState)
	api.POST("/calculator/rooms/:id/toggle", h.ToggleRoom)
	api.POST("/calculator/step", h.SetStep)
	api.POST("/calculator/booking", h.SubmitBooking)
	api.POST("/calculator/reset", h.ResetCalculator)

	api.GET("/wheel", h.WheelState)
	api.POST("/wheel/spin", h.Spin)
	api.POST("/wheel/complete", h.CompleteSpin)
	api.POST("/wheel/open-claim", h.OpenClaim)
	api.POST("/wheel/claim", h.Claim)
	api.POST("/wheel/reset", h.ResetWheel)
}

// Health reports liveness.
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ShowIndex handles the request for the home page.
func (h *HTTPHandler) ShowIndex(c *gin.Context) {
	h.renderPage(c, gin.H{
		"title":          "Carpet & Upholstery Cleaning in Wirral, Liverpool & Chester",
		"ServiceOptions": models.ServiceOptions(),
	}, "index.html")
}

// ShowLanding handles the request for the ad landing page.
func (h *HTTPHandler) ShowLanding(c *gin.Context) {
	h.renderPage(c, gin.H{
		"title":          "Free Carpet Cleaning Quote",
		"ServiceOptions": models.ServiceOptions(),
	}, "landing.html")
}

// ShowCalculator handles the request for the price estimator page.
func (h *HTTPHandler) ShowCalculator(c *gin.Context) {
	view, err := h.calculator.State(c.Request.Context(), visitorID(c))
	if err != nil {
		logger.Errorf("Error loading calculator for %s: %v", visitorID(c), err)
		c.String(http.StatusInternalServerError, "Could not load the price estimator")
		return
	}
	h.renderPage(c, gin.H{
		"title":          "Price Estimator",
		"Rooms":          models.Rooms(),
		"Calculator":     view,
		"Selected":       selectedSet(view.State.Rooms),
		"FirstRoomPrice": services.FormatPrice(services.FirstRoomPrice),
		"Dates":          h.calculator.BookingDates(),
		"Slots":          models.TimeSlots(),
	}, "calculator.html")
}

// ShowSpin handles the request for the spin-to-win page.
func (h *HTTPHandler) ShowSpin(c *gin.Context) {
	state, err := h.wheel.State(c.Request.Context(), visitorID(c))
	if err != nil {
		logger.Errorf("Error loading wheel for %s: %v", visitorID(c), err)
		c.String(http.StatusInternalServerError, "Could not load the wheel")
		return
	}
	h.renderPage(c, gin.H{
		"title":          "Spin to Win",
		"Wheel":          state,
		"Slices":         wheelSlices(h.wheel.Segments()),
		"ServiceOptions": models.ServiceOptions(),
	}, "spin.html")
}

// SubmitQuoteForm handles the contact section quote form (HTMX post).
func (h *HTTPHandler) SubmitQuoteForm(c *gin.Context) {
	var form models.QuoteForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderPartial(c, http.StatusBadRequest, "form_errors.html", gin.H{"Errors": fieldErrors(err)})
		return
	}
	h.relayQuote(c, form, services.SubjectQuote)
}

// SubmitLandingQuoteForm handles the landing page quote form (HTMX post).
func (h *HTTPHandler) SubmitLandingQuoteForm(c *gin.Context) {
	var form models.LandingQuoteForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderPartial(c, http.StatusBadRequest, "form_errors.html", gin.H{"Errors": fieldErrors(err)})
		return
	}
	h.relayQuote(c, form.Quote(), services.SubjectLandingQuote)
}

func (h *HTTPHandler) relayQuote(c *gin.Context, form models.QuoteForm, subject string) {
	if c.PostForm("_honey") != "" {
		logger.Infof("Dropped quote with honeypot filled from %s", c.ClientIP())
	} else {
		h.relay.Dispatch(services.QuoteSubmission(form, subject))
	}
	h.renderPartial(c, http.StatusOK, "quote_thanks.html", gin.H{"Name": form.Name, "Content": h.content})
}

func selectedSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
