package content_api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"ms-content/internal/content/service"
	"ms-content/internal/donation/qr"
	"ms-content/internal/logger"
	"ms-content/internal/store"
	"ms-content/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const maxNewsLimit = 50

// Handler serves the read-only content endpoints consumed by the website.
type Handler struct {
	Service     *service.ContentService
	QRGenerator *qr.QRGenerator
	Logger      *logger.Logger

	// AllowedOrigins enables CORS for the public site when non-empty.
	AllowedOrigins []string
}

func NewHandler(svc *service.ContentService, log *logger.Logger) *Handler {
	return &Handler{
		Service:     svc,
		QRGenerator: qr.NewQRGenerator(qr.DefaultSize),
		Logger:      log,
	}
}

// RegisterRoutes registers the content routes on a chi router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.logRequests)

		r.Get("/programs", h.ListPrograms)
		r.Get("/programs/categories", h.ListProgramCategories)
		r.Get("/leadership", h.ListLeadership)
		r.Get("/testimonials", h.ListTestimonials)
		r.Get("/events", h.ListEvents)
		r.Get("/news", h.ListNews)
		r.Get("/hero", h.GetHero)
		r.Get("/about", h.GetAbout)
		r.Get("/contact", h.GetContact)
		r.Get("/donation", h.GetDonation)
		r.Get("/donation/qr", h.GetDonationQR)
		r.Get("/donation/amounts", h.GetDonationAmounts)
	})
}

// Router builds a chi router with the content routes and standard
// middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if len(h.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	h.RegisterRoutes(r)
	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.Logger.LogAPI(r.Method, r.URL.Path, strconv.Itoa(ww.Status()), time.Since(start).String())
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, utils.SuccessResponse("content service is healthy", nil))
}

func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.Service.Programs(r.Context())
	if err != nil {
		h.fail(w, "Failed to load programs", err)
		return
	}
	h.respond(w, http.StatusOK, programs)
}

func (h *Handler) ListProgramCategories(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Service.ProgramCategories(r.Context())
	if err != nil {
		h.fail(w, "Failed to load program categories", err)
		return
	}
	h.respond(w, http.StatusOK, groups)
}

func (h *Handler) ListLeadership(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.Service.Leaders(r.Context())
	if err != nil {
		h.fail(w, "Failed to load leadership", err)
		return
	}
	h.respond(w, http.StatusOK, leaders)
}

func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.Service.Testimonials(r.Context())
	if err != nil {
		h.fail(w, "Failed to load testimonials", err)
		return
	}
	h.respond(w, http.StatusOK, testimonials)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.UpcomingEvents(r.Context())
	if err != nil {
		h.fail(w, "Failed to load events", err)
		return
	}
	h.respond(w, http.StatusOK, events)
}

// ListNews accepts an optional limit between 1 and 50.
func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxNewsLimit {
			h.badRequest(w, "Invalid limit", fmt.Errorf("limit must be between 1 and %d", maxNewsLimit))
			return
		}
		limit = n
	}

	news, err := h.Service.News(r.Context(), limit)
	if err != nil {
		h.fail(w, "Failed to load news", err)
		return
	}
	h.respond(w, http.StatusOK, news)
}

func (h *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.Service.Hero(r.Context())
	if err != nil {
		h.fail(w, "Failed to load hero content", err)
		return
	}
	h.respond(w, http.StatusOK, hero)
}

func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.Service.About(r.Context())
	if err != nil {
		h.fail(w, "Failed to load about content", err)
		return
	}
	h.respond(w, http.StatusOK, about)
}

func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.Service.Contact(r.Context())
	if err != nil {
		h.fail(w, "Failed to load contact info", err)
		return
	}
	h.respond(w, http.StatusOK, contact)
}

func (h *Handler) GetDonation(w http.ResponseWriter, r *http.Request) {
	donation, err := h.Service.Donation(r.Context())
	if err != nil {
		h.fail(w, "Failed to load donation details", err)
		return
	}
	h.respond(w, http.StatusOK, donation)
}

// GetDonationAmounts lists the suggested amounts, empty when none are set.
func (h *Handler) GetDonationAmounts(w http.ResponseWriter, r *http.Request) {
	donation, err := h.Service.Donation(r.Context())
	if err != nil {
		h.fail(w, "Failed to load donation details", err)
		return
	}
	amounts := qr.SuggestedAmounts(donation)
	if amounts == nil {
		amounts = []int{}
	}
	h.respond(w, http.StatusOK, amounts)
}

// GetDonationQR returns a PNG UPI payment code. The amount query parameter
// is optional.
func (h *Handler) GetDonationQR(w http.ResponseWriter, r *http.Request) {
	amount := 0
	if raw := r.URL.Query().Get("amount"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.badRequest(w, "Invalid amount", qr.ErrInvalidAmount)
			return
		}
		amount = n
	}

	donation, err := h.Service.Donation(r.Context())
	if err != nil {
		h.fail(w, "Failed to load donation details", err)
		return
	}

	png, err := h.QRGenerator.Generate(donation, amount)
	if errors.Is(err, qr.ErrNoUPI) {
		h.respond(w, http.StatusNotFound, utils.ErrorResponse("UPI donations are not configured", err.Error()))
		return
	}
	if err != nil {
		h.fail(w, "Failed to generate QR code", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetDonationQR: failed to write response: %v", err))
	}
}

func (h *Handler) respond(w http.ResponseWriter, status int, body interface{}) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		h.Logger.Error("API", fmt.Sprintf("failed to encode response: %v", err))
	}
}

// fail maps store errors to a status: unseeded singletons are 404, anything
// else is 500.
func (h *Handler) fail(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, store.ErrNotFound) {
		status = http.StatusNotFound
	} else {
		h.Logger.Error("API", fmt.Sprintf("%s: %v", message, err))
	}
	if werr := utils.WriteError(w, status, message, err); werr != nil {
		h.Logger.Error("API", fmt.Sprintf("failed to encode error: %v", werr))
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, message string, err error) {
	if werr := utils.WriteError(w, http.StatusBadRequest, message, err); werr != nil {
		h.Logger.Error("API", fmt.Sprintf("failed to encode error: %v", werr))
	}
}
