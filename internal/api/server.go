// Package api exposes the rate system over HTTP: workbook upload,
// rate listing, autosuggest lookups, stats, and password-gated deletes.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ratehub/app"
	"ratehub/domain/rates"
	"ratehub/internal/errors"
)

// maxUploadBytes caps workbook uploads at 25 MB.
const maxUploadBytes = 25 << 20

// Server wires the application services to the HTTP router.
type Server struct {
	importSvc      *app.ImportService
	querySvc       *app.RateQueryService
	lookupSvc      *app.LookupService
	statsSvc       *app.StatsService
	adminSvc       *app.AdminService
	deletePassword string
}

// NewServer creates the HTTP server facade.
func NewServer(
	importSvc *app.ImportService,
	querySvc *app.RateQueryService,
	lookupSvc *app.LookupService,
	statsSvc *app.StatsService,
	adminSvc *app.AdminService,
	deletePassword string,
) *Server {
	return &Server{
		importSvc:      importSvc,
		querySvc:       querySvc,
		lookupSvc:      lookupSvc,
		statsSvc:       statsSvc,
		adminSvc:       adminSvc,
		deletePassword: deletePassword,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/import", s.handleImport)
		r.Get("/rates", s.handleListRates)
		r.Delete("/rates/batch", s.handleDeleteBatch)
		r.Delete("/rates/{id}", s.handleDeleteRate)
		r.Get("/lookup/locations", s.handleLookupLocations)
		r.Get("/lookup/partners", s.handleLookupPartners)
		r.Get("/stats", s.handleStats)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
	})

	return r
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, errors.InvalidInput("expected multipart form with a file field"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.InvalidInput("missing file field"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, errors.Wrap(err, "failed to read upload"))
		return
	}

	result, err := s.importSvc.Import(r.Context(), data, r.FormValue("batchId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"result": result,
	})
}

func (s *Server) handleListRates(w http.ResponseWriter, r *http.Request) {
	result, err := s.querySvc.Query(r.Context(), parseRateQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"mode":     result.Mode,
		"sort":     result.Sort,
		"page":     result.Page,
		"pageSize": result.PageSize,
		"total":    result.Total,
		"items":    result.Items,
	})
}

// parseRateQuery maps URL parameters onto a rate query. validDate is a
// shorthand for a single-day validity window. Malformed filter values
// degrade to their defaults; a listing request never fails on input.
func parseRateQuery(r *http.Request) rates.Query {
	v := r.URL.Query()

	mode, _ := rates.ParseMode(v.Get("mode"))
	q := rates.Query{
		Mode:        mode,
		Origin:      v.Get("origin"),
		Destination: v.Get("destination"),
		Carrier:     v.Get("carrier"),
		Base:        v.Get("base"),
		Sort:        v.Get("sort"),
	}
	if q.Base == "" {
		q.Base = v.Get("baseContainer")
	}

	if raw := v.Get("weight"); raw != "" {
		if weight, err := strconv.ParseFloat(raw, 64); err == nil {
			q.Weight = weight
		}
	}
	if raw := v.Get("page"); raw != "" {
		q.Page, _ = strconv.Atoi(raw)
	}
	if raw := v.Get("pageSize"); raw != "" {
		q.PageSize, _ = strconv.Atoi(raw)
	}

	q.ValidFrom = parseDateParam(v.Get("validFrom"))
	q.ValidTo = parseDateParam(v.Get("validTo"))

	if raw := v.Get("validDate"); raw != "" && q.ValidFrom == nil && q.ValidTo == nil {
		if day := parseDateParam(raw); day != nil {
			q.ValidFrom, q.ValidTo = day, day
		}
	}

	return q
}

// parseDateParam returns nil for absent or unparseable dates, leaving
// the corresponding window bound unbounded.
func parseDateParam(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func (s *Server) handleDeleteRate(w http.ResponseWriter, r *http.Request) {
	if !s.authorizeDelete(r) {
		writeError(w, errors.Unauthorized("invalid delete password"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, errors.InvalidInput("id must be an integer"))
		return
	}

	mode, ok := rates.ParseMode(r.URL.Query().Get("mode"))
	if !ok {
		writeError(w, errors.InvalidInput("mode is required"))
		return
	}

	if err := s.adminSvc.DeleteRate(r.Context(), mode, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}

func (s *Server) handleDeleteBatch(w http.ResponseWriter, r *http.Request) {
	if !s.authorizeDelete(r) {
		writeError(w, errors.Unauthorized("invalid delete password"))
		return
	}

	// mode is optional here; an empty mode sweeps all collections.
	mode, _ := rates.ParseMode(r.URL.Query().Get("mode"))

	removed, err := s.adminSvc.DeleteBatch(r.Context(), mode, r.URL.Query().Get("batchId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"removed": removed,
	})
}

func (s *Server) authorizeDelete(r *http.Request) bool {
	return r.Header.Get("X-Delete-Password") == s.deletePassword
}

func (s *Server) handleLookupLocations(w http.ResponseWriter, r *http.Request) {
	values, err := s.lookupSvc.Locations(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "items": values})
}

func (s *Server) handleLookupPartners(w http.ResponseWriter, r *http.Request) {
	values, err := s.lookupSvc.Partners(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "items": values})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	report, err := s.statsSvc.Collect(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "stats": report})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]interface{}{
		"ok":    false,
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeValidationError:
		return http.StatusBadRequest
	case errors.CodeUnauthorized:
		return http.StatusForbidden
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeImportNoMatch:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
