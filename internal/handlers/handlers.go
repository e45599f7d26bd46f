package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"companyexport/internal/config"
	"companyexport/internal/exporter"
	"companyexport/internal/services"
	"companyexport/internal/shortcuts"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Controller wires the HTTP surface to the company service.
type Controller struct {
	conf           *config.Config
	companyService services.CompanyService
	exp            *exporter.Exporter
	sugar          *zap.SugaredLogger
}

func NewController(conf *config.Config, companyService services.CompanyService, exp *exporter.Exporter, sugar *zap.SugaredLogger) *Controller {
	return &Controller{
		conf:           conf,
		companyService: companyService,
		exp:            exp,
		sugar:          sugar,
	}
}

// downloadURL builds the retrieval URL for an export artifact.
func (con *Controller) downloadURL(filename string) string {
	return con.conf.BaseURL + "/download/" + filename
}

// parseLimit reads the limit query parameter, falling back to def when the
// parameter is absent or not a number. Bounds are enforced by the service.
func parseLimit(req *http.Request, def int64) int64 {
	raw := req.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return limit
}

// ExportCompany serves GET / and GET /export.
//
//   - Accepts ?export= or ?c= (shortcut alias or full company name).
//   - mode=file -> attachment (application/octet-stream) with X-Download-Link
//   - mode=json -> inline JSON body with embedded download link
//   - mode=link -> JSON with just the link
func (con *Controller) ExportCompany() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		query := req.URL.Query()
		value := query.Get("export")
		if value == "" {
			value = query.Get("c")
		}
		if value == "" {
			errorJSON(res, "Missing query param 'export' (or 'c').", http.StatusBadRequest)
			return
		}

		limit := parseLimit(req, services.DefaultExportLimit)

		_, filename, docs, err := con.companyService.Export(req.Context(), value, limit)
		if err != nil {
			con.respondLookupError(res, err)
			return
		}

		url := con.downloadURL(filename)

		switch query.Get("mode") {
		case "json":
			respondJSON(res, http.StatusOK, map[string]any{
				"download_url": url,
				"data":         docs,
			})
		case "link":
			respondJSON(res, http.StatusOK, map[string]any{
				"download_url": url,
			})
		default:
			con.serveArtifact(res, req, filename, url)
		}
	}
}

// LookupCompany serves GET /company: an inline lookup without an export
// artifact.
func (con *Controller) LookupCompany() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		query := req.URL.Query()
		name := query.Get("name")
		if name == "" {
			errorJSON(res, "Missing query param 'name'.", http.StatusBadRequest)
			return
		}

		limit := parseLimit(req, services.DefaultLookupLimit)

		_, docs, err := con.companyService.Lookup(req.Context(), name, query.Get("country"), limit)
		if err != nil {
			con.respondLookupError(res, err)
			return
		}

		respondJSON(res, http.StatusOK, docs)
	}
}

// DownloadFile serves GET /download/{filename}.
func (con *Controller) DownloadFile() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		filename := chi.URLParam(req, "filename")

		path, ok := con.exp.Path(filename)
		if !ok {
			errorJSON(res, "File not found", http.StatusNotFound)
			return
		}

		res.Header().Set("Content-Type", "application/octet-stream")
		res.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		http.ServeFile(res, req, path)
	}
}

// serveArtifact returns the freshly written export as a file attachment.
func (con *Controller) serveArtifact(res http.ResponseWriter, req *http.Request, filename, url string) {
	path, ok := con.exp.Path(filename)
	if !ok {
		errorJSON(res, "File not found", http.StatusNotFound)
		return
	}

	res.Header().Set("Content-Type", "application/octet-stream")
	res.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	res.Header().Set("X-Download-Link", url)
	http.ServeFile(res, req, path)
}

// HealthHandler serves GET /health: pings the database and reports an
// estimated document count.
func (con *Controller) HealthHandler() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		if err := con.companyService.Ping(req.Context()); err != nil {
			con.sugar.Errorf("health ping failed: %s", err.Error())
			errorJSON(res, "database connection error", http.StatusInternalServerError)
			return
		}

		count, err := con.companyService.EstimatedCount(req.Context())
		if err != nil {
			con.sugar.Errorf("estimated count failed: %s", err.Error())
			errorJSON(res, "database connection error", http.StatusInternalServerError)
			return
		}

		respondJSON(res, http.StatusOK, map[string]any{
			"status":              "ok",
			"db":                  con.conf.DBName,
			"collection":          con.conf.CompaniesColl,
			"companies_estimated": count,
		})
	}
}

// ShortcutsHandler serves GET /shortcuts: the static alias table sorted by key.
func (con *Controller) ShortcutsHandler() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		respondJSON(res, http.StatusOK, shortcuts.All())
	}
}

// IngestHandler serves POST /ingest: stores an arbitrary JSON body with a
// received timestamp and returns the generated identifier.
func (con *Controller) IngestHandler() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		var payload any
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			errorJSON(res, "invalid JSON body", http.StatusBadRequest)
			return
		}

		id, err := con.companyService.Ingest(req.Context(), payload)
		if err != nil {
			con.sugar.Errorf("ingest insert failed: %s", err.Error())
			errorJSON(res, "ingest failed", http.StatusInternalServerError)
			return
		}

		respondJSON(res, http.StatusOK, map[string]any{
			"ok": true,
			"id": id,
		})
	}
}

// respondLookupError maps service errors to HTTP responses: a missed lookup
// becomes 404 with a detail naming the query, anything else is a 500.
func (con *Controller) respondLookupError(res http.ResponseWriter, err error) {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		errorJSON(res, notFound.Error(), http.StatusNotFound)
		return
	}

	con.sugar.Errorf("lookup failed: %s", err.Error())
	errorJSON(res, "Internal Server Error", http.StatusInternalServerError)
}
