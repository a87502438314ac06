package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/ignite/ads-renamer/internal/bulkfile"
	"github.com/ignite/ads-renamer/internal/engine"
	"github.com/ignite/ads-renamer/internal/naming"
	"github.com/ignite/ads-renamer/internal/report"
	"github.com/ignite/ads-renamer/internal/session"
)

const defaultPageSize = 10

// HandleCreateSession ingests an uploaded bulk workbook, runs the full
// aggregation and ranking pass, and opens a session around the result.
// Multipart field: "file".
func (h *Handlers) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Upload.MaxBytes())

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing upload field \"file\"")
		return
	}
	defer file.Close()

	sheet, err := bulkfile.ReadWorkbook(file)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, bulkfile.ErrNoSponsoredProducts) {
			status = http.StatusBadRequest
		}
		respondError(w, status, err.Error())
		return
	}

	res := engine.Aggregate(sheet.Rows)
	engine.Rank(res)

	elements, err := naming.ParseElements(h.config.Naming.DefaultElements)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "default naming scheme invalid: "+err.Error())
		return
	}
	scheme := naming.Scheme{Elements: elements, Prefix: h.config.Naming.DefaultPrefix}

	sess := h.store.Create(res, scheme)
	log.Printf("[api] session %s: %s (%d campaigns, %d diagnostics)",
		sess.ID, header.Filename, len(res.Order), len(res.Diagnostics))

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"session_id":  sess.ID,
		"sheet":       sheet.Name,
		"campaigns":   len(res.Order),
		"diagnostics": res.Diagnostics,
	})
}

// HandleDeleteSession discards a session ("start over").
func (h *Handlers) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	h.store.Delete(sess.ID)
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type schemeRequest struct {
	Elements   []string       `json:"elements"`
	Separators map[int]string `json:"separators"`
	Prefix     string         `json:"prefix"`
}

// HandleSetScheme replaces the session's naming scheme.
func (h *Handlers) HandleSetScheme(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	var req schemeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	elements, err := naming.ParseElements(req.Elements)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	scheme := naming.Scheme{Elements: elements, Separators: req.Separators, Prefix: req.Prefix}

	h.store.Update(sess.ID, func(s *session.Session) {
		s.Scheme = scheme
	})
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// HandleUploadShortNames validates and installs the (ASIN, ShortName)
// mapping. All-or-nothing: any issue rejects the whole mapping.
func (h *Handlers) HandleUploadShortNames(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Upload.MaxBytes())

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing upload field \"file\"")
		return
	}
	defer file.Close()

	rows, err := bulkfile.ReadMappingRows(file)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	mapping, issues := naming.BuildShortNames(rows, sess.Result.AsinSet())
	if len(issues) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"accepted": false,
			"issues":   issues,
		})
		return
	}

	h.store.Update(sess.ID, func(s *session.Session) {
		s.ShortNames = mapping
	})
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"accepted": true,
		"count":    len(mapping),
	})
}

// HandleListCampaigns returns a paginated rename preview. Query params:
// page (1-based), per_page, campaign_id (exact-match filter).
func (h *Handlers) HandleListCampaigns(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	renames := report.GenerateNames(sess.Result, sess.Scheme, sess.ShortNames)

	if id := r.URL.Query().Get("campaign_id"); id != "" {
		filtered := renames[:0]
		for _, c := range renames {
			if c.ID == id {
				filtered = append(filtered, c)
			}
		}
		renames = filtered
	}

	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", defaultPageSize)
	total := len(renames)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"page":      page,
		"per_page":  perPage,
		"total":     total,
		"campaigns": renames[start:end],
	})
}

// HandlePreviewName renders the scheme against sample options supplied
// in the query string.
func (h *Handlers) HandlePreviewName(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	opts := naming.DefaultPreviewOptions()
	q := r.URL.Query()
	if v := q.Get("targeting_type"); v != "" {
		opts.TargetingType = v
	}
	if v := q["match_type"]; len(v) > 0 {
		opts.MatchTypes = v
	}
	if v := q.Get("bidding_strategy"); v != "" {
		opts.BiddingStrategy = v
	}
	if v := q.Get("best_placement"); v != "" {
		opts.BestPlacement = v
	}
	if v := q.Get("ad_group_count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.AdGroupCount = n
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"preview": naming.PreviewName(sess.Scheme, opts),
	})
}

// HandleDiagnostics lists the dropped-campaign diagnostics for the
// session.
func (h *Handlers) HandleDiagnostics(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"diagnostics": sess.Result.Diagnostics,
	})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
