package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ignite/ads-renamer/internal/bulkfile"
	"github.com/ignite/ads-renamer/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleExportBulk streams the bulk update workbook for download.
func (h *Handlers) HandleExportBulk(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	renames := report.GenerateNames(sess.Result, sess.Scheme, sess.ShortNames)
	data, err := bulkfile.UpdateFileBytes(report.BuildUpdateRows(renames))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="amazon_ads_bulk_update.xlsx"`)
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// HandleExportGuide streams the nomenclature guide for download.
func (h *Handlers) HandleExportGuide(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	renames := report.GenerateNames(sess.Result, sess.Scheme, sess.ShortNames)
	guide, err := report.NomenclatureGuide(sess.Result, sess.Scheme, renames, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="naming_scheme_guide.txt"`)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, guide)
}

// HandleExportDiagnostics streams the diagnostics list as plain text,
// one line per dropped campaign.
func (h *Handlers) HandleExportDiagnostics(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="error_log.txt"`)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, strings.Join(sess.Result.Diagnostics, "\n"))
}
