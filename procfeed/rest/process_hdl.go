package rest

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Gthulhu/procfeed/pkg/errs"
	"github.com/Gthulhu/procfeed/procfeed/domain"
)

// RefreshResponse is the response of POST /acquire_process_list
type RefreshResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Total     int    `json:"total"`
	New       int    `json:"new"`
}

// AcquireProcessList godoc
// @Summary Refresh the process list
// @Description Acquires a new process list, publishes newly observed processes to /data subscribers and installs it as the current snapshot
// @Tags Processes
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 500 {object} ErrorResponse
// @Router /acquire_process_list [post]
func (h *Handler) AcquireProcessList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.Svc.Refresh(ctx)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, RefreshResponse{
		Success:   true,
		Message:   fmt.Sprintf("Refreshed list (%d processes)", res.Total),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Total:     res.Total,
		New:       res.New,
	})
}

// ListProcesses godoc
// @Summary Current process list
// @Description Returns the snapshot installed by the last successful refresh
// @Tags Processes
// @Produce json
// @Success 200 {array} domain.ProcessEntry
// @Router /processes [get]
func (h *Handler) ListProcesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.JSONResponse(ctx, w, http.StatusOK, h.Svc.Processes(ctx))
}

// SearchProcesses godoc
// @Summary Search the current process list
// @Description Filters the current snapshot by pid and/or username. Both filters are optional and combined with AND.
// @Tags Processes
// @Produce json
// @Param pid query int false "Process ID"
// @Param username query string false "Owner account name"
// @Success 200 {array} domain.ProcessEntry
// @Failure 400 {object} ErrorResponse
// @Router /search [get]
func (h *Handler) SearchProcesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query, err := parseSearchQuery(r.URL.Query())
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, h.Svc.Search(ctx, query))
}

// parseSearchQuery treats a parameter as a constraint when it is present,
// even if empty. pid must be a non-negative integer.
func parseSearchQuery(values url.Values) (domain.SearchQuery, error) {
	var query domain.SearchQuery
	if values.Has("pid") {
		raw := values.Get("pid")
		pid, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return query, errs.NewHTTPStatusError(http.StatusBadRequest,
				fmt.Sprintf("Invalid pid %q", raw),
				fmt.Errorf("%w: pid: %w", domain.ErrInvalidQuery, err))
		}
		p := uint32(pid)
		query.PID = &p
	}
	if values.Has("username") {
		username := values.Get("username")
		query.OwnerName = &username
	}
	return query, nil
}
