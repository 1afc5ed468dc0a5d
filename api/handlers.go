/*
handlers.go - HTTP API handlers for the leave-planner engine

PURPOSE:
  Exposes the classification engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Calendar:
    GET    /api/calendar/{year}        Classified year view (12 months)
    GET    /api/classify?date=...      Single-date classification
    GET    /api/periods                Period rule table
    GET    /api/holidays/{year}        Holidays for a year

  Tables:
    GET    /api/legend                 Legend items
    GET    /api/leave-types            Leave type options
    GET    /api/leave-reasons          Leave reason options

  Selections (session-scoped, in-memory only):
    POST   /api/selections                        Create session
    GET    /api/selections/{id}                   Consolidated state
    POST   /api/selections/{id}/toggle            Toggle a date
    DELETE /api/selections/{id}/dates/{date}      Remove a date
    DELETE /api/selections/{id}                   Clear session
    POST   /api/selections/{id}/email             Render email draft

  Export:
    GET    /api/export/ics?year=...    Busy-period calendar download

ARCHITECTURE:
  Handler struct holds all dependencies: the immutable tables, the
  classifier/consolidator built over them, a zap logger, and the live
  selection sessions. Sessions are transient - they exist only in
  process memory and die with it; there is deliberately no store.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed input (invalid date key, bad body)
  - 404: Unknown session
  - 409: Toggling a weekend/holiday date
  - 422: Compose precondition not met (missing fields, empty selection)
  - 500: ICS encoding failure

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/leader/leave-planner/calendar"
	"github.com/leader/leave-planner/factory"
	"github.com/leader/leave-planner/planner"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Tables       *factory.Tables
	Classifier   *calendar.Classifier
	Consolidator *planner.Consolidator
	Logger       *zap.Logger

	mu       sync.Mutex
	sessions map[string]*planner.Selection
}

// NewHandler builds the classifier over the supplied tables.
func NewHandler(tables *factory.Tables, logger *zap.Logger) (*Handler, error) {
	classifier, err := tables.NewClassifier()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Tables:       tables,
		Classifier:   classifier,
		Consolidator: &planner.Consolidator{Classifier: classifier},
		Logger:       logger,
		sessions:     make(map[string]*planner.Selection),
	}, nil
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// GetYearView returns the classification of every day of a year, grouped
// by month, with grand-final months flagged.
func (h *Handler) GetYearView(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 || year > 9999 {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	view := YearViewDTO{Year: year, Months: make([]MonthDTO, 0, 12)}
	for m := time.January; m <= time.December; m++ {
		month := MonthDTO{
			Month:      int(m),
			Name:       m.String(),
			GrandFinal: h.Classifier.MonthHasStatus(m, calendar.StatusGrandFinal),
		}
		for d, err := calendar.NewDate(year, m, 1); err == nil && d.Month() == m; d = d.AddDays(1) {
			month.Days = append(month.Days, toDayDTO(h.Classifier.Classify(d)))
		}
		view.Months = append(view.Months, month)
	}

	writeJSON(w, http.StatusOK, view)
}

// Classify returns the classification of a single date.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}
	writeJSON(w, http.StatusOK, toDayDTO(h.Classifier.Classify(date)))
}

// ListPeriods returns the rule table in precedence order.
func (h *Handler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	rules := h.Classifier.Rules()
	dtos := make([]PeriodRuleDTO, len(rules))
	for i, rule := range rules {
		dtos[i] = toPeriodRuleDTO(rule)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListHolidays returns the holidays recorded for a year. A year absent
// from the table yields an empty list, not an error.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	holidays := h.Classifier.Holidays().Year(year)
	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = HolidayDTO{Date: hol.Date.Key(), Name: hol.Name}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// TABLE HANDLERS
// =============================================================================

func (h *Handler) ListLegend(w http.ResponseWriter, r *http.Request) {
	dtos := make([]LegendItemDTO, len(h.Tables.Legend))
	for i, l := range h.Tables.Legend {
		dtos[i] = LegendItemDTO{ID: l.ID, Label: l.Label, Color: l.Color, Description: l.Description}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toOptionDTOs(h.Tables.LeaveTypes))
}

func (h *Handler) ListLeaveReasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toOptionDTOs(h.Tables.LeaveReasons))
}

// =============================================================================
// SELECTION HANDLERS
// =============================================================================

// CreateSelection opens a new empty selection session.
func (h *Handler) CreateSelection(w http.ResponseWriter, r *http.Request) {
	id := newSessionID()

	h.mu.Lock()
	h.sessions[id] = planner.NewSelection(h.Classifier)
	h.mu.Unlock()

	h.Logger.Info("selection session created", zap.String("session", id))
	writeJSON(w, http.StatusCreated, SelectionDTO{ID: id, Dates: []SelectedDayDTO{}, Ranges: []RangeDTO{}, Warnings: []WarningDTO{}})
}

// GetSelection returns the consolidated state of a session.
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sel, ok := h.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Selection session not found", nil)
		return
	}

	h.mu.Lock()
	sum := h.Consolidator.Consolidate(sel)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, toSelectionDTO(id, sum, h.Classifier))
}

// ToggleDate toggles one date in a session. Weekend and holiday dates
// are rejected with 409; toggling a member removes it.
func (h *Handler) ToggleDate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sel, ok := h.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Selection session not found", nil)
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}

	h.mu.Lock()
	err = sel.Toggle(date)
	var sum planner.Summary
	if err == nil {
		sum = h.Consolidator.Consolidate(sel)
	}
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, planner.ErrDateNotSelectable) {
			writeError(w, http.StatusConflict, "Date is not selectable", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to toggle date", err)
		return
	}

	writeJSON(w, http.StatusOK, toSelectionDTO(id, sum, h.Classifier))
}

// RemoveDate removes one date from a session. Removing a non-member is
// a no-op, mirroring Selection.Remove.
func (h *Handler) RemoveDate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sel, ok := h.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Selection session not found", nil)
		return
	}
	date, err := calendar.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}

	h.mu.Lock()
	sel.Remove(date)
	sum := h.Consolidator.Consolidate(sel)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, toSelectionDTO(id, sum, h.Classifier))
}

// ClearSelection empties a session ("Clear all").
func (h *Handler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sel, ok := h.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Selection session not found", nil)
		return
	}

	h.mu.Lock()
	sel.Clear()
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, SelectionDTO{ID: id, Dates: []SelectedDayDTO{}, Ranges: []RangeDTO{}, Warnings: []WarningDTO{}})
}

// =============================================================================
// EMAIL HANDLER
// =============================================================================

// ComposeEmail renders the leave-request draft for a session. The
// composer itself never validates, so this handler gates invocation:
// non-empty name and manager email, a known leave type, and at least
// one selected date.
func (h *Handler) ComposeEmail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sel, ok := h.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Selection session not found", nil)
		return
	}

	var req ComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	typeLabel := h.Tables.LeaveTypeLabel(req.LeaveType)
	switch {
	case req.EmployeeName == "":
		writeError(w, http.StatusUnprocessableEntity, "employee_name is required", nil)
		return
	case req.ManagerEmail == "":
		writeError(w, http.StatusUnprocessableEntity, "manager_email is required", nil)
		return
	case typeLabel == "":
		writeError(w, http.StatusUnprocessableEntity, "leave_type is missing or unknown", nil)
		return
	}

	reason := h.Tables.LeaveReasonLabel(req.Reason)
	if req.Reason == "custom" {
		reason = req.CustomReason
	}

	h.mu.Lock()
	sum := h.Consolidator.Consolidate(sel)
	h.mu.Unlock()

	if sum.CalendarDays == 0 {
		writeError(w, http.StatusUnprocessableEntity, "selection is empty", nil)
		return
	}

	draft := planner.Compose(sum, planner.Fields{
		EmployeeName:   req.EmployeeName,
		ManagerEmail:   req.ManagerEmail,
		LeaveTypeLabel: typeLabel,
		ReasonText:     reason,
		Notes:          req.AdditionalNotes,
	})

	writeJSON(w, http.StatusOK, DraftDTO{
		To:      req.ManagerEmail,
		Subject: draft.Subject,
		Body:    draft.Body,
		Mailto:  planner.MailtoURL(req.ManagerEmail, draft),
	})
}

// =============================================================================
// EXPORT HANDLER
// =============================================================================

// ExportICS streams the busy-period calendar for a year.
func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 || year > 9999 {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	payload, err := planner.BusyPeriodsICS(h.Classifier, year)
	if err != nil {
		h.Logger.Error("ICS export failed", zap.Int("year", year), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate calendar", err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+planner.ICSFileName(year))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) session(id string) (*planner.Selection, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sel, ok := h.sessions[id]
	return sel, ok
}

func newSessionID() string {
	var b [8]byte
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
