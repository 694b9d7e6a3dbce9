package handover

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/middleware"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/respond"
)

type Handler struct {
	svc *handover.Service
}

func NewHandler(svc *handover.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/confirm", h.confirm)
	r.Post("/{id}/resolve", h.resolve)
}

type createHandoverRequest struct {
	Stage          handover.StageType `json:"stage"`
	StationID      uuid.UUID          `json:"station_id"`
	FromParty      *uuid.UUID         `json:"from_party,omitempty"`
	ExpectedAmount decimal.Decimal    `json:"expected_amount"`
	OccurredOn     string             `json:"occurred_on,omitempty"`
	SourceShiftID  *uuid.UUID         `json:"source_shift_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}

	var req createHandoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	params := handover.CreateParams{
		Stage:          req.Stage,
		StationID:      req.StationID,
		FromParty:      actor.ID,
		ExpectedAmount: req.ExpectedAmount,
		SourceShiftID:  req.SourceShiftID,
		RequestedBy:    actor.ID,
	}

	if req.FromParty != nil {
		params.FromParty = *req.FromParty
	}

	if req.OccurredOn != "" {
		t, err := time.Parse(time.DateOnly, req.OccurredOn)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "occurred_on must be YYYY-MM-DD", nil)
			return
		}

		params.OccurredOn = t
	}

	ho, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(ho))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := handover.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("station_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid station_id", nil)
			return
		}

		filter.StationID = &id
	}

	if s := q.Get("from_party"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid from_party", nil)
			return
		}

		filter.FromParty = &id
	}

	if s := q.Get("stage"); s != "" {
		stage := handover.StageType(s)
		if !stage.Valid() {
			respond.Error(w, http.StatusBadRequest, "invalid stage", nil)
			return
		}

		filter.Stage = &stage
	}

	if s := q.Get("status"); s != "" {
		status := handover.Status(s)
		if !status.Valid() {
			respond.Error(w, http.StatusBadRequest, "invalid status", nil)
			return
		}

		filter.Status = &status
	}

	if s := q.Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD", nil)
			return
		}

		filter.StartDate = &t
	}

	if s := q.Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD", nil)
			return
		}

		filter.EndDate = &t
	}

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid limit", nil)
			return
		}

		filter.Limit = n
	}

	hs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(hs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ho, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(ho))
}

type confirmRequest struct {
	ActualAmount *decimal.Decimal `json:"actual_amount,omitempty"`
	AcceptAsIs   bool             `json:"accept_as_is"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ho, err := h.svc.Confirm(r.Context(), id, handover.ConfirmParams{
		ActualAmount: req.ActualAmount,
		AcceptAsIs:   req.AcceptAsIs,
		ConfirmedBy:  actor.ID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(ho))
}

type resolveRequest struct {
	FinalAmount decimal.Decimal `json:"final_amount"`
	Note        string          `json:"note"`
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ho, err := h.svc.ResolveDispute(r.Context(), id, handover.ResolveParams{
		FinalAmount: req.FinalAmount,
		ResolvedBy:  actor.ID,
		Note:        req.Note,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(ho))
}

type sequenceDetails struct {
	Stage    handover.StageType `json:"stage"`
	Required handover.StageType `json:"required_stage"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var seq *handover.SequenceViolationError

	switch {
	case errors.Is(err, handover.ErrValidation):
		respond.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, handover.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "handover not found", nil)
	case errors.As(err, &seq):
		slog.Info("handover out of sequence", "error", err, "path", r.URL.Path)
		respond.Error(w, http.StatusConflict, err.Error(), sequenceDetails{Stage: seq.Stage, Required: seq.Required})
	case errors.Is(err, handover.ErrInvalidState):
		slog.Info("handover in wrong state", "error", err, "path", r.URL.Path)
		respond.Error(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, handover.ErrChainConflict):
		slog.Warn("handover chain conflict", "error", err, "path", r.URL.Path)
		respond.Error(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, handover.ErrUnresolvedRecipient):
		slog.Warn("handover recipient unresolved", "error", err, "path", r.URL.Path)
		respond.Error(w, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		slog.Error("failed to handle handover request", "error", err, "path", r.URL.Path, "method", r.Method)
		respond.Error(w, http.StatusInternalServerError, "internal error", nil)
	}
}
