package settlement

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

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/middleware"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/respond"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/settlement"
)

type Handler struct {
	svc *settlement.Service
}

func NewHandler(svc *settlement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.record)
	r.Get("/", h.history)
	r.Get("/{id}", h.get)
}

type recordSettlementRequest struct {
	StationID  uuid.UUID       `json:"station_id"`
	Date       string          `json:"date"`
	ActualCash decimal.Decimal `json:"actual_cash"`
	ReadingIDs []uuid.UUID     `json:"reading_ids,omitempty"`
	Note       string          `json:"note,omitempty"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}

	var req recordSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}

	st, err := h.svc.Record(r.Context(), settlement.RecordParams{
		StationID:  req.StationID,
		Date:       date,
		ActualCash: req.ActualCash,
		ReadingIDs: req.ReadingIDs,
		RecordedBy: actor.ID,
		Note:       req.Note,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(st))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	stationID, err := uuid.Parse(r.URL.Query().Get("station_id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "station_id is required", nil)
		return
	}

	var limit int

	if s := r.URL.Query().Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid limit", nil)
			return
		}
	}

	sts, err := h.svc.History(r.Context(), stationID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(sts))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	st, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(st))
}

type problemResponse struct {
	ReadingID uuid.UUID         `json:"reading_id"`
	Reason    settlement.Reason `json:"reason"`
}

type readingSetDetails struct {
	Problems []problemResponse `json:"problems"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *settlement.InvalidReadingSetError

	switch {
	case errors.Is(err, settlement.ErrValidation):
		respond.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, settlement.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "settlement not found", nil)
	case errors.Is(err, settlement.ErrDuplicateSettlement):
		slog.Info("settlement already recorded", "error", err, "path", r.URL.Path)
		respond.Error(w, http.StatusConflict, err.Error(), nil)
	case errors.As(err, &invalid):
		slog.Info("rejected reading set", "error", err, "path", r.URL.Path)

		details := readingSetDetails{Problems: make([]problemResponse, 0, len(invalid.Problems))}
		for _, p := range invalid.Problems {
			details.Problems = append(details.Problems, problemResponse{ReadingID: p.ReadingID, Reason: p.Reason})
		}

		respond.Error(w, http.StatusUnprocessableEntity, err.Error(), details)
	default:
		slog.Error("failed to handle settlement request", "error", err, "path", r.URL.Path, "method", r.Method)
		respond.Error(w, http.StatusInternalServerError, "internal error", nil)
	}
}
