package integrity

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/respond"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/integrity"
)

type Handler struct {
	svc *integrity.Service
}

func NewHandler(svc *integrity.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/handovers", h.handovers)
}

type findingResponse struct {
	HandoverID uuid.UUID          `json:"handover_id"`
	StationID  uuid.UUID          `json:"station_id"`
	Stage      handover.StageType `json:"stage"`
	PreviousID *uuid.UUID         `json:"previous_handover_id,omitempty"`
	Problem    integrity.Problem  `json:"problem"`
}

type reportResponse struct {
	Broken   int               `json:"broken"`
	Findings []findingResponse `json:"findings"`
}

func (h *Handler) handovers(w http.ResponseWriter, r *http.Request) {
	var stationID *uuid.UUID

	if s := r.URL.Query().Get("station_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid station_id", nil)
			return
		}

		stationID = &id
	}

	findings, err := h.svc.Check(r.Context(), stationID)
	if err != nil {
		slog.Error("failed to check handover chain", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error", nil)

		return
	}

	resp := reportResponse{
		Broken:   len(findings),
		Findings: make([]findingResponse, len(findings)),
	}

	for i, f := range findings {
		resp.Findings[i] = findingResponse{
			HandoverID: f.HandoverID,
			StationID:  f.StationID,
			Stage:      f.Stage,
			PreviousID: f.PreviousID,
			Problem:    f.Problem,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}
