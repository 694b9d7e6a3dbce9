package handover

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
)

type handoverResponse struct {
	ID                 uuid.UUID          `json:"id"`
	StationID          uuid.UUID          `json:"station_id"`
	Stage              handover.StageType `json:"stage"`
	FromParty          uuid.UUID          `json:"from_party"`
	ToParty            uuid.UUID          `json:"to_party"`
	ExpectedAmount     decimal.Decimal    `json:"expected_amount"`
	ActualAmount       *decimal.Decimal   `json:"actual_amount,omitempty"`
	Variance           *decimal.Decimal   `json:"variance,omitempty"`
	VariancePercentage *decimal.Decimal   `json:"variance_percentage,omitempty"`
	Status             handover.Status    `json:"status"`
	PreviousHandoverID *uuid.UUID         `json:"previous_handover_id,omitempty"`
	OccurredOn         string             `json:"occurred_on"`
	ConfirmedAt        *time.Time         `json:"confirmed_at,omitempty"`
	ConfirmedBy        *uuid.UUID         `json:"confirmed_by,omitempty"`
	SourceShiftID      *uuid.UUID         `json:"source_shift_id,omitempty"`
	DisputeNote        string             `json:"dispute_note,omitempty"`
	ResolutionNote     string             `json:"resolution_note,omitempty"`
	ResolvedAt         *time.Time         `json:"resolved_at,omitempty"`
	ResolvedBy         *uuid.UUID         `json:"resolved_by,omitempty"`
	CreatedBy          uuid.UUID          `json:"created_by"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func toResponse(h *handover.Handover) handoverResponse {
	return handoverResponse{
		ID:                 h.ID,
		StationID:          h.StationID,
		Stage:              h.StageType,
		FromParty:          h.FromParty,
		ToParty:            h.ToParty,
		ExpectedAmount:     h.ExpectedAmount,
		ActualAmount:       h.ActualAmount,
		Variance:           h.Variance,
		VariancePercentage: h.VariancePercentage,
		Status:             h.Status,
		PreviousHandoverID: h.PreviousHandoverID,
		OccurredOn:         h.OccurredOn.Format(time.DateOnly),
		ConfirmedAt:        h.ConfirmedAt,
		ConfirmedBy:        h.ConfirmedBy,
		SourceShiftID:      h.SourceShiftID,
		DisputeNote:        h.DisputeNote,
		ResolutionNote:     h.ResolutionNote,
		ResolvedAt:         h.ResolvedAt,
		ResolvedBy:         h.ResolvedBy,
		CreatedBy:          h.CreatedBy,
		CreatedAt:          h.CreatedAt,
		UpdatedAt:          h.UpdatedAt,
	}
}

func toResponseList(hs []*handover.Handover) []handoverResponse {
	resp := make([]handoverResponse, len(hs))
	for i, h := range hs {
		resp[i] = toResponse(h)
	}

	return resp
}
