package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/settlement"
)

type settlementResponse struct {
	ID                 uuid.UUID         `json:"id"`
	StationID          uuid.UUID         `json:"station_id"`
	Date               string            `json:"date"`
	ExpectedCash       decimal.Decimal   `json:"expected_cash"`
	ActualCash         decimal.Decimal   `json:"actual_cash"`
	Variance           decimal.Decimal   `json:"variance"`
	VariancePercentage decimal.Decimal   `json:"variance_percentage"`
	Status             settlement.Status `json:"status"`
	ReadingIDs         []uuid.UUID       `json:"reading_ids"`
	Note               string            `json:"note,omitempty"`
	RecordedBy         uuid.UUID         `json:"recorded_by"`
	CreatedAt          time.Time         `json:"created_at"`
}

func toResponse(st *settlement.Settlement) settlementResponse {
	resp := settlementResponse{
		ID:                 st.ID,
		StationID:          st.StationID,
		Date:               st.Date.Format(time.DateOnly),
		ExpectedCash:       st.ExpectedCash,
		ActualCash:         st.ActualCash,
		Variance:           st.Variance,
		VariancePercentage: st.VariancePercentage,
		Status:             st.Status,
		ReadingIDs:         st.ReadingIDs,
		Note:               st.Note,
		RecordedBy:         st.RecordedBy,
		CreatedAt:          st.CreatedAt,
	}

	if resp.ReadingIDs == nil {
		resp.ReadingIDs = []uuid.UUID{}
	}

	return resp
}

func toResponseList(sts []*settlement.Settlement) []settlementResponse {
	resp := make([]settlementResponse, len(sts))
	for i, st := range sts {
		resp[i] = toResponse(st)
	}

	return resp
}
