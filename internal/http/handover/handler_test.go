package handover_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
	handoverHandler "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/handover"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/middleware"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance"
)

type mocks struct {
	repo   *handover.MockRepository
	tx     *handover.MockTx
	dir    *handover.MockDirectory
	policy *handover.MockThresholdPolicy
}

func newRouter(t *testing.T) (http.Handler, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		repo:   handover.NewMockRepository(ctrl),
		tx:     handover.NewMockTx(ctrl),
		dir:    handover.NewMockDirectory(ctrl),
		policy: handover.NewMockThresholdPolicy(ctrl),
	}

	svc := handover.NewService(m.repo, m.dir, m.policy, variance.NewNoteFormatter(language.English), audit.Nop{})

	r := chi.NewRouter()
	r.Route("/handovers", handoverHandler.NewHandler(svc).Routes)

	return r, m
}

func expectBegin(m mocks) {
	m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Rollback().Return(nil).AnyTimes()
}

type handoverBody struct {
	ID                 uuid.UUID        `json:"id"`
	FromParty          uuid.UUID        `json:"from_party"`
	ToParty            uuid.UUID        `json:"to_party"`
	Status             string           `json:"status"`
	Variance           *decimal.Decimal `json:"variance"`
	VariancePercentage *decimal.Decimal `json:"variance_percentage"`
	DisputeNote        string           `json:"dispute_note"`
	OccurredOn         string           `json:"occurred_on"`
}

type errorBody struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details"`
}

func TestHandler_Create(t *testing.T) {
	actor := middleware.Actor{ID: uuid.New(), Role: "employee"}
	station := uuid.New()
	manager := uuid.New()

	type testCase struct {
		name       string
		body       string
		noActor    bool
		setupMock  func(m mocks)
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name: "ShiftCollectionCreated",
			body: `{"stage":"shift_collection","station_id":"` + station.String() + `","expected_amount":"5000","occurred_on":"2025-01-10"}`,
			setupMock: func(m mocks) {
				m.dir.EXPECT().StationManager(gomock.Any(), station).Return(manager, nil)
				expectBegin(m)
				m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageShiftCollection, actor.ID).Return(nil)
				m.tx.EXPECT().CreateHandover(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, h *handover.Handover) error {
						h.ID = uuid.New()
						return nil
					})
				m.tx.EXPECT().Commit().Return(nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got handoverBody
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, actor.ID, got.FromParty)
				assert.Equal(t, manager, got.ToParty)
				assert.Equal(t, "pending", got.Status)
				assert.Equal(t, "2025-01-10", got.OccurredOn)
			},
		},
		{
			name: "OutOfSequence",
			body: `{"stage":"employee_to_manager","station_id":"` + station.String() + `","expected_amount":5000}`,
			setupMock: func(m mocks) {
				m.dir.EXPECT().ManagerOf(gomock.Any(), actor.ID).Return(manager, nil)
				expectBegin(m)
				m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageEmployeeToManager, actor.ID).Return(nil)
				m.tx.EXPECT().FindClaimablePrior(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusConflict,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got errorBody
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "shift_collection", got.Details["required_stage"])
				assert.Equal(t, "employee_to_manager", got.Details["stage"])
			},
		},
		{
			name: "ChainConflict",
			body: `{"stage":"shift_collection","station_id":"` + station.String() + `","expected_amount":"10"}`,
			setupMock: func(m mocks) {
				m.dir.EXPECT().StationManager(gomock.Any(), station).Return(manager, nil)
				expectBegin(m)
				m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageShiftCollection, actor.ID).Return(nil)
				m.tx.EXPECT().CreateHandover(gomock.Any(), gomock.Any()).Return(handover.ErrChainConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "RecipientUnresolved",
			body: `{"stage":"shift_collection","station_id":"` + station.String() + `","expected_amount":"10"}`,
			setupMock: func(m mocks) {
				m.dir.EXPECT().StationManager(gomock.Any(), station).Return(uuid.Nil, nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "UnknownStage",
			body:       `{"stage":"pump_to_tank","station_id":"` + station.String() + `","expected_amount":"10"}`,
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BadOccurredOn",
			body:       `{"stage":"shift_collection","station_id":"` + station.String() + `","expected_amount":"10","occurred_on":"10/01/2025"}`,
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MalformedBody",
			body:       `{`,
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "StorageFailure",
			body: `{"stage":"shift_collection","station_id":"` + station.String() + `","expected_amount":"10"}`,
			setupMock: func(m mocks) {
				m.dir.EXPECT().StationManager(gomock.Any(), station).Return(manager, nil)
				m.repo.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Unauthenticated",
			body:       `{}`,
			noActor:    true,
			setupMock:  func(mocks) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			tt.setupMock(m)

			req := httptest.NewRequest(http.MethodPost, "/handovers", strings.NewReader(tt.body))
			if !tt.noActor {
				req = req.WithContext(middleware.WithActor(req.Context(), actor))
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestHandler_Confirm(t *testing.T) {
	actor := middleware.Actor{ID: uuid.New(), Role: "manager"}
	id := uuid.New()

	pending := func() *handover.Handover {
		return &handover.Handover{
			ID:             id,
			StationID:      uuid.New(),
			StageType:      handover.StageShiftCollection,
			ExpectedAmount: decimal.NewFromInt(5000),
			Status:         handover.StatusPending,
			OccurredOn:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		}
	}

	type testCase struct {
		name       string
		path       string
		body       string
		setupMock  func(m mocks)
		wantStatus int
		wantState  string
	}

	tests := []testCase{
		{
			name: "ShortfallDisputed",
			path: "/handovers/" + id.String() + "/confirm",
			body: `{"actual_amount":"4850"}`,
			setupMock: func(m mocks) {
				expectBegin(m)
				m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(pending(), nil)
				m.policy.EXPECT().Thresholds(gomock.Any(), gomock.Any(), variance.ContextHandover).Return(variance.DefaultThresholds, nil)
				m.tx.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
			},
			wantStatus: http.StatusOK,
			wantState:  "disputed",
		},
		{
			name: "AcceptedAsProposed",
			path: "/handovers/" + id.String() + "/confirm",
			body: `{"accept_as_is":true}`,
			setupMock: func(m mocks) {
				expectBegin(m)
				m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(pending(), nil)
				m.policy.EXPECT().Thresholds(gomock.Any(), gomock.Any(), variance.ContextHandover).Return(variance.DefaultThresholds, nil)
				m.tx.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
			},
			wantStatus: http.StatusOK,
			wantState:  "confirmed",
		},
		{
			name: "AlreadyConfirmed",
			path: "/handovers/" + id.String() + "/confirm",
			body: `{"actual_amount":"5000"}`,
			setupMock: func(m mocks) {
				h := pending()
				h.Status = handover.StatusConfirmed

				expectBegin(m)
				m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(h, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "NotFound",
			path: "/handovers/" + id.String() + "/confirm",
			body: `{"actual_amount":"5000"}`,
			setupMock: func(m mocks) {
				expectBegin(m)
				m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(nil, handover.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "MissingAmount",
			path:       "/handovers/" + id.String() + "/confirm",
			body:       `{}`,
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "InvalidID",
			path:       "/handovers/not-a-uuid/confirm",
			body:       `{"actual_amount":"5000"}`,
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			tt.setupMock(m)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithActor(req.Context(), actor))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantState != "" {
				var got handoverBody
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, tt.wantState, got.Status)
			}
		})
	}
}

func TestHandler_Confirm_DisputeDetail(t *testing.T) {
	router, m := newRouter(t)
	id := uuid.New()

	expectBegin(m)
	m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(&handover.Handover{
		ID:             id,
		StageType:      handover.StageShiftCollection,
		ExpectedAmount: decimal.NewFromInt(5000),
		Status:         handover.StatusPending,
	}, nil)
	m.policy.EXPECT().Thresholds(gomock.Any(), gomock.Any(), variance.ContextHandover).Return(variance.DefaultThresholds, nil)
	m.tx.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().Commit().Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/handovers/"+id.String()+"/confirm", strings.NewReader(`{"actual_amount":4850}`))
	req = req.WithContext(middleware.WithActor(req.Context(), middleware.Actor{ID: uuid.New()}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got handoverBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

	require.NotNil(t, got.Variance)
	assert.True(t, decimal.NewFromInt(-150).Equal(*got.Variance))
	require.NotNil(t, got.VariancePercentage)
	assert.True(t, decimal.NewFromInt(3).Equal(*got.VariancePercentage))
	assert.Equal(t, "shortfall of 150.00 (3.00%) exceeds tolerance", got.DisputeNote)
}

func TestHandler_Resolve(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name       string
		body       string
		setupMock  func(m mocks)
		wantStatus int
	}

	tests := []testCase{
		{
			name: "Resolved",
			body: `{"final_amount":"4900","note":"recount"}`,
			setupMock: func(m mocks) {
				expectBegin(m)
				m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(&handover.Handover{
					ID:             id,
					ExpectedAmount: decimal.NewFromInt(5000),
					Status:         handover.StatusDisputed,
				}, nil)
				m.tx.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "NoteRequired",
			body:       `{"final_amount":"4900"}`,
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "NotDisputed",
			body: `{"final_amount":"4900","note":"recount"}`,
			setupMock: func(m mocks) {
				expectBegin(m)
				m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(&handover.Handover{
					ID:     id,
					Status: handover.StatusPending,
				}, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "CommitFails",
			body: `{"final_amount":"4900","note":"recount"}`,
			setupMock: func(m mocks) {
				expectBegin(m)
				m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(&handover.Handover{
					ID:             id,
					ExpectedAmount: decimal.NewFromInt(5000),
					Status:         handover.StatusDisputed,
				}, nil)
				m.tx.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().Commit().Return(errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			tt.setupMock(m)

			req := httptest.NewRequest(http.MethodPost, "/handovers/"+id.String()+"/resolve", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithActor(req.Context(), middleware.Actor{ID: uuid.New(), Role: "owner"}))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_Get(t *testing.T) {
	router, m := newRouter(t)
	missing := uuid.New()

	m.repo.EXPECT().GetHandover(gomock.Any(), missing).Return(nil, handover.ErrNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/handovers/"+missing.String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_List(t *testing.T) {
	station := uuid.New()

	type testCase struct {
		name       string
		query      string
		setupMock  func(m mocks)
		wantStatus int
		wantLen    int
	}

	tests := []testCase{
		{
			name:  "Filtered",
			query: "?station_id=" + station.String() + "&stage=manager_to_owner&status=pending&start_date=2025-01-01&limit=5",
			setupMock: func(m mocks) {
				m.repo.EXPECT().ListHandovers(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f handover.ListFilter) ([]*handover.Handover, error) {
						assert.Equal(t, station, *f.StationID)
						assert.Equal(t, handover.StageManagerToOwner, *f.Stage)
						assert.Equal(t, handover.StatusPending, *f.Status)
						assert.Equal(t, "2025-01-01", f.StartDate.Format(time.DateOnly))
						assert.Nil(t, f.EndDate)
						assert.Equal(t, 5, f.Limit)

						return []*handover.Handover{{ID: uuid.New()}, {ID: uuid.New()}}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name:       "UnknownStage",
			query:      "?stage=teleport",
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BadStation",
			query:      "?station_id=42",
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "UnknownStatus",
			query:      "?status=lost",
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MalformedStartDate",
			query:      "?start_date=10/01/2025",
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MalformedEndDate",
			query:      "?end_date=2025-13-40",
			setupMock:  func(mocks) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			tt.setupMock(m)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/handovers"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus == http.StatusOK {
				var got []handoverBody
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Len(t, got, tt.wantLen)
			}
		})
	}
}
