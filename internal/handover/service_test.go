package handover_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance"
)

type mocks struct {
	repo   *handover.MockRepository
	tx     *handover.MockTx
	dir    *handover.MockDirectory
	policy *handover.MockThresholdPolicy
}

type captureSink struct {
	events []audit.Event
}

func (c *captureSink) Record(_ context.Context, e audit.Event) {
	c.events = append(c.events, e)
}

func newService(t *testing.T) (*handover.Service, mocks, *captureSink) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		repo:   handover.NewMockRepository(ctrl),
		tx:     handover.NewMockTx(ctrl),
		dir:    handover.NewMockDirectory(ctrl),
		policy: handover.NewMockThresholdPolicy(ctrl),
	}
	sink := &captureSink{}

	svc := handover.NewService(m.repo, m.dir, m.policy, variance.NewNoteFormatter(language.English), sink)

	return svc, m, sink
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDecimal(t *testing.T, want string, got *decimal.Decimal) {
	t.Helper()

	require.NotNil(t, got)
	assert.True(t, dec(want).Equal(*got), "want %s, got %s", want, got)
}

// expectBegin wires the unit of work every mutating call opens.
func expectBegin(m mocks) {
	m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Rollback().Return(nil).AnyTimes()
}

func assignID(_ context.Context, h *handover.Handover) error {
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt

	return nil
}

func TestService_Create(t *testing.T) {
	station := uuid.New()
	employee := uuid.New()
	manager := uuid.New()
	owner := uuid.New()
	day := time.Date(2024, 3, 14, 18, 30, 0, 0, time.UTC)

	settled := func(stage handover.StageType, from uuid.UUID, status handover.Status) *handover.Handover {
		return &handover.Handover{
			ID:        uuid.New(),
			StationID: station,
			StageType: stage,
			FromParty: from,
			Status:    status,
		}
	}

	type args struct {
		params handover.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m mocks) *handover.Handover
		wantTo    uuid.UUID
		wantErr   error
	}

	tests := []testCase{
		{
			name: "ShiftCollectionStartsChain",
			args: args{params: handover.CreateParams{
				Stage:          handover.StageShiftCollection,
				StationID:      station,
				FromParty:      employee,
				ExpectedAmount: dec("5000"),
				OccurredOn:     day,
				RequestedBy:    employee,
			}},
			setupMock: func(m mocks) *handover.Handover {
				m.dir.EXPECT().StationManager(gomock.Any(), station).Return(manager, nil)
				expectBegin(m)
				m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageShiftCollection, employee).Return(nil)
				m.tx.EXPECT().CreateHandover(gomock.Any(), gomock.Any()).DoAndReturn(assignID)
				m.tx.EXPECT().Commit().Return(nil)

				return nil
			},
			wantTo: manager,
		},
		{
			name: "EmployeeToManagerWithoutShift",
			args: args{params: handover.CreateParams{
				Stage:          handover.StageEmployeeToManager,
				StationID:      station,
				FromParty:      employee,
				ExpectedAmount: dec("5000"),
				OccurredOn:     day,
				RequestedBy:    employee,
			}},
			setupMock: func(m mocks) *handover.Handover {
				m.dir.EXPECT().ManagerOf(gomock.Any(), employee).Return(manager, nil)
				expectBegin(m)
				m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageEmployeeToManager, employee).Return(nil)
				m.tx.EXPECT().
					FindClaimablePrior(gomock.Any(), handover.PriorQuery{
						StationID: station,
						Stage:     handover.StageShiftCollection,
						FromParty: &employee,
					}).
					Return(nil, nil)

				return nil
			},
			wantErr: handover.ErrSequenceViolation,
		},
		{
			name: "EmployeeToManagerFallsBackToRequester",
			args: args{params: handover.CreateParams{
				Stage:          handover.StageEmployeeToManager,
				StationID:      station,
				FromParty:      employee,
				ExpectedAmount: dec("5000"),
				OccurredOn:     day,
				RequestedBy:    manager,
			}},
			setupMock: func(m mocks) *handover.Handover {
				prior := settled(handover.StageShiftCollection, employee, handover.StatusConfirmed)

				m.dir.EXPECT().ManagerOf(gomock.Any(), employee).Return(uuid.Nil, nil)
				expectBegin(m)
				m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageEmployeeToManager, employee).Return(nil)
				m.tx.EXPECT().FindClaimablePrior(gomock.Any(), gomock.Any()).Return(prior, nil)
				m.tx.EXPECT().CreateHandover(gomock.Any(), gomock.Any()).DoAndReturn(assignID)
				m.tx.EXPECT().Commit().Return(nil)

				return prior
			},
			wantTo: manager,
		},
		{
			name: "ManagerToOwnerClaimsAnyEmployeeHandover",
			args: args{params: handover.CreateParams{
				Stage:          handover.StageManagerToOwner,
				StationID:      station,
				FromParty:      manager,
				ExpectedAmount: dec("12500.50"),
				OccurredOn:     day,
				RequestedBy:    manager,
			}},
			setupMock: func(m mocks) *handover.Handover {
				prior := settled(handover.StageEmployeeToManager, employee, handover.StatusResolved)

				m.dir.EXPECT().StationOwner(gomock.Any(), station).Return(owner, nil)
				expectBegin(m)
				m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageManagerToOwner, manager).Return(nil)
				m.tx.EXPECT().
					FindClaimablePrior(gomock.Any(), handover.PriorQuery{
						StationID: station,
						Stage:     handover.StageEmployeeToManager,
					}).
					Return(prior, nil)
				m.tx.EXPECT().CreateHandover(gomock.Any(), gomock.Any()).DoAndReturn(assignID)
				m.tx.EXPECT().Commit().Return(nil)

				return prior
			},
			wantTo: owner,
		},
		{
			name: "DepositToBankIsSelfConfirmed",
			args: args{params: handover.CreateParams{
				Stage:          handover.StageDepositToBank,
				StationID:      station,
				FromParty:      owner,
				ExpectedAmount: dec("12500.50"),
				OccurredOn:     day,
				RequestedBy:    owner,
			}},
			setupMock: func(m mocks) *handover.Handover {
				prior := settled(handover.StageManagerToOwner, manager, handover.StatusConfirmed)

				expectBegin(m)
				m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageDepositToBank, owner).Return(nil)
				m.tx.EXPECT().FindClaimablePrior(gomock.Any(), gomock.Any()).Return(prior, nil)
				m.tx.EXPECT().CreateHandover(gomock.Any(), gomock.Any()).DoAndReturn(assignID)
				m.tx.EXPECT().Commit().Return(nil)

				return prior
			},
			wantTo: owner,
		},
		{
			name: "NoStationManager",
			args: args{params: handover.CreateParams{
				Stage:          handover.StageShiftCollection,
				StationID:      station,
				FromParty:      employee,
				ExpectedAmount: dec("5000"),
				RequestedBy:    employee,
			}},
			setupMock: func(m mocks) *handover.Handover {
				m.dir.EXPECT().StationManager(gomock.Any(), station).Return(uuid.Nil, nil)
				return nil
			},
			wantErr: handover.ErrUnresolvedRecipient,
		},
		{
			name: "ConcurrentClaim",
			args: args{params: handover.CreateParams{
				Stage:          handover.StageManagerToOwner,
				StationID:      station,
				FromParty:      manager,
				ExpectedAmount: dec("100"),
				OccurredOn:     day,
				RequestedBy:    manager,
			}},
			setupMock: func(m mocks) *handover.Handover {
				m.dir.EXPECT().StationOwner(gomock.Any(), station).Return(owner, nil)
				expectBegin(m)
				m.tx.EXPECT().LockChain(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().
					FindClaimablePrior(gomock.Any(), gomock.Any()).
					Return(settled(handover.StageEmployeeToManager, employee, handover.StatusConfirmed), nil)
				m.tx.EXPECT().CreateHandover(gomock.Any(), gomock.Any()).Return(handover.ErrChainConflict)

				return nil
			},
			wantErr: handover.ErrChainConflict,
		},
		{
			name: "NegativeAmount",
			args: args{params: handover.CreateParams{
				Stage:          handover.StageShiftCollection,
				StationID:      station,
				FromParty:      employee,
				ExpectedAmount: dec("-1"),
				RequestedBy:    employee,
			}},
			wantErr: handover.ErrValidation,
		},
		{
			name: "UnknownStage",
			args: args{params: handover.CreateParams{
				Stage:          "cash_to_safe",
				StationID:      station,
				FromParty:      employee,
				ExpectedAmount: dec("1"),
				RequestedBy:    employee,
			}},
			wantErr: handover.ErrValidation,
		},
		{
			name: "SourceShiftOnLaterStage",
			args: args{params: handover.CreateParams{
				Stage:          handover.StageManagerToOwner,
				StationID:      station,
				FromParty:      manager,
				ExpectedAmount: dec("1"),
				SourceShiftID:  &employee,
				RequestedBy:    manager,
			}},
			wantErr: handover.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, sink := newService(t)

			var prior *handover.Handover
			if tt.setupMock != nil {
				prior = tt.setupMock(m)
			}

			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.Empty(t, sink.events)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, handover.StatusPending, got.Status)
			assert.Equal(t, tt.wantTo, got.ToParty)
			assert.Equal(t, tt.args.params.RequestedBy, got.CreatedBy)
			assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), got.OccurredOn)
			assert.Nil(t, got.ActualAmount)

			if prior == nil {
				assert.Nil(t, got.PreviousHandoverID)
			} else {
				require.NotNil(t, got.PreviousHandoverID)
				assert.Equal(t, prior.ID, *got.PreviousHandoverID)
			}

			require.Len(t, sink.events, 1)
			assert.Equal(t, audit.EventHandoverCreated, sink.events[0].Type)
			assert.Equal(t, got.ID, sink.events[0].EntityID)
			assert.Nil(t, sink.events[0].Before)
		})
	}
}

func TestService_Create_SequenceViolationDetail(t *testing.T) {
	svc, m, _ := newService(t)

	station, manager := uuid.New(), uuid.New()

	m.dir.EXPECT().StationOwner(gomock.Any(), station).Return(uuid.New(), nil)
	expectBegin(m)
	m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageManagerToOwner, manager).Return(nil)
	m.tx.EXPECT().FindClaimablePrior(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Create(context.Background(), handover.CreateParams{
		Stage:          handover.StageManagerToOwner,
		StationID:      station,
		FromParty:      manager,
		ExpectedAmount: dec("100"),
		RequestedBy:    manager,
	})

	var violation *handover.SequenceViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, handover.StageEmployeeToManager, violation.Required)
	assert.Equal(t, station, violation.StationID)
}

func TestService_Confirm(t *testing.T) {
	id := uuid.New()
	station := uuid.New()
	reviewer := uuid.New()

	pending := func() *handover.Handover {
		return &handover.Handover{
			ID:             id,
			StationID:      station,
			StageType:      handover.StageShiftCollection,
			ExpectedAmount: dec("5000"),
			Status:         handover.StatusPending,
		}
	}

	type args struct {
		params handover.ConfirmParams
	}

	type testCase struct {
		name         string
		args         args
		current      *handover.Handover
		getErr       error
		wantStatus   handover.Status
		wantActual   string
		wantVariance string
		wantPct      string
		wantEvent    audit.EventType
		wantErr      error
	}

	tests := []testCase{
		{
			name:         "ExactMatch",
			args:         args{params: handover.ConfirmParams{ActualAmount: decPtr("5000"), ConfirmedBy: reviewer}},
			current:      pending(),
			wantStatus:   handover.StatusConfirmed,
			wantActual:   "5000",
			wantVariance: "0",
			wantPct:      "0",
			wantEvent:    audit.EventHandoverConfirmed,
		},
		{
			name:         "ShortfallOverTolerance",
			args:         args{params: handover.ConfirmParams{ActualAmount: decPtr("4850"), ConfirmedBy: reviewer}},
			current:      pending(),
			wantStatus:   handover.StatusDisputed,
			wantActual:   "4850",
			wantVariance: "-150",
			wantPct:      "3",
			wantEvent:    audit.EventHandoverDisputed,
		},
		{
			name:         "WithinTolerance",
			args:         args{params: handover.ConfirmParams{ActualAmount: decPtr("4950"), ConfirmedBy: reviewer}},
			current:      pending(),
			wantStatus:   handover.StatusConfirmed,
			wantActual:   "4950",
			wantVariance: "-50",
			wantPct:      "1",
			wantEvent:    audit.EventHandoverConfirmed,
		},
		{
			name:         "AcceptAsIs",
			args:         args{params: handover.ConfirmParams{AcceptAsIs: true, ConfirmedBy: reviewer}},
			current:      pending(),
			wantStatus:   handover.StatusConfirmed,
			wantActual:   "5000",
			wantVariance: "0",
			wantPct:      "0",
			wantEvent:    audit.EventHandoverConfirmed,
		},
		{
			name: "AlreadyConfirmed",
			args: args{params: handover.ConfirmParams{ActualAmount: decPtr("5000"), ConfirmedBy: reviewer}},
			current: func() *handover.Handover {
				h := pending()
				h.Status = handover.StatusConfirmed
				return h
			}(),
			wantErr: handover.ErrInvalidState,
		},
		{
			name: "DisputedCannotBeReconfirmed",
			args: args{params: handover.ConfirmParams{ActualAmount: decPtr("5000"), ConfirmedBy: reviewer}},
			current: func() *handover.Handover {
				h := pending()
				h.Status = handover.StatusDisputed
				return h
			}(),
			wantErr: handover.ErrInvalidState,
		},
		{
			name:    "NotFound",
			args:    args{params: handover.ConfirmParams{ActualAmount: decPtr("5000"), ConfirmedBy: reviewer}},
			getErr:  handover.ErrNotFound,
			wantErr: handover.ErrNotFound,
		},
		{
			name:    "MissingAmount",
			args:    args{params: handover.ConfirmParams{ConfirmedBy: reviewer}},
			wantErr: handover.ErrValidation,
		},
		{
			name:    "MissingReviewer",
			args:    args{params: handover.ConfirmParams{ActualAmount: decPtr("5000")}},
			wantErr: handover.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, sink := newService(t)

			if tt.current != nil || tt.getErr != nil {
				expectBegin(m)
				m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(tt.current, tt.getErr)
			}

			if tt.wantErr == nil {
				m.policy.EXPECT().
					Thresholds(gomock.Any(), station, variance.ContextHandover).
					Return(variance.DefaultThresholds, nil)
				m.tx.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
			}

			got, err := svc.Confirm(context.Background(), id, tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.Empty(t, sink.events)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assertDecimal(t, tt.wantActual, got.ActualAmount)
			assertDecimal(t, tt.wantVariance, got.Variance)
			assertDecimal(t, tt.wantPct, got.VariancePercentage)
			require.NotNil(t, got.ConfirmedBy)
			assert.Equal(t, reviewer, *got.ConfirmedBy)
			assert.NotNil(t, got.ConfirmedAt)

			if tt.wantStatus == handover.StatusDisputed {
				assert.Equal(t, "shortfall of 150.00 (3.00%) exceeds tolerance", got.DisputeNote)
			} else {
				assert.Empty(t, got.DisputeNote)
			}

			require.Len(t, sink.events, 1)
			assert.Equal(t, tt.wantEvent, sink.events[0].Type)
			require.NotNil(t, sink.events[0].Before)
			assert.Equal(t, string(handover.StatusPending), sink.events[0].Before.Status)
			assert.Equal(t, string(tt.wantStatus), sink.events[0].After.Status)
		})
	}
}

func TestService_Confirm_ThresholdError(t *testing.T) {
	svc, m, sink := newService(t)

	id, station := uuid.New(), uuid.New()

	expectBegin(m)
	m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(&handover.Handover{
		ID:             id,
		StationID:      station,
		ExpectedAmount: dec("10"),
		Status:         handover.StatusPending,
	}, nil)
	m.policy.EXPECT().Thresholds(gomock.Any(), station, variance.ContextHandover).Return(variance.Thresholds{}, errors.New("db down"))

	_, err := svc.Confirm(context.Background(), id, handover.ConfirmParams{ActualAmount: decPtr("10"), ConfirmedBy: uuid.New()})
	assert.Error(t, err)
	assert.Empty(t, sink.events)
}

func TestService_ResolveDispute(t *testing.T) {
	id := uuid.New()
	resolver := uuid.New()

	withStatus := func(s handover.Status) *handover.Handover {
		return &handover.Handover{
			ID:             id,
			StationID:      uuid.New(),
			StageType:      handover.StageShiftCollection,
			ExpectedAmount: dec("5000"),
			ActualAmount:   decPtr("4850"),
			Variance:       decPtr("-150"),
			Status:         s,
		}
	}

	type testCase struct {
		name         string
		params       handover.ResolveParams
		current      *handover.Handover
		wantVariance string
		wantPct      string
		wantErr      error
	}

	tests := []testCase{
		{
			name:         "AgreedFinalAmount",
			params:       handover.ResolveParams{FinalAmount: dec("4900"), ResolvedBy: resolver, Note: "recount found 50"},
			current:      withStatus(handover.StatusDisputed),
			wantVariance: "-100",
			wantPct:      "2",
		},
		{
			name:    "AlreadyResolved",
			params:  handover.ResolveParams{FinalAmount: dec("4900"), ResolvedBy: resolver, Note: "again"},
			current: withStatus(handover.StatusResolved),
			wantErr: handover.ErrInvalidState,
		},
		{
			name:    "PendingCannotBeResolved",
			params:  handover.ResolveParams{FinalAmount: dec("4900"), ResolvedBy: resolver, Note: "skip"},
			current: withStatus(handover.StatusPending),
			wantErr: handover.ErrInvalidState,
		},
		{
			name:    "BlankNote",
			params:  handover.ResolveParams{FinalAmount: dec("4900"), ResolvedBy: resolver, Note: "   "},
			wantErr: handover.ErrValidation,
		},
		{
			name:    "NegativeFinal",
			params:  handover.ResolveParams{FinalAmount: dec("-5"), ResolvedBy: resolver, Note: "x"},
			wantErr: handover.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, sink := newService(t)

			if tt.current != nil {
				expectBegin(m)
				m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), id).Return(tt.current, nil)
			}

			if tt.wantErr == nil {
				m.tx.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
			}

			got, err := svc.ResolveDispute(context.Background(), id, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.Empty(t, sink.events)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, handover.StatusResolved, got.Status)
			assertDecimal(t, "4900", got.ActualAmount)
			assertDecimal(t, tt.wantVariance, got.Variance)
			assertDecimal(t, tt.wantPct, got.VariancePercentage)
			assert.Equal(t, tt.params.Note, got.ResolutionNote)
			require.NotNil(t, got.ResolvedBy)
			assert.Equal(t, resolver, *got.ResolvedBy)
			assert.NotNil(t, got.ResolvedAt)

			require.Len(t, sink.events, 1)
			assert.Equal(t, audit.EventHandoverResolved, sink.events[0].Type)
			assert.Equal(t, string(handover.StatusDisputed), sink.events[0].Before.Status)
		})
	}
}

// A resolved shift collection satisfies the next stage the same way a confirmed one does.
func TestService_ChainContinuesAfterResolution(t *testing.T) {
	svc, m, _ := newService(t)

	station, employee, manager := uuid.New(), uuid.New(), uuid.New()
	shift := &handover.Handover{
		ID:             uuid.New(),
		StationID:      station,
		StageType:      handover.StageShiftCollection,
		FromParty:      employee,
		ToParty:        manager,
		ExpectedAmount: dec("5000"),
		Status:         handover.StatusDisputed,
	}

	expectBegin(m)
	m.tx.EXPECT().GetHandoverForUpdate(gomock.Any(), shift.ID).Return(shift, nil)
	m.tx.EXPECT().UpdateReview(gomock.Any(), shift).Return(nil)
	m.tx.EXPECT().Commit().Return(nil)

	resolved, err := svc.ResolveDispute(context.Background(), shift.ID, handover.ResolveParams{
		FinalAmount: dec("4900"),
		ResolvedBy:  manager,
		Note:        "counted again",
	})
	require.NoError(t, err)
	require.Equal(t, handover.StatusResolved, resolved.Status)

	m.dir.EXPECT().ManagerOf(gomock.Any(), employee).Return(manager, nil)
	expectBegin(m)
	m.tx.EXPECT().LockChain(gomock.Any(), station, handover.StageEmployeeToManager, employee).Return(nil)
	m.tx.EXPECT().FindClaimablePrior(gomock.Any(), gomock.Any()).Return(resolved, nil)
	m.tx.EXPECT().CreateHandover(gomock.Any(), gomock.Any()).DoAndReturn(assignID)
	m.tx.EXPECT().Commit().Return(nil)

	next, err := svc.Create(context.Background(), handover.CreateParams{
		Stage:          handover.StageEmployeeToManager,
		StationID:      station,
		FromParty:      employee,
		ExpectedAmount: dec("4900"),
		RequestedBy:    employee,
	})
	require.NoError(t, err)
	require.NotNil(t, next.PreviousHandoverID)
	assert.Equal(t, shift.ID, *next.PreviousHandoverID)
	assert.Equal(t, manager, next.ToParty)
}

func TestService_List(t *testing.T) {
	svc, m, _ := newService(t)

	station := uuid.New()
	filter := handover.ListFilter{StationID: &station, Limit: 10}

	m.repo.EXPECT().ListHandovers(gomock.Any(), filter).Return([]*handover.Handover{{ID: uuid.New()}}, nil)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
