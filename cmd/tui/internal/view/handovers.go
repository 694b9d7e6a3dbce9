package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
)

type handoverState int

const (
	handoverStateBrowse handoverState = iota
	handoverStateConfirm
	handoverStateResolve
)

var (
	statusFilters = []handover.Status{"", handover.StatusPending, handover.StatusDisputed, handover.StatusConfirmed, handover.StatusResolved}
	stageFilters  = append([]handover.StageType{""}, handover.Stages...)
)

// reviewInput is shared by pointer so the form keeps writing into the same values
// across model copies.
type reviewInput struct {
	amount     string
	acceptAsIs bool
	note       string
}

type HandoverModel struct {
	CommonModel
	svc      *handover.Service
	operator uuid.UUID

	state     handoverState
	table     table.Model
	handovers []*handover.Handover
	form      *huh.Form
	input     *reviewInput
	target    *handover.Handover

	statusIdx int
	stageIdx  int
	filter    handover.ListFilter

	loading bool
	err     error
	status  string
}

func NewHandoverModel(svc *handover.Service, operator uuid.UUID) HandoverModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Stage", Width: 20},
		{Title: "Status", Width: 10},
		{Title: "Expected", Width: 12},
		{Title: "Actual", Width: 12},
		{Title: "Variance", Width: 10},
		{Title: "From", Width: 9},
		{Title: "To", Width: 9},
	}

	return HandoverModel{
		svc:      svc,
		operator: operator,
		table:    newTable(columns),
		loading:  true,
	}
}

func (m HandoverModel) Title() string { return "Handovers" }
func (m HandoverModel) ShortHelp() string {
	if m.state != handoverStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | c: confirm | v: resolve | s: status | t: stage | r: refresh"
}

func (m HandoverModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m HandoverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadHandoversMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.handovers = msg.handovers
		m.refreshTable()

		return m, nil

	case reviewDoneMsg:
		m.state = handoverStateBrowse
		m.form = nil
		m.target = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Handover %s is now %s", ShortID(msg.handover.ID), msg.handover.Status)
		if msg.handover.DisputeNote != "" {
			m.status += ": " + msg.handover.DisputeNote
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == handoverStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m HandoverModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.statusIdx = (m.statusIdx + 1) % len(statusFilters)
			m.applyFilter()

			return m, m.loadCmd()
		case "t":
			m.stageIdx = (m.stageIdx + 1) % len(stageFilters)
			m.applyFilter()

			return m, m.loadCmd()
		case "c":
			return m.openForm(handover.StatusPending, handoverStateConfirm)
		case "v":
			return m.openForm(handover.StatusDisputed, handoverStateResolve)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HandoverModel) selected() *handover.Handover {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.handovers) {
		return nil
	}

	return m.handovers[idx]
}

func (m HandoverModel) openForm(want handover.Status, state handoverState) (tea.Model, tea.Cmd) {
	h := m.selected()
	if h == nil {
		return m, nil
	}

	if h.Status != want {
		m.status = fmt.Sprintf("Handover %s is %s, not %s", ShortID(h.ID), h.Status, want)
		return m, nil
	}

	m.input = &reviewInput{}
	m.target = h
	m.state = state

	if state == handoverStateConfirm {
		m.form = confirmForm(m.input)
	} else {
		m.form = resolveForm(m.input)
	}

	m.table.Blur()

	return m, m.form.Init()
}

func validAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter an amount such as 4850.00")
	}

	if d.IsNegative() {
		return errors.New("amount cannot be negative")
	}

	return nil
}

func confirmForm(in *reviewInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Accept the expected amount as counted?").
				Value(&in.acceptAsIs),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Counted amount").
				Placeholder("0.00").
				Value(&in.amount).
				Validate(validAmount),
		).WithHideFunc(func() bool { return in.acceptAsIs }),
	).WithWidth(45).WithShowHelp(false)
}

func resolveForm(in *reviewInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Agreed final amount").
				Placeholder("0.00").
				Value(&in.amount).
				Validate(validAmount),
			huh.NewText().
				Title("Resolution note").
				Value(&in.note).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a note is required")
					}

					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m HandoverModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = handoverStateBrowse
		m.form = nil
		m.target = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.submitCmd()
}

func (m HandoverModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading handovers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [t] Stage: %s",
		activeStyle(label(string(statusFilters[m.statusIdx]))),
		activeStyle(label(string(stageFilters[m.stageIdx]))),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	if m.form != nil && m.target != nil {
		title := "Confirm Handover"
		if m.state == handoverStateResolve {
			title = "Resolve Dispute"
		}

		detail := fmt.Sprintf("%s\n\n%s  expected %s", title, m.target.StageType, FormatAmount(m.target.ExpectedAmount))
		if m.target.DisputeNote != "" {
			detail += "\n" + m.target.DisputeNote
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(detail + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func label(s string) string {
	if s == "" {
		return "All"
	}

	return s
}

func (m *HandoverModel) applyFilter() {
	m.filter.Status = nil
	if s := statusFilters[m.statusIdx]; s != "" {
		m.filter.Status = &s
	}

	m.filter.Stage = nil
	if s := stageFilters[m.stageIdx]; s != "" {
		m.filter.Stage = &s
	}
}

func (m *HandoverModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.handovers))
	for _, h := range m.handovers {
		rows = append(rows, table.Row{
			FormatDate(h.OccurredOn),
			string(h.StageType),
			string(h.Status),
			FormatAmount(h.ExpectedAmount),
			FormatOptional(h.ActualAmount),
			FormatOptional(h.Variance),
			ShortID(h.FromParty),
			ShortID(h.ToParty),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadHandoversMsg struct {
	handovers []*handover.Handover
	err       error
}

func (m HandoverModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		hs, err := m.svc.List(ctx, filter)

		return loadHandoversMsg{handovers: hs, err: err}
	}
}

type reviewDoneMsg struct {
	handover *handover.Handover
	err      error
}

func (m HandoverModel) submitCmd() tea.Cmd {
	var (
		id      = m.target.ID
		in      = *m.input
		resolve = m.state == handoverStateResolve
	)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var amount decimal.Decimal

		if !in.acceptAsIs || resolve {
			d, err := decimal.NewFromString(strings.TrimSpace(in.amount))
			if err != nil {
				return reviewDoneMsg{err: err}
			}

			amount = d
		}

		var (
			h   *handover.Handover
			err error
		)

		if resolve {
			h, err = m.svc.ResolveDispute(ctx, id, handover.ResolveParams{
				FinalAmount: amount,
				ResolvedBy:  m.operator,
				Note:        in.note,
			})
		} else {
			h, err = m.svc.Confirm(ctx, id, handover.ConfirmParams{
				ActualAmount: &amount,
				AcceptAsIs:   in.acceptAsIs,
				ConfirmedBy:  m.operator,
			})
		}

		return reviewDoneMsg{handover: h, err: err}
	}
}

