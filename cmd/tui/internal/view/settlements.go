package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/settlement"
)

type SettlementModel struct {
	CommonModel
	svc *settlement.Service

	stationInput textinput.Model
	station      uuid.UUID
	table        table.Model
	settlements  []*settlement.Settlement

	loading bool
	err     error
}

func NewSettlementModel(svc *settlement.Service) SettlementModel {
	in := textinput.New()
	in.Placeholder = "station id"
	in.CharLimit = 36
	in.Width = 38
	in.Prompt = "Station: "
	in.Focus()

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Status", Width: 13},
		{Title: "Expected", Width: 12},
		{Title: "Counted", Width: 12},
		{Title: "Variance", Width: 10},
		{Title: "Var %", Width: 7},
		{Title: "Readings", Width: 8},
	}

	return SettlementModel{
		svc:          svc,
		stationInput: in,
		table:        newTable(columns),
	}
}

func (m SettlementModel) Title() string { return "Settlements" }
func (m SettlementModel) ShortHelp() string {
	if m.station == uuid.Nil {
		return "Enter: load history | Esc: back"
	}

	return "Esc: back | n: other station | r: refresh"
}

func (m SettlementModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SettlementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		m.loading = false
		m.err = msg.err
		m.settlements = msg.settlements
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.station == uuid.Nil {
		return m.updateInput(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			m.station = uuid.Nil
			m.stationInput.SetValue("")
			m.stationInput.Focus()

			return m, textinput.Blink
		case "r":
			m.loading = true
			return m, m.historyCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m SettlementModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			id, err := uuid.Parse(strings.TrimSpace(m.stationInput.Value()))
			if err != nil {
				m.err = fmt.Errorf("not a station id: %w", err)
				return m, nil
			}

			m.err = nil
			m.station = id
			m.loading = true
			m.stationInput.Blur()

			return m, m.historyCmd()
		}
	}

	var cmd tea.Cmd
	m.stationInput, cmd = m.stationInput.Update(msg)

	return m, cmd
}

func (m SettlementModel) View() string {
	if m.station == uuid.Nil {
		content := "Settlement history\n\n" + m.stationInput.View()
		if m.err != nil {
			content += "\n\n" + m.err.Error()
		}

		return lipgloss.NewStyle().Padding(2).Render(content)
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading settlements...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Station %s | %d settlements", activeStyle(m.station.String()), len(m.settlements))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	))
}

func (m *SettlementModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.settlements))
	for _, s := range m.settlements {
		rows = append(rows, table.Row{
			FormatDate(s.Date),
			string(s.Status),
			FormatAmount(s.ExpectedCash),
			FormatAmount(s.ActualCash),
			FormatAmount(s.Variance),
			s.VariancePercentage.StringFixed(2),
			fmt.Sprint(len(s.ReadingIDs)),
		})
	}

	m.table.SetRows(rows)
}

type historyMsg struct {
	settlements []*settlement.Settlement
	err         error
}

func (m SettlementModel) historyCmd() tea.Cmd {
	station := m.station

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sts, err := m.svc.History(ctx, station, settlement.MaxHistoryLimit)

		return historyMsg{settlements: sts, err: err}
	}
}
