package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/integrity"
)

type IntegrityModel struct {
	CommonModel
	svc *integrity.Service

	table    table.Model
	findings []integrity.Finding
	loading  bool
	err      error
}

func NewIntegrityModel(svc *integrity.Service) IntegrityModel {
	columns := []table.Column{
		{Title: "Handover", Width: 10},
		{Title: "Station", Width: 10},
		{Title: "Stage", Width: 20},
		{Title: "Previous", Width: 10},
		{Title: "Problem", Width: 18},
	}

	return IntegrityModel{
		svc:     svc,
		table:   newTable(columns),
		loading: true,
	}
}

func (m IntegrityModel) Title() string     { return "Chain Integrity" }
func (m IntegrityModel) ShortHelp() string { return "Esc: back | r: rescan" }

func (m IntegrityModel) Init() tea.Cmd {
	return m.scanCmd()
}

func (m IntegrityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanMsg:
		m.loading = false
		m.err = msg.err
		m.findings = msg.findings
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.scanCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m IntegrityModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Scanning handover chain...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.findings) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("Every handover link holds.\n\nEsc: back | r: rescan")
	}

	header := fmt.Sprintf("%s broken links", activeStyle(fmt.Sprint(len(m.findings))))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	))
}

func (m *IntegrityModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.findings))
	for _, f := range m.findings {
		prev := "-"
		if f.PreviousID != nil {
			prev = ShortID(*f.PreviousID)
		}

		rows = append(rows, table.Row{
			ShortID(f.HandoverID),
			ShortID(f.StationID),
			string(f.Stage),
			prev,
			string(f.Problem),
		})
	}

	m.table.SetRows(rows)
}

type scanMsg struct {
	findings []integrity.Finding
	err      error
}

func (m IntegrityModel) scanCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		findings, err := m.svc.Check(ctx, nil)

		return scanMsg{findings: findings, err: err}
	}
}
