package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/cmd/tui/internal/view"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit"
	auditStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit/store"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/config"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/database"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
	handoverStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover/store"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/identity"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/integrity"
	integrityStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/integrity/store"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/logging"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/settlement"
	settlementStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/settlement/store"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance"
	varianceStore "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance/store"
)

type model struct {
	handoverService   *handover.Service
	settlementService *settlement.Service
	integrityService  *integrity.Service
	operator          uuid.UUID

	currentView View

	handoverView   view.HandoverModel
	settlementView view.SettlementModel
	integrityView  view.IntegrityModel
}

type View int

const (
	ViewMenu       View = 0
	ViewHandovers  View = 1
	ViewSettlement View = 2
	ViewIntegrity  View = 3
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewHandovers
				m.handoverView = view.NewHandoverModel(m.handoverService, m.operator)

				return m, m.handoverView.Init()
			case "2":
				m.currentView = ViewSettlement
				m.settlementView = view.NewSettlementModel(m.settlementService)

				return m, m.settlementView.Init()
			case "3":
				m.currentView = ViewIntegrity
				m.integrityView = view.NewIntegrityModel(m.integrityService)

				return m, m.integrityView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewHandovers:
		var newModel tea.Model
		newModel, cmd = m.handoverView.Update(msg)
		m.handoverView = newModel.(view.HandoverModel)
	case ViewSettlement:
		var newModel tea.Model
		newModel, cmd = m.settlementView.Update(msg)
		m.settlementView = newModel.(view.SettlementModel)
	case ViewIntegrity:
		var newModel tea.Model
		newModel, cmd = m.integrityView.Update(msg)
		m.integrityView = newModel.(view.IntegrityModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"FuelSync Custody Console\n\n" +
				"1. Handovers\n" +
				"2. Settlement History\n" +
				"3. Chain Integrity\n\n" +
				"q. Quit",
		)
	case ViewHandovers:
		return m.handoverView.View()
	case ViewSettlement:
		return m.settlementView.View()
	case ViewIntegrity:
		return m.integrityView.View()
	}

	return "Unknown View"
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The screen belongs to the program; logs go to a file.
	logFile, err := tea.LogToFile("fuelsync-console.log", "console")
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logging.Setup(logFile, cfg.App.LogLevel)

	operator, err := cfg.Operator()
	if err != nil {
		slog.Error("failed to resolve operator", "error", err)
		os.Exit(1)
	}

	thresholds, err := cfg.Thresholds()
	if err != nil {
		slog.Error("failed to load thresholds", "error", err)
		os.Exit(1)
	}

	tag, err := cfg.Language()
	if err != nil {
		slog.Error("failed to parse locale", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Options{MaxOpenConns: 4, MaxIdleConns: 2})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	dispatcher := audit.NewDispatcher(auditStore.New(db), cfg.Audit.QueueSize)

	policy := variance.NewPolicy(thresholds, varianceStore.New(db))

	m := model{
		handoverService:   handover.NewService(handoverStore.New(db), identity.New(db), policy, variance.NewNoteFormatter(tag), dispatcher),
		settlementService: settlement.NewService(settlementStore.New(db), policy, dispatcher),
		integrityService:  integrity.NewService(integrityStore.New(db), nil),
		operator:          operator,
		currentView:       ViewMenu,
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := dispatcher.Close(ctx); err != nil {
		slog.Error("failed to flush audit events", "error", err)
	}
}
