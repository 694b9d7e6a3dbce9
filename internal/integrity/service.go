package integrity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const scanTimeout = 5 * time.Minute

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=integrity
type Repository interface {
	// HandoverLinks returns every handover with its resolved prior, optionally for one station.
	HandoverLinks(ctx context.Context, stationID *uuid.UUID) ([]Link, error)
}

// Reporter publishes the broken-link count of the last full scan.
type Reporter interface {
	SetBrokenLinks(n int)
}

type Service struct {
	repo     Repository
	reporter Reporter
}

func NewService(repo Repository, reporter Reporter) *Service {
	return &Service{repo: repo, reporter: reporter}
}

// Check scans the chain. A nil stationID scans every station and updates the reporter.
func (s *Service) Check(ctx context.Context, stationID *uuid.UUID) ([]Finding, error) {
	links, err := s.repo.HandoverLinks(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("loading handover links: %w", err)
	}

	findings := Evaluate(links)

	if stationID == nil && s.reporter != nil {
		s.reporter.SetBrokenLinks(len(findings))
	}

	return findings, nil
}

// Schedule registers a full scan on c using a cron expression such as "@hourly".
func (s *Service) Schedule(c *cron.Cron, expr string) (cron.EntryID, error) {
	id, err := c.AddFunc(expr, s.scan)
	if err != nil {
		return 0, fmt.Errorf("scheduling integrity scan %q: %w", expr, err)
	}

	return id, nil
}

func (s *Service) scan() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	findings, err := s.Check(ctx, nil)
	if err != nil {
		slog.Error("failed to scan handover chain", "error", err)
		return
	}

	for _, f := range findings {
		slog.Warn("broken handover link",
			"handover_id", f.HandoverID,
			"station_id", f.StationID,
			"stage", f.Stage,
			"problem", f.Problem,
		)
	}

	slog.Info("handover chain scanned", "broken", len(findings))
}
