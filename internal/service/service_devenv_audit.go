package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/system-sage/internal/devenv"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/metrics"
	"github.com/MKhiriev/system-sage/models"
)

type devEnvAuditService struct {
	auditor devenv.Auditor

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewDevEnvAuditService(auditor devenv.Auditor, m *metrics.Metrics, logger *logger.Logger) DevEnvAuditService {
	return &devEnvAuditService{
		auditor: auditor,
		metrics: m,
		logger:  logger,
	}
}

func (s *devEnvAuditService) GetReport(ctx context.Context) (models.AuditReport, error) {
	start := time.Now()
	report, err := s.auditor.Scan(ctx)
	if err != nil {
		return models.AuditReport{}, fmt.Errorf("%w: %w", ErrAuditingDevEnv, err)
	}

	bySeverity := make(map[string]int, 3)
	for _, issue := range report.Issues {
		bySeverity[issue.Severity]++
	}
	s.metrics.ObserveAudit(time.Since(start), bySeverity)

	logger.FromContext(ctx).Info().
		Str("func", "devEnvAuditService.GetReport").
		Int("components", len(report.Components)).
		Int("env_vars", len(report.EnvironmentVariables)).
		Int("issues", len(report.Issues)).
		Msg("developer environment audited")

	return report, nil
}

func (s *devEnvAuditService) GetDetectedComponents(ctx context.Context) ([]string, error) {
	report, err := s.GetReport(ctx)
	if err != nil {
		return nil, err
	}
	return lines(report.Components), nil
}

func (s *devEnvAuditService) GetEnvironmentVariables(ctx context.Context) ([]string, error) {
	report, err := s.GetReport(ctx)
	if err != nil {
		return nil, err
	}
	return lines(report.EnvironmentVariables), nil
}

func (s *devEnvAuditService) GetIdentifiedIssues(ctx context.Context) ([]string, error) {
	report, err := s.GetReport(ctx)
	if err != nil {
		return nil, err
	}
	return lines(report.Issues), nil
}

func lines[T fmt.Stringer](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}
