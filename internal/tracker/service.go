package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/bodystats/internal/bodystats"
	"github.com/2beens/bodystats/internal/telemetry/metrics"
	"github.com/2beens/bodystats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/blake2b"
)

const (
	megabyte               = 1024 * 1024
	defaultReportCacheSize = 16 * megabyte
	// freecache rejects entries larger than 1/1024 of its size, this keeps 16KB reports cacheable
	minReportCacheSize     = 16 * megabyte
	defaultReportCacheTTL  = 10 * time.Minute
)

type trackerRepo interface {
	ListMeasurements(ctx context.Context) ([]bodystats.Measurement, error)
	AddMeasurement(ctx context.Context, m bodystats.Measurement) error
	DeleteMeasurement(ctx context.Context, id string) error
	GetProfile(ctx context.Context) (bodystats.UserProfile, error)
	SaveProfile(ctx context.Context, profile bodystats.UserProfile) error
	GetGoal(ctx context.Context) (bodystats.Goal, error)
	SaveGoal(ctx context.Context, goal bodystats.Goal) error
}

type ServiceParams struct {
	ReportCacheSizeMB int
	ReportCacheTTL    time.Duration
	MetricsManager    *metrics.Manager
	// Now defaults to time.Now
	Now func() time.Time
}

type Service struct {
	repo           trackerRepo
	reportCache    *freecache.Cache
	reportCacheTTL int // seconds
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo trackerRepo, params ServiceParams) *Service {
	cacheSize := params.ReportCacheSizeMB * megabyte
	if cacheSize <= 0 {
		cacheSize = defaultReportCacheSize
	}
	if cacheSize < minReportCacheSize {
		log.Debugf("report cache size %dMB raised to the %dMB minimum", params.ReportCacheSizeMB, minReportCacheSize/megabyte)
		cacheSize = minReportCacheSize
	}
	cacheTTL := params.ReportCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultReportCacheTTL
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	metricsManager := params.MetricsManager
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}

	return &Service{
		repo:           repo,
		reportCache:    freecache.NewCache(cacheSize),
		reportCacheTTL: int(cacheTTL.Seconds()),
		metricsManager: metricsManager,
		now:            now,
	}
}

// snapshot is everything a report depends on
type snapshot struct {
	Measurements []bodystats.Measurement `json:"measurements"`
	Profile      bodystats.UserProfile   `json:"profile"`
	Goal         bodystats.Goal          `json:"goal"`
}

func (s *Service) takeSnapshot(ctx context.Context) (snapshot, error) {
	measurements, err := s.repo.ListMeasurements(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("list measurements: %w", err)
	}
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("get profile: %w", err)
	}
	goal, err := s.repo.GetGoal(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("get goal: %w", err)
	}
	return snapshot{Measurements: measurements, Profile: profile, Goal: goal}, nil
}

// AddMeasurement derives body fat and muscle mass with the current profile
// and stores the new measurement.
func (s *Service) AddMeasurement(ctx context.Context, input bodystats.MeasurementInput) (_ *bodystats.Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	m, err := bodystats.NewMeasurement(input, profile, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddMeasurement(ctx, m); err != nil {
		return nil, fmt.Errorf("add measurement: %w", err)
	}
	s.metricsManager.CounterMeasurementsAdded.Inc()
	span.SetAttributes(attribute.String("measurement.id", m.ID))
	log.Debugf("measurement [%s] added for %s", m.ID, m.Date)

	return &m, nil
}

func (s *Service) ListMeasurements(ctx context.Context) (_ []bodystats.Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return s.repo.ListMeasurements(ctx)
}

func (s *Service) DeleteMeasurement(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.DeleteMeasurement(ctx, id); err != nil {
		return fmt.Errorf("delete measurement [%s]: %w", id, err)
	}
	log.Debugf("measurement [%s] deleted", id)
	return nil
}

func (s *Service) Profile(ctx context.Context) (_ bodystats.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return s.repo.GetProfile(ctx)
}

func (s *Service) UpdateProfile(ctx context.Context, profile bodystats.UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := profile.Validate(); err != nil {
		return err
	}
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	log.Debugf("profile updated: %s, %d y, %g cm", profile.Gender, profile.Age, profile.Height)
	return nil
}

func (s *Service) Goal(ctx context.Context) (_ bodystats.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.goal.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return s.repo.GetGoal(ctx)
}

func (s *Service) UpdateGoal(ctx context.Context, goal bodystats.Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.goal.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := goal.Validate(); err != nil {
		return err
	}
	if err := s.repo.SaveGoal(ctx, goal); err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

// Report builds the progress report from a snapshot of the stored data.
// Reports are cached under a digest of the snapshot, so a cached report is
// never served once the history, the profile or the goal changed.
func (s *Service) Report(ctx context.Context) (_ *bodystats.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snap, err := s.takeSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	snapJson, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	digest := blake2b.Sum256(snapJson)
	cacheKey := digest[:]

	if report, ok := s.cachedReport(cacheKey); ok {
		s.metricsManager.CounterReportCacheHits.Inc()
		span.SetAttributes(attribute.Bool("report.cached", true))
		log.Tracef("report served from cache")
		return report, nil
	}

	report := bodystats.Analyze(snap.Measurements, snap.Profile, snap.Goal)
	s.metricsManager.CounterReportsBuilt.Inc()
	s.metricsManager.CounterInvalidMeasurementsSkip.Add(float64(report.SkippedCount))
	span.SetAttributes(
		attribute.Bool("report.cached", false),
		attribute.Int("report.measurements", report.MeasurementCount),
		attribute.Int("report.skipped", report.SkippedCount),
	)
	if report.SkippedCount > 0 {
		log.Warnf("report skipped %d implausible measurements", report.SkippedCount)
	}

	reportJson, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := s.reportCache.Set(cacheKey, reportJson, s.reportCacheTTL); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			log.Debugf("report of %d bytes too large to cache", len(reportJson))
		} else {
			log.Errorf("failed to cache report: %s", err)
		}
	}

	return &report, nil
}

func (s *Service) cachedReport(key []byte) (*bodystats.Report, bool) {
	cached, err := s.reportCache.Get(key)
	if err != nil {
		return nil, false
	}
	var report bodystats.Report
	if err := json.Unmarshal(cached, &report); err != nil {
		log.Errorf("failed to unmarshal cached report: %s", err)
		return nil, false
	}
	return &report, true
}

func (s *Service) MetricReport(ctx context.Context, metric bodystats.Metric) (*bodystats.MetricReport, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	mr, ok := report.Metric(metric)
	if !ok {
		return nil, fmt.Errorf("metric [%s]: %w", metric, ErrNotFound)
	}
	return &mr, nil
}
