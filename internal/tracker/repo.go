package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/bodystats/internal/bodystats"
	"github.com/2beens/bodystats/internal/store"
	"github.com/2beens/bodystats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrNotFound = errors.New("not found")

const (
	keyMeasurements = "measurements"
	keyProfile      = "profile"
	keyGoals        = "goals"
)

// Repo keeps the measurement history, the profile and the goal as JSON blobs.
type Repo struct {
	blobs store.BlobStore
	// serializes read-modify-write of the measurements blob
	mu sync.Mutex
}

func NewRepo(blobs store.BlobStore) *Repo {
	return &Repo{
		blobs: blobs,
	}
}

// ListMeasurements returns a fresh slice on every call, callers may keep it.
func (r *Repo) ListMeasurements(ctx context.Context) (_ []bodystats.Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	measurements, err := r.loadMeasurements(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("measurements.count", len(measurements)))
	return measurements, nil
}

func (r *Repo) AddMeasurement(ctx context.Context, m bodystats.Measurement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("measurement.id", m.ID))

	r.mu.Lock()
	defer r.mu.Unlock()

	measurements, err := r.loadMeasurements(ctx)
	if err != nil {
		return err
	}
	return r.saveMeasurements(ctx, append(measurements, m))
}

func (r *Repo) DeleteMeasurement(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("measurement.id", id))

	r.mu.Lock()
	defer r.mu.Unlock()

	measurements, err := r.loadMeasurements(ctx)
	if err != nil {
		return err
	}

	kept := make([]bodystats.Measurement, 0, len(measurements))
	for _, m := range measurements {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(measurements) {
		return ErrNotFound
	}
	return r.saveMeasurements(ctx, kept)
}

// GetProfile stores and returns the default profile on first use.
func (r *Repo) GetProfile(ctx context.Context) (_ bodystats.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var profile bodystats.UserProfile
	err = r.load(ctx, keyProfile, &profile)
	if errors.Is(err, store.ErrKeyNotFound) {
		profile = bodystats.DefaultProfile()
		return profile, r.save(ctx, keyProfile, profile)
	}
	if err != nil {
		return bodystats.UserProfile{}, err
	}
	return profile, nil
}

func (r *Repo) SaveProfile(ctx context.Context, profile bodystats.UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return r.save(ctx, keyProfile, profile)
}

// GetGoal returns an empty goal when none was saved yet.
func (r *Repo) GetGoal(ctx context.Context) (_ bodystats.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.goal.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var goal bodystats.Goal
	err = r.load(ctx, keyGoals, &goal)
	if errors.Is(err, store.ErrKeyNotFound) {
		return bodystats.Goal{}, nil
	}
	if err != nil {
		return bodystats.Goal{}, err
	}
	return goal, nil
}

func (r *Repo) SaveGoal(ctx context.Context, goal bodystats.Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.goal.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return r.save(ctx, keyGoals, goal)
}

func (r *Repo) loadMeasurements(ctx context.Context) ([]bodystats.Measurement, error) {
	var measurements []bodystats.Measurement
	err := r.load(ctx, keyMeasurements, &measurements)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []bodystats.Measurement{}, nil
	}
	if err != nil {
		return nil, err
	}
	return measurements, nil
}

func (r *Repo) saveMeasurements(ctx context.Context, measurements []bodystats.Measurement) error {
	return r.save(ctx, keyMeasurements, measurements)
}

func (r *Repo) load(ctx context.Context, key string, v any) error {
	payload, err := r.blobs.Get(ctx, key)
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return store.ErrKeyNotFound
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *Repo) save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.blobs.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
