package service

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"hospitaldesk/internal/domain/entity"
	"hospitaldesk/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis keys for the overview counters
	patientsCounterKey     = "overview:patients"
	appointmentsCounterKey = "overview:appointments"
	billsCounterKey        = "overview:bills"
	unpaidCounterKey       = "overview:unpaid"
)

// OverviewService maintains the landing-page counters.
//
// When Redis is available the counters are kept there and bumped on every
// create, so the overview endpoint does not hit the database on each poll.
// When Redis is absent (or the counters were never synced) every summary
// falls back to counting rows directly.
//
// SyncFromDatabase must succeed once before the Redis path is trusted; the
// nightly job re-runs it to correct any drift.
type OverviewService struct {
	redisClient     *redis.Client
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	billRepo        repository.BillRepository

	synced atomic.Bool
}

func NewOverviewService(
	redisClient *redis.Client,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	billRepo repository.BillRepository,
) *OverviewService {
	return &OverviewService{
		redisClient:     redisClient,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		billRepo:        billRepo,
	}
}

// SyncFromDatabase recounts every collection and overwrites the Redis
// counters. Called at startup and by the nightly resync job.
func (s *OverviewService) SyncFromDatabase(ctx context.Context) error {
	if s.redisClient == nil {
		s.log.Debug("Redis disabled, overview counters served from database")
		return nil
	}

	startTime := time.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping counter sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	summary, err := s.countFromDatabase(ctx)
	if err != nil {
		return fmt.Errorf("count records: %w", err)
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, patientsCounterKey, summary.Patients, 0)
	pipe.Set(ctx, appointmentsCounterKey, summary.Appointments, 0)
	pipe.Set(ctx, billsCounterKey, summary.Bills, 0)
	pipe.Set(ctx, unpaidCounterKey, summary.Unpaid, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write counters: %w", err)
	}

	s.synced.Store(true)
	s.log.Infof("Overview counters synced from database in %v", time.Since(startTime))

	return nil
}

// Summary returns the current counts, preferring the Redis counters and
// falling back to database counts when they are unavailable.
func (s *OverviewService) Summary(ctx context.Context) (*entity.OverviewSummary, error) {
	if s.redisClient != nil && s.synced.Load() {
		summary, err := s.countFromRedis(ctx)
		if err == nil {
			return summary, nil
		}
		s.log.Warnf("Failed to read overview counters from Redis: %+v", err)
	}

	return s.countFromDatabase(ctx)
}

// RecordPatientCreated bumps the patient counter.
func (s *OverviewService) RecordPatientCreated(ctx context.Context) {
	s.increment(ctx, patientsCounterKey)
}

// RecordAppointmentCreated bumps the appointment counter.
func (s *OverviewService) RecordAppointmentCreated(ctx context.Context) {
	s.increment(ctx, appointmentsCounterKey)
}

// RecordBillCreated bumps the bill counter and, since new bills start
// unpaid, the unpaid counter with it.
func (s *OverviewService) RecordBillCreated(ctx context.Context) {
	if !s.counting() {
		return
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Incr(ctx, billsCounterKey)
	pipe.Incr(ctx, unpaidCounterKey)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to bump bill counters: %+v", err)
	}
}

func (s *OverviewService) increment(ctx context.Context, key string) {
	if !s.counting() {
		return
	}

	if err := s.redisClient.Incr(ctx, key).Err(); err != nil {
		s.log.Warnf("Failed to bump counter %s: %+v", key, err)
	}
}

// counting reports whether the Redis counters are live. Increments before a
// successful sync would seed wrong values, so they are skipped.
func (s *OverviewService) counting() bool {
	return s.redisClient != nil && s.synced.Load()
}

func (s *OverviewService) countFromRedis(ctx context.Context) (*entity.OverviewSummary, error) {
	values, err := s.redisClient.MGet(ctx, patientsCounterKey, appointmentsCounterKey, billsCounterKey, unpaidCounterKey).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]int64, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("counter %d missing", i)
		}
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %d malformed: %w", i, err)
		}
		counts[i] = count
	}

	return &entity.OverviewSummary{
		Patients:     counts[0],
		Appointments: counts[1],
		Bills:        counts[2],
		Unpaid:       counts[3],
	}, nil
}

func (s *OverviewService) countFromDatabase(ctx context.Context) (*entity.OverviewSummary, error) {
	patients, err := s.patientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	bills, err := s.billRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	unpaid, err := s.billRepo.CountByStatus(ctx, entity.BillStatusUnpaid)
	if err != nil {
		return nil, err
	}

	return &entity.OverviewSummary{
		Patients:     patients,
		Appointments: appointments,
		Bills:        bills,
		Unpaid:       unpaid,
	}, nil
}
