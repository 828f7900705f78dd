package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gytax/internal/domain/ratetable"
)

const (
	JobRateTableRefresh = "rate_table_refresh"

	sourceDatabase = "database"
)

// Service runs background jobs on a single worker fed by a bounded queue.
type Service struct {
	store    ratetable.StoreAPI
	registry *ratetable.Registry
	interval time.Duration
	hook     ratetable.ReloadHook
	log      *zap.Logger
	queue    chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

// New builds the job service. A nil store or non-positive interval disables
// the rate table refresh schedule.
func New(store ratetable.StoreAPI, registry *ratetable.Registry, interval time.Duration, hook ratetable.ReloadHook, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		registry: registry,
		interval: interval,
		hook:     hook,
		log:      log,
		queue:    make(chan job, 16),
	}
}

// Run starts the worker and schedulers and blocks until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.store != nil && s.interval > 0 {
		go s.scheduleRefresh(ctx, s.interval)
	}
	s.worker(ctx)
	return nil
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		s.log.Warn("job queue full", zap.String("job_type", jobType))
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				s.log.Warn("job run failed", zap.String("job_type", j.Type), zap.Error(err))
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	started := time.Now()
	details, err := j.Run(ctx)
	s.log.Debug("job run finished",
		zap.String("job_type", j.Type),
		zap.Duration("duration", time.Since(started)),
		zap.Any("details", details),
		zap.Error(err),
	)
	return details, err
}

func (s *Service) scheduleRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(JobRateTableRefresh, s.RefreshRateTables)
		}
	}
}

// RefreshRateTables copies every active rate table from the store into the
// registry. A row that fails to decode or validate is skipped and the set
// already registered for its year stays active.
func (s *Service) RefreshRateTables(ctx context.Context) (any, error) {
	docs, err := s.store.ListActive(ctx)
	if err != nil {
		s.observe(err)
		return nil, err
	}

	loaded := make([]int, 0, len(docs))
	skipped := make([]int, 0)
	for _, doc := range docs {
		err := s.put(doc)
		s.observe(err)
		if err != nil {
			s.log.Warn("rate table refresh skipped", zap.Int("fiscal_year", doc.FiscalYear), zap.Error(err))
			skipped = append(skipped, doc.FiscalYear)
			continue
		}
		loaded = append(loaded, doc.FiscalYear)
	}
	return map[string]any{"loaded": loaded, "skipped": skipped}, nil
}

func (s *Service) put(doc ratetable.Document) error {
	set, err := doc.Decode()
	if err != nil {
		return err
	}
	return s.registry.Put(set)
}

func (s *Service) observe(err error) {
	if s.hook != nil {
		s.hook(sourceDatabase, err)
	}
}
