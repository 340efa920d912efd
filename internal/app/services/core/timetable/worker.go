package timetable

import (
	"context"
	"time"
	"unidash-service/internal/app/config"
	"unidash-service/internal/app/contracts"
	"unidash-service/internal/app/models"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	defaultAuditCronSpec = "@daily"
	defaultAuditLockTTL  = 2 * time.Minute
)

// Worker periodically audits the configured term for schedules that cannot be placed.
// Only the replica holding the leader lock runs an audit.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	timetable contracts.TimetableUsecase
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, timetableUsecase contracts.TimetableUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, timetable: timetableUsecase}
}

// Start schedules the audit. It is a no-op when no audit term is configured.
func (w *Worker) Start(ctx context.Context) {
	term := w.term()
	if term.AcademicYear == "" || term.Semester == "" {
		w.log.Info("timetable.worker: no audit term configured; worker disabled")
		return
	}

	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Timetable.AuditCronSpec
	if spec == "" {
		spec = defaultAuditCronSpec
	}
	if _, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) }); err != nil {
		w.log.Warn("timetable.worker: invalid cron spec; falling back to @daily",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultAuditCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("timetable.worker: started",
		zap.String("cron_spec", spec),
		zap.String(constvars.LoggingAcademicYearKey, term.AcademicYear),
		zap.String(constvars.LoggingSemesterKey, term.Semester),
	)
}

// Stop cancels an in-flight audit and waits for the cron runner to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) term() models.AcademicTerm {
	return models.AcademicTerm{
		AcademicYear: w.cfg.Timetable.AuditAcademicYear,
		Semester:     w.cfg.Timetable.AuditSemester,
	}
}

func (w *Worker) lockTTL() time.Duration {
	if w.cfg.Timetable.AuditLockTTLInSeconds <= 0 {
		return defaultAuditLockTTL
	}
	return time.Duration(w.cfg.Timetable.AuditLockTTLInSeconds) * time.Second
}

func (w *Worker) runOnce(ctx context.Context) {
	key := constvars.RedisKeyAuditLeader
	ttl := w.lockTTL()

	acquired, token, err := w.locker.TryLock(ctx, key, ttl)
	if err != nil {
		w.log.Warn("timetable.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("timetable.worker: leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.Background(), key, token); err != nil {
			w.log.Warn("timetable.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLock(refreshCtx, key, token, ttl)

	requestID := utils.GenerateRequestID()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	term := w.term()
	report, err := w.timetable.AuditTerm(ctx, &term)
	if err != nil {
		w.log.Warn("timetable.worker: audit failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	w.log.Info("timetable.worker: audit finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLoadsCountKey, report.TotalLoads),
		zap.Int(constvars.LoggingDiagnosticsKey, report.TotalDiagnostics),
		zap.Int("faculties", len(report.Faculties)),
	)
}

// refreshLock keeps the leader lock alive at half its TTL until ctx is done.
func (w *Worker) refreshLock(ctx context.Context, key, token string, ttl time.Duration) {
	tick := time.NewTicker(ttl / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, key, token, ttl); err != nil {
				w.log.Warn("timetable.worker: failed to refresh leader lock", zap.Error(err))
			}
		}
	}
}
