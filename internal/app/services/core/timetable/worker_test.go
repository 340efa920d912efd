package timetable

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"unidash-service/internal/app/config"
	"unidash-service/internal/app/contracts"
	"unidash-service/internal/app/models"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/dto/responses"
	"unidash-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLocker struct {
	mu        sync.Mutex
	acquire   bool
	lockErr   error
	lockedKey string
	unlocked  bool
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lockedKey = key
	return l.acquire, "token-1", l.lockErr
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.unlocked = lockValue == "token-1"
	return nil
}

func (l *fakeLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

// auditOnlyUsecase records AuditTerm calls; other methods are not used by the worker.
type auditOnlyUsecase struct {
	contracts.TimetableUsecase
	terms      []models.AcademicTerm
	requestIDs []string
	err        error
}

func (u *auditOnlyUsecase) AuditTerm(ctx context.Context, term *models.AcademicTerm) (*responses.TermAudit, error) {
	u.terms = append(u.terms, *term)
	u.requestIDs = append(u.requestIDs, utils.GetRequestID(ctx))
	if u.err != nil {
		return nil, u.err
	}
	return &responses.TermAudit{AcademicYear: term.AcademicYear, Semester: term.Semester}, nil
}

func workerConfig() *config.InternalConfig {
	return &config.InternalConfig{Timetable: config.AppTimetable{
		AuditCronSpec:     "@hourly",
		AuditAcademicYear: "2025-2026",
		AuditSemester:     "1st",
	}}
}

func TestWorker_RunOnce(t *testing.T) {
	t.Run("Leader Runs Audit", func(t *testing.T) {
		locker := &fakeLocker{acquire: true}
		usecase := &auditOnlyUsecase{}
		w := NewWorker(zap.NewNop(), workerConfig(), locker, usecase)

		w.runOnce(context.Background())

		require.Len(t, usecase.terms, 1)
		assert.Equal(t, models.AcademicTerm{AcademicYear: "2025-2026", Semester: "1st"}, usecase.terms[0])
		assert.Contains(t, usecase.requestIDs[0], constvars.REQUEST_ID_PREFIX)
		assert.Equal(t, constvars.RedisKeyAuditLeader, locker.lockedKey)
		assert.True(t, locker.unlocked)
	})

	t.Run("Follower Skips Audit", func(t *testing.T) {
		locker := &fakeLocker{acquire: false}
		usecase := &auditOnlyUsecase{}
		w := NewWorker(zap.NewNop(), workerConfig(), locker, usecase)

		w.runOnce(context.Background())

		assert.Empty(t, usecase.terms)
		assert.False(t, locker.unlocked)
	})

	t.Run("Lock Error Skips Audit", func(t *testing.T) {
		locker := &fakeLocker{lockErr: errors.New("redis down")}
		usecase := &auditOnlyUsecase{}
		w := NewWorker(zap.NewNop(), workerConfig(), locker, usecase)

		w.runOnce(context.Background())

		assert.Empty(t, usecase.terms)
	})

	t.Run("Audit Error Still Releases Lock", func(t *testing.T) {
		locker := &fakeLocker{acquire: true}
		usecase := &auditOnlyUsecase{err: errors.New("backend down")}
		w := NewWorker(zap.NewNop(), workerConfig(), locker, usecase)

		w.runOnce(context.Background())

		assert.Len(t, usecase.terms, 1)
		assert.True(t, locker.unlocked)
	})
}

func TestWorker_StartStop(t *testing.T) {
	t.Run("Disabled Without Term", func(t *testing.T) {
		cfg := workerConfig()
		cfg.Timetable.AuditSemester = ""
		w := NewWorker(zap.NewNop(), cfg, &fakeLocker{}, &auditOnlyUsecase{})

		w.Start(context.Background())
		assert.Nil(t, w.cron)
		w.Stop()
	})

	t.Run("Invalid Spec Falls Back", func(t *testing.T) {
		cfg := workerConfig()
		cfg.Timetable.AuditCronSpec = "every now and then"
		w := NewWorker(zap.NewNop(), cfg, &fakeLocker{}, &auditOnlyUsecase{})

		w.Start(context.Background())
		require.NotNil(t, w.cron)
		assert.Len(t, w.cron.Entries(), 1)
		w.Stop()
	})
}

func TestWorker_LockTTL(t *testing.T) {
	cfg := workerConfig()
	w := NewWorker(zap.NewNop(), cfg, &fakeLocker{}, &auditOnlyUsecase{})
	assert.Equal(t, defaultAuditLockTTL, w.lockTTL())

	cfg.Timetable.AuditLockTTLInSeconds = 30
	assert.Equal(t, 30*time.Second, w.lockTTL())
}
