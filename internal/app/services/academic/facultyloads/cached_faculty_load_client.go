package facultyloads

import (
	"context"
	"fmt"
	"time"
	"unidash-service/internal/app/contracts"
	"unidash-service/internal/app/models"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// cachedFacultyLoadClient is a read-through redis cache in front of another client. Cache
// failures are logged and never fail the request.
type cachedFacultyLoadClient struct {
	next      contracts.FacultyLoadClient
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	Log       *zap.Logger
}

func NewCachedFacultyLoadClient(next contracts.FacultyLoadClient, redisRepo contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.FacultyLoadClient {
	return &cachedFacultyLoadClient{
		next:      next,
		redisRepo: redisRepo,
		ttl:       ttl,
		Log:       logger,
	}
}

func (c *cachedFacultyLoadClient) FindFacultyLoads(ctx context.Context, query *models.FacultyLoadQuery) ([]models.FacultyLoad, error) {
	key := fmt.Sprintf(constvars.RedisKeyFacultyLoadsFormat, query.FacultyID, query.AcademicYear, query.Semester)
	return c.readThrough(ctx, key, func() ([]models.FacultyLoad, error) {
		return c.next.FindFacultyLoads(ctx, query)
	})
}

func (c *cachedFacultyLoadClient) ListFacultyLoads(ctx context.Context, term *models.AcademicTerm) ([]models.FacultyLoad, error) {
	key := fmt.Sprintf(constvars.RedisKeyTermLoadsFormat, term.AcademicYear, term.Semester)
	return c.readThrough(ctx, key, func() ([]models.FacultyLoad, error) {
		return c.next.ListFacultyLoads(ctx, term)
	})
}

func (c *cachedFacultyLoadClient) readThrough(ctx context.Context, key string, load func() ([]models.FacultyLoad, error)) ([]models.FacultyLoad, error) {
	requestID := utils.GetRequestID(ctx)

	cached, err := c.redisRepo.Get(ctx, key)
	if err != nil {
		c.Log.Warn("cachedFacultyLoadClient.readThrough cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	} else if cached != "" {
		loads := make([]models.FacultyLoad, 0)
		if err := json.Unmarshal([]byte(cached), &loads); err == nil {
			c.Log.Debug("cachedFacultyLoadClient.readThrough cache hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Bool(constvars.LoggingFromCacheKey, true),
			)
			return loads, nil
		}
		c.Log.Warn("cachedFacultyLoadClient.readThrough dropping unreadable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		if err := c.redisRepo.Delete(ctx, key); err != nil {
			c.Log.Warn("cachedFacultyLoadClient.readThrough cache delete failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}

	loads, err := load()
	if err != nil {
		return nil, err
	}

	if err := c.redisRepo.Set(ctx, key, loads, c.ttl); err != nil {
		c.Log.Warn("cachedFacultyLoadClient.readThrough cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	return loads, nil
}
