package location

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	locationerrors "github.com/riooastfu/pastimobile-be/internal/location/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Data master lokasi jarang berubah; TTL panjang cukup.
const (
	ActiveLocationsKey = "locations:active"
	activeCacheTTL     = 30 * time.Minute
)

//go:generate mockgen -source=location_service.go -destination=mock/location_service_mock.go -package=mock
type Service interface {
	GetRadiusByRole(ctx context.Context, roleID string) ([]RadiusResponse, error)
	ListActive(ctx context.Context) ([]LocationResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("location.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("location.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetRadiusByRole(ctx context.Context, roleID string) ([]RadiusResponse, error) {
	roleID = strings.TrimSpace(roleID)
	if roleID == "" {
		return nil, locationerrors.ErrRoleMissing
	}

	rows, err := s.repo.FindRadiusByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, locationerrors.ErrRadiusNotFound
	}

	res := make([]RadiusResponse, len(rows))
	for i, r := range rows {
		res[i] = RadiusResponse{Tikor: r.Tikor, NamaLokasi: r.NamaLokasi, Radius: r.Radius}
	}
	return res, nil
}

func (s *service) ListActive(ctx context.Context) ([]LocationResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, ActiveLocationsKey).Bytes()
		if err == nil {
			var resp []LocationResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return resp, nil
			}
		}
	}

	fctx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(ActiveLocationsKey, func() (interface{}, error) {
		rows, err := s.repo.FindActive(fctx)
		if err != nil {
			return nil, err
		}

		resp := make([]LocationResponse, len(rows))
		for i, r := range rows {
			resp[i] = LocationResponse{Kode: r.Kode, Lokasi: r.Lokasi, NoUrut: r.NoUrut}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(fctx, ActiveLocationsKey, jsonData, activeCacheTTL).Err(); err != nil {
					s.logger.Warn("write locations cache failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]LocationResponse), nil
}
