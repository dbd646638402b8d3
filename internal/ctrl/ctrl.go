package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/hr-auth/internal/auth/jwt"
	"github.com/JMURv/hr-auth/internal/config"
)

type AppRepo interface {
	authRepo
}

type AppCtrl interface {
	authCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type Controller struct {
	au    jwt.Port
	repo  AppRepo
	cache CacheService
	clock Clock
	conf  config.AuthConfig
}

func New(au jwt.Port, repo AppRepo, cache CacheService, conf config.AuthConfig) *Controller {
	return &Controller{
		au:    au,
		repo:  repo,
		cache: cache,
		clock: realClock{},
		conf:  conf,
	}
}

// WithClock substitutes the wall-clock source, for tests.
func (c *Controller) WithClock(clock Clock) *Controller {
	c.clock = clock
	return c
}
