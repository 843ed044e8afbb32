package cmd

import (
	"context"
	"time"

	"github.com/MrJJimenez/jobagg/internal/cache"
	"github.com/MrJJimenez/jobagg/internal/server"
)

type ServeCmd struct {
	Addr    string `help:"Listen address." default:":8080" env:"JOBAGG_ADDR"`
	Proxies string `help:"Comma-separated proxy URLs." env:"JOBAGG_PROXIES"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	eng, err := BuildEngine(ctx, s.Proxies)
	if err != nil {
		return err
	}

	ttl := time.Duration(ctx.Config.CacheTTLMinutes) * time.Minute

	var resultCache cache.Cache
	if ctx.Config.RedisURL != "" {
		redisCache, err := cache.NewRedis(context.Background(), ctx.Config.RedisURL, ttl, ctx.Logger)
		if err != nil {
			return err
		}
		resultCache = redisCache
		ctx.Logger.Info().Msg("using redis result cache")
	} else {
		resultCache = cache.NewMemory(ttl)
	}

	srv := server.New(eng, resultCache, ctx.Logger)
	ctx.Logger.Info().Str("addr", s.Addr).Msg("listening")
	return srv.Router().Run(s.Addr)
}
