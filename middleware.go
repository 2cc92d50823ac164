package router

import (
	"time"

	"github.com/rs/zerolog"
	gstrconv "github.com/savsgio/gotils/strconv"
	"github.com/valyala/fasthttp"
)

// applyMiddleware wraps handler so that middleware[0] runs first.
func applyMiddleware(handler fasthttp.RequestHandler, middleware []Middleware) fasthttp.RequestHandler {
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}

	return handler
}

// AccessLog returns a middleware logging every served request at info level.
// The matched route pattern is logged as "route" when the router saves it
// (see Router.SaveMatchedRoutePath).
func AccessLog(logger zerolog.Logger) Middleware {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()

			next(ctx)

			event := logger.Info().
				Str("method", gstrconv.B2S(ctx.Method())).
				Bytes("path", ctx.Path())

			if pattern, ok := ctx.UserValue(MatchedRoutePathParam).(string); ok {
				event = event.Str("route", pattern)
			}

			event.
				Int("status", ctx.Response.StatusCode()).
				Dur("latency", time.Since(start)).
				Msg("request")
		}
	}
}
