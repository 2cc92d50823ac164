package router

import (
	"fmt"
	"strings"

	"github.com/pathmux/router/radix"
	"github.com/rs/zerolog"
	gbytes "github.com/savsgio/gotils/bytes"
	gstrconv "github.com/savsgio/gotils/strconv"
	gstrings "github.com/savsgio/gotils/strings"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

// MethodWild wild HTTP method
const MethodWild = "*"

var (
	questionMark = byte('?')

	// MatchedRoutePathParam is the param name under which the path of the matched
	// route is stored, if Router.SaveMatchedRoutePath is set.
	MatchedRoutePathParam = fmt.Sprintf("__matchedRoutePath::%s__", gbytes.Rand(make([]byte, 15)))
)

// New returns a new initialized Router.
// Path auto-correction, including trailing slashes, is enabled by default.
func New() *Router {
	return &Router{
		tree:                   radix.New[*route](),
		routes:                 make(map[string]*route),
		registeredPaths:        make(map[string][]string),
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		Logger:                 zerolog.Nop(),
	}
}

// Group returns a new group.
// Path auto-correction, including trailing slashes, is enabled by default.
func (r *Router) Group(path string) *Group {
	validatePath(path)

	if path != "/" && strings.HasSuffix(path, "/") {
		panic("group path must not end with a trailing slash")
	}

	return &Group{
		router: r,
		prefix: strings.TrimSuffix(path, "/"),
	}
}

// Use appends middleware wrapping the handlers of routes registered afterwards.
func (r *Router) Use(middleware ...Middleware) {
	r.middleware = append(r.middleware, middleware...)
}

// GET is a shortcut for router.Handle(fasthttp.MethodGet, path, handler)
func (r *Router) GET(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(fasthttp.MethodGet, path, handler)
}

// HEAD is a shortcut for router.Handle(fasthttp.MethodHead, path, handler)
func (r *Router) HEAD(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(fasthttp.MethodHead, path, handler)
}

// POST is a shortcut for router.Handle(fasthttp.MethodPost, path, handler)
func (r *Router) POST(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(fasthttp.MethodPost, path, handler)
}

// PUT is a shortcut for router.Handle(fasthttp.MethodPut, path, handler)
func (r *Router) PUT(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(fasthttp.MethodPut, path, handler)
}

// PATCH is a shortcut for router.Handle(fasthttp.MethodPatch, path, handler)
func (r *Router) PATCH(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(fasthttp.MethodPatch, path, handler)
}

// DELETE is a shortcut for router.Handle(fasthttp.MethodDelete, path, handler)
func (r *Router) DELETE(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(fasthttp.MethodDelete, path, handler)
}

// CONNECT is a shortcut for router.Handle(fasthttp.MethodConnect, path, handler)
func (r *Router) CONNECT(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(fasthttp.MethodConnect, path, handler)
}

// OPTIONS is a shortcut for router.Handle(fasthttp.MethodOptions, path, handler)
func (r *Router) OPTIONS(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(fasthttp.MethodOptions, path, handler)
}

// TRACE is a shortcut for router.Handle(fasthttp.MethodTrace, path, handler)
func (r *Router) TRACE(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(fasthttp.MethodTrace, path, handler)
}

// ANY is a shortcut for router.Handle(router.MethodWild, path, handler)
//
// WARNING: Use only for routes where the request method is not important
func (r *Router) ANY(path string, handler fasthttp.RequestHandler) {
	r.mustHandle(MethodWild, path, handler)
}

func (r *Router) mustHandle(method, path string, handler fasthttp.RequestHandler) {
	if err := r.Handle(method, path, handler); err != nil {
		panic(err)
	}
}

// Handle registers a new request handler with the given path and method.
//
// The path is a route pattern: static text, named params (/users/:id),
// regex constrained params (/items/:id<\d+>), unnamed regexes (/<\d+>) and a
// trailing catch-all (/files/*filepath). Repeated slashes are merged.
//
// For GET, POST, PUT, PATCH and DELETE requests the respective shortcut
// functions can be used, they panic instead of returning the error.
//
// WARNING: Not concurrency-safe! Register every route before serving.
func (r *Router) Handle(method, path string, handler fasthttp.RequestHandler) error {
	switch {
	case len(method) == 0:
		return ErrEmptyMethod
	case handler == nil:
		return ErrNilHandler
	}

	if err := checkPath(path); err != nil {
		return err
	}

	pattern := normalizePath(path)
	handler = applyMiddleware(handler, r.middleware)

	rt, ok := r.routes[pattern]
	if !ok {
		rt = newRoute(pattern)

		if err := r.tree.Add(pattern, rt); err != nil {
			return err
		}

		r.routes[pattern] = rt
	}

	if !rt.set(method, handler) {
		return fmt.Errorf("%w: method %s", &radix.RouteError{Kind: radix.ErrDuplicate, Path: pattern}, method)
	}

	newMethod := r.registeredPaths[method] == nil
	if !gstrings.Include(r.registeredPaths[method], pattern) {
		r.registeredPaths[method] = append(r.registeredPaths[method], pattern)
	}

	if newMethod {
		r.globalAllowed = r.allowedGlobal()
	}

	r.Logger.Debug().Str("method", method).Str("pattern", pattern).Msg("route registered")

	return nil
}

// ServeFiles serves files from the given file system root.
// The path must end with "/*filepath", files are then served from the local
// path /defined/root/dir/*filepath.
// For example if root is "/etc" and *filepath is "passwd", the local file
// "/etc/passwd" would be served.
// Internally a fasthttp.FSHandler is used, therefore fasthttp.StatusNotFound is used instead
// of the Router's NotFound handler.
// Use:
//
//	router.ServeFiles("/src/*filepath", "./")
func (r *Router) ServeFiles(path string, rootPath string) {
	prefix := mustFilesPrefix(path)
	fileHandler := fasthttp.FSHandler(rootPath, strings.Count(prefix, "/"))

	r.GET(path, fileHandler)
}

// ServeFilesCustom serves files from the given file system settings.
// The path must end with "/*filepath", files are then served from the local
// path /defined/root/dir/*filepath.
// For example if root is "/etc" and *filepath is "passwd", the local file
// "/etc/passwd" would be served.
// Internally a fasthttp.FSHandler is used, therefore fasthttp.StatusNotFound is used instead
// of the Router's NotFound handler.
// Use:
//
//	router.ServeFilesCustom("/src/*filepath", *customFS)
func (r *Router) ServeFilesCustom(path string, fs *fasthttp.FS) {
	prefix := mustFilesPrefix(path)
	stripSlashes := strings.Count(prefix, "/")

	if fs.PathRewrite == nil && stripSlashes > 0 {
		fs.PathRewrite = fasthttp.NewPathSlashesStripper(stripSlashes)
	}

	r.GET(path, fs.NewRequestHandler())
}

func mustFilesPrefix(path string) string {
	const suffix = "/*filepath"

	if !strings.HasSuffix(path, suffix) {
		panic("path must end with " + suffix + " in path '" + path + "'")
	}

	return strings.TrimSuffix(normalizePath(path[:len(path)-len(suffix)]), "/")
}

// Nest mounts handler on path and on every path below it. The prefix is
// stripped from the request URI before calling handler, so another Router
// can be nested:
//
//	api := router.New()
//	api.GET("/users/:id", getUser)
//	r.Nest("/api", api.Handler) // GET /api/users/1 -> getUser
func (r *Router) Nest(path string, handler fasthttp.RequestHandler) error {
	return r.nest(path, handler, true, nil)
}

// NestNoStrip is like Nest but leaves the request URI untouched.
func (r *Router) NestNoStrip(path string, handler fasthttp.RequestHandler) error {
	return r.nest(path, handler, false, nil)
}

// nest registers handler on path and below it. The middleware wraps the
// prefix stripping, so it sees the request path as received.
func (r *Router) nest(path string, handler fasthttp.RequestHandler, strip bool, middleware []Middleware) error {
	if handler == nil {
		return ErrNilHandler
	}

	if err := checkPath(path); err != nil {
		return err
	}

	if strings.ContainsAny(path, ":*<") {
		return fmt.Errorf("%w: wildcards are not allowed in the nest path '%s'", radix.ErrInvalidPath, path)
	}

	prefix := strings.TrimSuffix(normalizePath(path), "/")

	if strip {
		handler = stripPrefix(prefix, handler)
	}

	handler = applyMiddleware(handler, middleware)

	if len(prefix) > 0 {
		if err := r.Handle(MethodWild, prefix, handler); err != nil {
			return err
		}
	}

	// Unnamed catch-all, the rest of the path is not saved as user value
	return r.Handle(MethodWild, prefix+"/*", handler)
}

// stripPrefix rewrites the request URI without prefix, keeping the query string.
func stripPrefix(prefix string, handler fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		uri := ctx.Request.URI()

		rest := gstrconv.B2S(uri.PathOriginal())[len(prefix):]
		if len(rest) == 0 {
			rest = "/"
		}

		buf := bytebufferpool.Get()
		buf.SetString(rest)

		if queryBuf := uri.QueryString(); len(queryBuf) > 0 {
			buf.WriteByte(questionMark) // nolint:errcheck
			buf.Write(queryBuf)         // nolint:errcheck
		}

		ctx.Request.SetRequestURIBytes(buf.B)
		bytebufferpool.Put(buf)

		handler(ctx)
	}
}

func (r *Router) recv(ctx *fasthttp.RequestCtx) {
	if rcv := recover(); rcv != nil {
		r.Logger.Error().
			Interface("panic", rcv).
			Bytes("method", ctx.Method()).
			Bytes("path", ctx.Path()).
			Msg("recovered from panic")

		r.PanicHandler(ctx, rcv)
	}
}

func (r *Router) setUserValues(ctx *fasthttp.RequestCtx, m radix.Match[*route]) {
	for _, p := range m.Params {
		// Unnamed catch-alls are only positional
		if len(p.Key) == 0 {
			continue
		}

		ctx.SetUserValue(p.Key, p.Value)
	}

	if r.SaveMatchedRoutePath {
		ctx.SetUserValue(MatchedRoutePathParam, m.Pattern)
	}
}

// Lookup allows the manual lookup of a method + path combo.
// This is e.g. useful to build a framework around this router.
// If the path was found, it returns the handler function and saves the path
// parameter values as ctx user values (ctx may be nil).
// Otherwise the second return value indicates whether a redirection to
// the same path with an extra / without the trailing slash should be performed.
func (r *Router) Lookup(method, path string, ctx *fasthttp.RequestCtx) (fasthttp.RequestHandler, bool) {
	if m, ok := r.tree.Matches(path); ok {
		handler := m.Value.handler(method)

		if handler != nil && ctx != nil {
			r.setUserValues(ctx, m)
		}

		return handler, false
	}

	return nil, r.tsr(method, path)
}

// tsr reports whether a handler exists for the path with (without) the
// trailing slash.
func (r *Router) tsr(method, path string) bool {
	if len(path) < 2 {
		return false
	}

	if path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	} else {
		path += "/"
	}

	m, ok := r.tree.Matches(path)

	return ok && m.Value.handler(method) != nil
}

func (r *Router) allowedGlobal() string {
	allowed := make([]string, 0, len(r.registeredPaths))

	for method := range r.registeredPaths {
		if method == fasthttp.MethodOptions || method == MethodWild {
			continue
		}

		// Add request method to list of allowed methods
		allowed = append(allowed, method)
	}

	return joinAllowed(allowed)
}

func (r *Router) allowed(path, reqMethod string, rt *route) string {
	if path == "*" || path == "/*" { // server-wide
		return r.globalAllowed
	}

	if rt == nil {
		return ""
	}

	return rt.allowed(reqMethod)
}

// Handler makes the router implement the fasthttp.RequestHandler interface.
func (r *Router) Handler(ctx *fasthttp.RequestCtx) {
	if r.PanicHandler != nil {
		defer r.recv(ctx)
	}

	path := gstrconv.B2S(ctx.Request.URI().PathOriginal())
	if len(path) == 0 {
		path = "/"
	}

	method := gstrconv.B2S(ctx.Method())

	var rt *route

	if m, ok := r.tree.Matches(path); ok {
		if handler := m.Value.handler(method); handler != nil {
			r.setUserValues(ctx, m)
			handler(ctx)

			return
		}

		rt = m.Value
	} else if method != fasthttp.MethodConnect && path != "/" && path[0] == '/' {
		// Moved Permanently, request with GET method
		code := fasthttp.StatusMovedPermanently
		if method != fasthttp.MethodGet {
			// Permanent Redirect, request with same method
			code = fasthttp.StatusPermanentRedirect
		}

		if r.RedirectTrailingSlash && r.tsr(method, path) {
			uri := bytebufferpool.Get()

			if len(path) > 1 && path[len(path)-1] == '/' {
				uri.SetString(path[:len(path)-1])
			} else {
				uri.SetString(path)
				uri.WriteString("/") // nolint:errcheck
			}

			r.redirect(ctx, uri, code)
			bytebufferpool.Put(uri)

			return
		}

		// Try to fix the request path
		if r.RedirectFixedPath {
			uri := bytebufferpool.Get()

			found := r.tree.FindCaseInsensitivePath(cleanPath(path), r.RedirectTrailingSlash, uri)
			if found {
				if m, ok := r.tree.Matches(uri.String()); ok && m.Value.handler(method) != nil {
					r.redirect(ctx, uri, code)
					bytebufferpool.Put(uri)

					return
				}
			}

			bytebufferpool.Put(uri)
		}
	}

	if r.HandleOPTIONS && method == fasthttp.MethodOptions {
		// Handle OPTIONS requests
		if allow := r.allowed(path, fasthttp.MethodOptions, rt); allow != "" {
			ctx.Response.Header.Set("Allow", allow)
			if r.GlobalOPTIONS != nil {
				r.GlobalOPTIONS(ctx)
			}
			return
		}
	} else if r.HandleMethodNotAllowed { // Handle 405
		if allow := r.allowed(path, method, rt); allow != "" {
			ctx.Response.Header.Set("Allow", allow)
			if r.MethodNotAllowed != nil {
				r.MethodNotAllowed(ctx)
			} else {
				ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
				ctx.SetBodyString(fasthttp.StatusMessage(fasthttp.StatusMethodNotAllowed))
			}
			return
		}
	}

	// Handle 404
	if r.NotFound != nil {
		r.NotFound(ctx)
	} else {
		ctx.Error(fasthttp.StatusMessage(fasthttp.StatusNotFound), fasthttp.StatusNotFound)
	}
}

// redirect sends the client to uri, keeping the query string.
func (r *Router) redirect(ctx *fasthttp.RequestCtx, uri *bytebufferpool.ByteBuffer, code int) {
	if queryBuf := ctx.URI().QueryString(); len(queryBuf) > 0 {
		uri.WriteByte(questionMark) // nolint:errcheck
		uri.Write(queryBuf)         // nolint:errcheck
	}

	ctx.RedirectBytes(uri.Bytes(), code)
}

// List returns all registered routes grouped by method
func (r *Router) List() map[string][]string {
	return r.registeredPaths
}
