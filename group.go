package router

import (
	"github.com/valyala/fasthttp"
)

// Group returns a new group nested below g.
// The new group inherits the middleware of g.
func (g *Group) Group(path string) *Group {
	validatePath(path)

	if len(g.prefix) > 0 && path == "/" {
		return g
	}

	sub := g.router.Group(g.prefix + path)
	sub.middleware = append(sub.middleware, g.middleware...)

	return sub
}

// GET is a shortcut for group.Handle(fasthttp.MethodGet, path, handler)
func (g *Group) GET(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(fasthttp.MethodGet, path, handler)
}

// HEAD is a shortcut for group.Handle(fasthttp.MethodHead, path, handler)
func (g *Group) HEAD(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(fasthttp.MethodHead, path, handler)
}

// POST is a shortcut for group.Handle(fasthttp.MethodPost, path, handler)
func (g *Group) POST(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(fasthttp.MethodPost, path, handler)
}

// PUT is a shortcut for group.Handle(fasthttp.MethodPut, path, handler)
func (g *Group) PUT(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(fasthttp.MethodPut, path, handler)
}

// PATCH is a shortcut for group.Handle(fasthttp.MethodPatch, path, handler)
func (g *Group) PATCH(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(fasthttp.MethodPatch, path, handler)
}

// DELETE is a shortcut for group.Handle(fasthttp.MethodDelete, path, handler)
func (g *Group) DELETE(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(fasthttp.MethodDelete, path, handler)
}

// CONNECT is a shortcut for group.Handle(fasthttp.MethodConnect, path, handler)
func (g *Group) CONNECT(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(fasthttp.MethodConnect, path, handler)
}

// OPTIONS is a shortcut for group.Handle(fasthttp.MethodOptions, path, handler)
func (g *Group) OPTIONS(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(fasthttp.MethodOptions, path, handler)
}

// TRACE is a shortcut for group.Handle(fasthttp.MethodTrace, path, handler)
func (g *Group) TRACE(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(fasthttp.MethodTrace, path, handler)
}

// ANY is a shortcut for group.Handle(router.MethodWild, path, handler)
//
// WARNING: Use only for routes where the request method is not important
func (g *Group) ANY(path string, handler fasthttp.RequestHandler) {
	g.mustHandle(MethodWild, path, handler)
}

// ServeFiles serves files from the given file system root.
// The path must end with "/*filepath", see Router.ServeFiles.
// Group middleware is not applied to the file handler.
func (g *Group) ServeFiles(path string, rootPath string) {
	validatePath(path)

	g.router.ServeFiles(g.prefix+path, rootPath)
}

// ServeFilesCustom serves files from the given file system settings.
// The path must end with "/*filepath", see Router.ServeFilesCustom.
func (g *Group) ServeFilesCustom(path string, fs *fasthttp.FS) {
	validatePath(path)

	g.router.ServeFilesCustom(g.prefix+path, fs)
}

// Nest mounts handler below the group prefix, see Router.Nest.
// The group middleware runs before the prefix is stripped.
func (g *Group) Nest(path string, handler fasthttp.RequestHandler) error {
	if err := checkPath(path); err != nil {
		return err
	}

	if handler == nil {
		return ErrNilHandler
	}

	return g.router.nest(g.prefix+path, handler, true, g.middleware)
}

// Handle registers a new request handler with the given path and method,
// wrapped by the group middleware.
//
// This function is intended for bulk loading and to allow the usage of less
// frequently used, non-standardized or custom methods (e.g. for internal
// communication with a proxy).
func (g *Group) Handle(method, path string, handler fasthttp.RequestHandler) error {
	if err := checkPath(path); err != nil {
		return err
	}

	if handler == nil {
		return ErrNilHandler
	}

	return g.router.Handle(method, g.prefix+path, applyMiddleware(handler, g.middleware))
}

func (g *Group) mustHandle(method, path string, handler fasthttp.RequestHandler) {
	if err := g.Handle(method, path, handler); err != nil {
		panic(err)
	}
}

// AddMiddleware appends middleware wrapping the handlers registered on the
// group afterwards. The first added middleware is the outermost one.
func (g *Group) AddMiddleware(middleware ...Middleware) {
	g.middleware = append(g.middleware, middleware...)
}
