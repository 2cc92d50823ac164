package router

import (
	"strings"

	"github.com/valyala/fasthttp"
)

func newRoute(pattern string) *route {
	return &route{
		pattern:  pattern,
		handlers: make(map[string]fasthttp.RequestHandler),
	}
}

// set registers the handler for the method. It returns false if the method
// already has one.
func (rt *route) set(method string, handler fasthttp.RequestHandler) bool {
	if _, ok := rt.handlers[method]; ok {
		return false
	}

	rt.handlers[method] = handler
	rt.methods = append(rt.methods, method)

	return true
}

// handler returns the handler for the method, falling back to MethodWild.
func (rt *route) handler(method string) fasthttp.RequestHandler {
	if h, ok := rt.handlers[method]; ok {
		return h
	}

	return rt.handlers[MethodWild]
}

// allowed returns the comma separated list of methods, other than reqMethod,
// the route can serve.
func (rt *route) allowed(reqMethod string) string {
	allowed := make([]string, 0, len(rt.methods)+1)

	for _, method := range rt.methods {
		// Skip the requested method - we already tried this one
		if method == reqMethod || method == fasthttp.MethodOptions || method == MethodWild {
			continue
		}

		allowed = append(allowed, method)
	}

	return joinAllowed(allowed)
}

// joinAllowed adds OPTIONS, sorts and joins the methods.
func joinAllowed(allowed []string) string {
	if len(allowed) == 0 {
		return ""
	}

	// Add request method to list of allowed methods
	allowed = append(allowed, fasthttp.MethodOptions)

	// Sort allowed methods.
	// sort.Strings(allowed) unfortunately causes unnecessary allocations
	// due to allowed being moved to the heap and interface conversion
	for i, l := 1, len(allowed); i < l; i++ {
		for j := i; j > 0 && allowed[j] < allowed[j-1]; j-- {
			allowed[j], allowed[j-1] = allowed[j-1], allowed[j]
		}
	}

	// return as comma separated list
	return strings.Join(allowed, ", ")
}
