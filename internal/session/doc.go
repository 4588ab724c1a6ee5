// Package session binds visitor state to a cookie.
//
// The cookie carries only an opaque session ID (a UUID); the record itself
// ([models.Session]) lives in a [store.SessionStorage], normally Redis. The
// [Manager.Middleware] loads the record for every request and attaches it to
// the request context, where handlers read it with [FromContext].
package session
