// Package web serves the library catalog as server-rendered HTML pages.
//
// The Server maps each route to a command or query handler from the features packages,
// wrapped with observable wrappers. Sessions live in the catalog database and are keyed
// by the HttpOnly "sessionid" cookie. Pages that need a login redirect anonymous visitors
// to the login page; pages that need a permission answer logged-in users without it with 403.
//
// Templates are embedded into the binary and rendered with html/template through gin's HTMLRender.
package web
