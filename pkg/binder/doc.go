// Package binder fills request structs from query parameters, router path
// parameters and headers using struct tags. Each binder returns a
// function with the signature expected by handler.WithBinders.
package binder
