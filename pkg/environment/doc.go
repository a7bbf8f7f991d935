// Package environment carries the deployment stage (development, staging,
// production) through request contexts.
//
// The service parses APP_ENV once at startup and installs Middleware so
// handlers can adapt their output, for example hiding internal error details
// in production:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(r.Context()) { ... }
package environment
