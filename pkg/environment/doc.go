// Package environment names the deployment qrgen runs in and carries it
// through request contexts and logs.
//
// APP_ENV is parsed once at startup:
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
//	if env.IsDeployed() {
//	    // secure cookies, https redirects
//	}
package environment
