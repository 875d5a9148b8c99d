package main

import (
	"github.com/fwojciec/jobsnap/server"
)

// Run executes the serve command until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := server.NewServer(deps.Scraper, deps.Jobs, deps.Resumes, deps.Logger)
	return srv.ListenAndServe(deps.Ctx, c.Addr)
}
