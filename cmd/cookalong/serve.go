package main

import (
	"github.com/fwojciec/cookalong/gin"
	gingonic "github.com/gin-gonic/gin"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gingonic.SetMode(gingonic.ReleaseMode)

	server := gin.NewServer(deps.Router,
		gin.WithLogger(deps.Logger),
		gin.WithSkillID(c.SkillID),
	)
	return server.Serve(deps.Ctx, c.Addr)
}
