package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/http/middleware"
)

// Module is a feature that attaches its endpoints to a Controller.
type Module interface {
	Mount(c *Controller)
}

// ModuleFunc adapts a plain function into a Module.
type ModuleFunc func(c *Controller)

func (f ModuleFunc) Mount(c *Controller) { f(c) }

// GroupConfig describes one mounted route group. Auth groups attach the
// JWT middleware and need a secret key; Middleware runs before it.
type GroupConfig struct {
	Prefix     string
	Auth       bool
	SecretKey  string
	Middleware []gin.HandlerFunc
}

// MountGroup mounts the given modules under a prefixed group.
func MountGroup(parent gin.IRouter, cfg GroupConfig, modules ...Module) {
	grp := parent.Group(cfg.Prefix)

	for _, mw := range cfg.Middleware {
		grp.Use(mw)
	}
	if cfg.Auth {
		if cfg.SecretKey == "" {
			log.Fatal().Str("prefix", cfg.Prefix).Msg("auth group mounted without a secret key")
		}
		grp.Use(middleware.JWTMiddleware(cfg.SecretKey))
	}

	ctl := &Controller{Group: grp}
	for _, m := range modules {
		m.Mount(ctl)
	}
}
