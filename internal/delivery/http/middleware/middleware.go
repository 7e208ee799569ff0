package middleware

import (
	"github.com/Vickyvkz7/SIH2025/internal/pkg/auth"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
	Tokens *auth.TokenManager
}

type Middleware struct {
	Log    *logrus.Logger
	Config *viper.Viper
	Tokens *auth.TokenManager
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{Log: logrus.New()}
	}

	log := c.Log
	if log == nil {
		log = logrus.New()
	}

	return &Middleware{
		Log:    log,
		Config: c.Config,
		Tokens: c.Tokens,
	}
}
