package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// API
	BaseURL string `envconfig:"BADBUDDY_API_URL" default:"https://api.badbuddy.app/api/v1"`
	WSURL   string `envconfig:"BADBUDDY_WS_URL" default:"wss://api.badbuddy.app/ws"`
	// Credentials
	Email    string `envconfig:"BADBUDDY_EMAIL"`
	Password string `envconfig:"BADBUDDY_PASSWORD"`
	Token    string `envconfig:"BADBUDDY_TOKEN"`
	// Outbound request budget
	RequestsPerSecond float64 `envconfig:"BADBUDDY_RPS" default:"10"`
	RequestBurst      int     `envconfig:"BADBUDDY_BURST" default:"20"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
