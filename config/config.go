package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Mono acquiring token: web.monobank.ua -> Інтернет -> Управління еквайрингом.
	// An empty token degrades POST /order to a configuration error response.
	MonoToken             string        `env:"MONO_TOKEN"`
	MonoBaseURL           string        `env:"MONO_BASE_URL" envDefault:"https://api.monobank.ua"`
	MonoCheckoutPath      string        `env:"MONO_CHECKOUT_PATH" envDefault:"/personal/checkout/order"`
	HTTPMonoClientTimeout time.Duration `env:"HTTP_MONO_CLIENT_TIMEOUT" envDefault:"20s"`

	// Production storefront base; substituted for non-https return/callback URLs.
	SiteBaseURL  string `env:"SITE_URL" envDefault:"https://tutsi-shop.com.ua"`
	CallbackPath string `env:"CALLBACK_PATH" envDefault:"/callback"`

	// Telegram notification channel. Missing credentials turn the callback
	// handler into an acknowledge-only endpoint.
	TelegramBotToken          string        `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID            string        `env:"TELEGRAM_CHAT_ID"`
	TelegramBaseURL           string        `env:"TELEGRAM_BASE_URL" envDefault:"https://api.telegram.org"`
	HTTPTelegramClientTimeout time.Duration `env:"HTTP_TELEGRAM_CLIENT_TIMEOUT" envDefault:"10s"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
