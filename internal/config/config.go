package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"gnamgnam"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"gnamgnam"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"gnamgnam"`
	MigrationsDir    string `envconfig:"MIGRATIONS_DIR" default:"./migrations"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	// WhatsApp recipient for the order handoff. The fallback is the
	// shop's own number.
	WhatsAppNumber string `envconfig:"WHATSAPP_NUMBER" default:"33611309743"`
	SiteURL        string `envconfig:"SITE_URL" default:"http://gnamgnam.nordikforge.com/"`

	// Fee applied when home delivery is requested for a zone the table
	// does not know.
	DefaultDeliveryFee int64 `envconfig:"DEFAULT_DELIVERY_FEE" default:"1500"`

	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	ToastTTL        time.Duration `envconfig:"TOAST_TTL" default:"3s"`
	CartTTL         time.Duration `envconfig:"CART_TTL" default:"720h"`
	SessionTTL      time.Duration `envconfig:"SESSION_TTL" default:"720h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("gnamgnam", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &cfg, nil
}
