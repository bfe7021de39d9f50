package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_quoter/internal/domain"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	OpenAIKey   string
	OpenAIModel string
	OpenAIBase  string
	OpenAIRPS   int

	ExtractTimeout     time.Duration
	PastDateWindowDays int

	RedisAddr string
	RedisPass string
	RedisDB   int
	CacheTTL  time.Duration

	Workers int

	Prices domain.PriceTable
	Hotel  domain.HotelInfo
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:             env("APP_ENV", "prod"),
		HTTPAddr:           env("HTTP_ADDR", ":8080"),
		MetricsAddr:        env("METRICS_ADDR", ""),
		OpenAIKey:          env("OPENAI_API_KEY", ""),
		OpenAIModel:        env("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBase:         env("OPENAI_BASE_URL", ""),
		OpenAIRPS:          atoi("OPENAI_RPS", 3),
		ExtractTimeout:     time.Duration(atoi("EXTRACT_TIMEOUT_SECONDS", 15)) * time.Second,
		PastDateWindowDays: atoi("PAST_DATE_WINDOW_DAYS", 60),
		RedisAddr:          env("REDIS_ADDR", ""),
		RedisPass:          env("REDIS_PASSWORD", ""),
		RedisDB:            atoi("REDIS_DB", 0),
		CacheTTL:           time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		Workers:            atoi("QUOTE_WORKERS", 8),
		Prices: domain.PriceTable{
			domain.TypeSingle:   atoi("PRICE_SINGLE", 40000),
			domain.TypeStandard: atoi("PRICE_ESTANDAR", 50000),
			domain.TypeSuperior: atoi("PRICE_SUPERIOR", 70000),
			domain.TypeDouble:   atoi("PRICE_DOBLE", 65000),
		},
		Hotel: domain.HotelInfo{
			Name:  env("HOTEL_NAME", "Hotel Central"),
			Phone: env("HOTEL_PHONE", "+56 9 0000 0000"),
			RUT:   env("HOTEL_RUT", "76.000.000-0"),
			Email: env("HOTEL_EMAIL", "reservas@hotelcentral.cl"),
		},
	}
	if c.OpenAIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is empty, all extractions will use the fallback path")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
