package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "hotel_quoter/internal/adapters/http_server"
	"hotel_quoter/internal/adapters/observability"
	openaiad "hotel_quoter/internal/adapters/openai"
	redisad "hotel_quoter/internal/adapters/redis"
	"hotel_quoter/internal/app"
	"hotel_quoter/internal/domain"
	"hotel_quoter/internal/extract"
	"hotel_quoter/internal/pricing"
	"hotel_quoter/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	if err := pricing.Validate(cfg.Prices); err != nil {
		// advisory: quoting still works through the fallback price
		log.Warn().Err(err).Msg("price table misconfigured")
	}

	var client domain.CompletionClient
	if cfg.OpenAIKey != "" {
		c, err := openaiad.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBase, cfg.ExtractTimeout, cfg.OpenAIRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize completion client")
		}
		client = c
	}
	extractor := extract.NewLLMExtractor(client, cfg.PastDateWindowDays)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("quote cache enabled")
	}

	q := app.NewQuoteService(extractor, cache, cfg.Prices, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Hotel: cfg.Hotel})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
