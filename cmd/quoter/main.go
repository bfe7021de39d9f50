// Batch quoter: reads one customer message per line from a file (or stdin
// with "-") and prints one quotation result per line as JSON. Messages are
// independent, so they fan out over a bounded worker pool.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_quoter/internal/adapters/observability"
	openaiad "hotel_quoter/internal/adapters/openai"
	"hotel_quoter/internal/app"
	"hotel_quoter/internal/domain"
	"hotel_quoter/internal/extract"
	"hotel_quoter/internal/shared"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: quoter <messages-file|->")
	}

	messages, err := readMessages(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("read messages failed")
	}
	log.Info().Int("messages", len(messages)).Int("workers", cfg.Workers).Msg("quoter starting")

	var client domain.CompletionClient
	if cfg.OpenAIKey != "" {
		c, err := openaiad.New(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBase, cfg.ExtractTimeout, cfg.OpenAIRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize completion client")
		}
		client = c
	}
	extractor := extract.NewLLMExtractor(client, cfg.PastDateWindowDays)
	q := app.NewQuoteService(extractor, nil, cfg.Prices, cfg.CacheTTL)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var mu sync.Mutex // serializes stdout lines

	for i, msg := range messages {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(n int, message string) {
			defer wg.Done()
			defer sem.Release(1)

			res := q.Quote(ctx, message)
			line, err := json.Marshal(res)
			if err != nil {
				log.Warn().Int("line", n).Err(err).Msg("marshal quote failed")
				return
			}
			mu.Lock()
			fmt.Println(string(line))
			mu.Unlock()
			log.Info().Int("line", n).Int("gross", res.Quotation.Gross).Msg("quote ok")
		}(i+1, msg)
	}

	wg.Wait()
	log.Info().Msg("quoting completed")
}

func readMessages(path string) ([]string, error) {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	var out []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}
