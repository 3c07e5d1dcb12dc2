package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"huestat/adapters/htmldoc"
	"huestat/adapters/postgres"
	"huestat/adapters/rng"
	"huestat/app"
	"huestat/domain/colors"
	"huestat/domain/demo"
	"huestat/internal/config"
	apperrors "huestat/internal/errors"
	"huestat/internal/logging"
	"huestat/ports"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logging.DefaultLogger.Debug("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.DefaultLogger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	os.Exit(run(cfg, logging.DefaultLogger))
}

func run(cfg *config.Config, logger *logging.Logger) int {
	ctx := context.Background()

	document, err := resolveDocument(cfg.Document)
	if err != nil {
		logger.Error("%v", err)
		return 1
	}

	store := openStore(cfg.Persistence, logger)
	if store != nil {
		defer store.Close()
	}

	service := app.NewAnalysisService(htmldoc.NewExtractor(document), store, logger)
	analysis, err := service.Run(ctx, colors.Token(cfg.Analysis.TargetColor))
	switch {
	case err == nil:
		fmt.Print(colors.FormatAnalysis(analysis))
		if persistErr := service.Persist(ctx, document, analysis); persistErr != nil {
			logger.Warn("Failed to save color frequencies: %v", persistErr)
		} else if store != nil {
			fmt.Println("Saved color frequencies to PostgreSQL.")
		}
	case apperrors.GetCode(err) == apperrors.CodeNoData:
		fmt.Println("No colors found to analyze.")
	default:
		logger.Error("%v", err)
		return 1
	}

	runDemos(ctx, cfg.Analysis, rng.New(), logger)
	return 0
}

// resolveDocument tries the primary path first, then the fallback.
func resolveDocument(doc config.DocumentConfig) (string, error) {
	for _, path := range []string{doc.Path, doc.FallbackPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", apperrors.DocumentNotFound(
		fmt.Sprintf("%s (fallback %s)", doc.Path, doc.FallbackPath))
}

// openStore probes the persistence capability. An unavailable database is a
// warning, never a fatal condition; the analysis still runs.
func openStore(cfg config.PersistenceConfig, logger *logging.Logger) ports.FrequencyStore {
	if !cfg.Enabled {
		return nil
	}
	repo, err := postgres.Connect(cfg.DSN())
	if err != nil {
		logger.Warn("Persistence unavailable, continuing without it: %v", err)
		return nil
	}
	return repo
}

func runDemos(ctx context.Context, cfg config.AnalysisConfig, random ports.RNG, logger *logging.Logger) {
	items := []int{1, 3, 5, 7, 9}
	target := 7
	fmt.Printf("Recursive search: is %d in %v? -> %t\n",
		target, items, demo.SearchRecursive(items, target))

	stream, err := random.SeededStream(ctx, "demo-binary", cfg.Seed)
	if err != nil {
		logger.Warn("Failed to seed random stream: %v", err)
		return
	}
	bits, value, err := demo.RandomBits(stream, cfg.BitWidth)
	if err != nil {
		logger.Warn("Failed to generate random bits: %v", err)
	} else {
		fmt.Printf("Random %d-bit binary: %s -> decimal: %d\n", cfg.BitWidth, bits, value)
	}

	fmt.Printf("Sum of first %d Fibonacci numbers: %d\n",
		cfg.FibonacciTerms, demo.FibonacciSum(cfg.FibonacciTerms))
}
