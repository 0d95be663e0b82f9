package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/mikey/scam-check/internal/adapters/filter"
	"github.com/mikey/scam-check/internal/config"
	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/corpus"
	"github.com/mikey/scam-check/internal/engine"
	"github.com/mikey/scam-check/internal/factory"
	"github.com/mikey/scam-check/internal/lexicon"
	"github.com/mikey/scam-check/internal/logging"
	"github.com/mikey/scam-check/internal/utils"
	"go.uber.org/zap"
)

var (
	// Input flags
	input     = flag.String("input", "", "Input to check: email address, phone number or URL (use -file/stdin for a full email)")
	inputFile = flag.String("file", "", "Input email file (use stdin if not specified)")
	stats     = flag.Bool("stats", false, "Tally stored email categories instead of checking an input")

	// Record store flags
	storeType  = flag.String("store", "memory", "Record store type (mysql, sqlite, memory)")
	mysqlDSN   = flag.String("mysql-dsn", "", "MySQL DSN for the record store")
	sqlitePath = flag.String("sqlite-path", "", "SQLite path for the record store")
	storeTable = flag.String("table", "incoming_emails", "Record store table name")

	// Corpus matcher flags
	corpusEnabled = flag.Bool("corpus", false, "Enable corpus matching against the record store")
	searchLimit   = flag.Int("search-limit", 20, "Records fetched per corpus search term")
	minRelevance  = flag.Float64("min-relevance", 0.3, "Minimum relevance for a corpus match")

	// Engine flags
	maxInputSize = flag.Int("max-input-size", 65536, "Maximum input size in bytes")

	// Logging flags
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	var cfg *config.Config
	var err error

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration from file if specified
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		// Create config from command line flags
		cfg = createConfigFromFlags()
	}

	corpusCfg := cfg.GetCorpus()

	// Initialize the record store when corpus matching or stats need it
	var provider core.RecordProvider
	if corpusCfg.Enabled || *stats {
		storeFactory := factory.NewStoreFactory(cfg, logger)
		provider, err = storeFactory.CreateRecordProvider()
		if err != nil {
			logger.Fatal("Failed to create record store", zap.Error(err))
		}
		defer closeProvider(provider, logger)
	}

	var matcher *corpus.Matcher
	if corpusCfg.Enabled && provider != nil {
		matcher = corpus.NewMatcher(provider, logger, corpusCfg.SearchLimit, corpusCfg.MinRelevance)
	}

	normalizer := utils.NewNormalizer(logger, cfg.GetInt("engine.max_input_size"))
	service := engine.NewCheckService(matcher, nil, logger, normalizer, lexicon.Default(), false, 0)

	ctx := context.Background()

	// Stats mode: tally stored email categories
	if *stats {
		printStats(ctx, service, provider, logger)
		return
	}

	// Direct input mode: check a single email address, phone number or URL
	if *input != "" {
		fmt.Printf("\n=== Analysis ===\n")
		fmt.Printf("Input: %s\n", *input)
		startTime := time.Now()
		verdict := service.CheckInput(ctx, *input)
		filter.PrintVerdict(verdict, time.Since(startTime))
		return
	}

	// Email mode: read a full email from file or stdin
	var emailReader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		emailReader = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		emailReader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	msg, err := mail.ReadMessage(bufio.NewReader(emailReader))
	if err != nil {
		logger.Fatal("Failed to parse email", zap.Error(err))
	}

	from := msg.Header.Get("From")
	to := msg.Header.Get("To")
	subject := msg.Header.Get("Subject")

	bodyBytes, err := io.ReadAll(msg.Body)
	if err != nil {
		logger.Fatal("Failed to read email body", zap.Error(err))
	}
	body := string(bodyBytes)

	// Print email summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s\n", from)
	fmt.Printf("To: %s\n", to)
	fmt.Printf("Subject: %s\n", subject)
	fmt.Printf("Body length: %d bytes\n", len(body))
	fmt.Printf("\n")

	fmt.Printf("=== Analysis ===\n")
	startTime := time.Now()
	verdict := service.CheckEmail(ctx, senderAddress(from), subject, body)
	filter.PrintVerdict(verdict, time.Since(startTime))
}

// printStats pages through the record store and prints the category
// tallies.
func printStats(ctx context.Context, service *engine.CheckService, provider core.RecordProvider, logger *zap.Logger) {
	startTime := time.Now()
	tallies, err := service.CategoryStats(ctx, provider, 50)
	if err != nil {
		logger.Fatal("Failed to tally stored emails", zap.Error(err))
	}

	total := 0
	for _, n := range tallies {
		total += n
	}

	fmt.Printf("\n=== Corpus Statistics ===\n")
	fmt.Printf("Total emails: %d\n", total)
	fmt.Printf("Phishing: %d\n", tallies[core.CategoryPhishing])
	fmt.Printf("Spam: %d\n", tallies[core.CategorySpam])
	fmt.Printf("Suspect: %d\n", tallies[core.CategorySuspect])
	fmt.Printf("Safe: %d\n", tallies[core.CategorySafe])
	fmt.Printf("Processing time: %v\n", time.Since(startTime))
}

// senderAddress extracts the bare address from a From header value.
func senderAddress(from string) string {
	if addr, err := mail.ParseAddress(from); err == nil {
		return addr.Address
	}
	return strings.TrimSpace(from)
}

func closeProvider(provider core.RecordProvider, logger *zap.Logger) {
	if closer, ok := provider.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close record store", zap.Error(err))
		}
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	// Set record store configuration
	v.Set("store.type", *storeType)
	if *mysqlDSN != "" {
		v.Set("store.mysql_dsn", *mysqlDSN)
	}
	if *sqlitePath != "" {
		v.Set("store.sqlite_path", *sqlitePath)
	}
	v.Set("store.table", *storeTable)

	// Set corpus matcher configuration
	v.Set("corpus.enabled", *corpusEnabled)
	v.Set("corpus.search_limit", *searchLimit)
	v.Set("corpus.min_relevance", *minRelevance)

	// Set engine configuration
	v.Set("engine.max_input_size", *maxInputSize)

	// One-shot runs never cache
	v.Set("cache.enabled", false)

	return config.NewFromViper(v)
}
