package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/navneetjaguri/phishing-detection-portal/internal/config"
	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"github.com/navneetjaguri/phishing-detection-portal/internal/factory"
	"github.com/navneetjaguri/phishing-detection-portal/internal/logging"
	"go.uber.org/zap"
)

var (
	// Input flags
	inputFile  = flag.String("file", "", "Input email file (use stdin if not specified)")
	jsonOutput = flag.Bool("json", false, "Print the full analysis result as JSON")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")

	// Lookup flags
	dnsServers  = flag.String("dns-servers", "", "Comma-separated DNS servers (host:port)")
	dnsTimeout  = flag.Duration("dns-timeout", 5*time.Second, "Timeout per DNS lookup")
	ageResolver = flag.String("age-resolver", "placeholder", "Domain age resolver (placeholder, whois)")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		cfg = createConfigFromFlags()
	}

	service, err := buildService(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build analyzer", zap.Error(err))
	}

	// Read email from file or stdin
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

	rawBytes, err := io.ReadAll(emailReader)
	if err != nil {
		logger.Fatal("Failed to read email", zap.Error(err))
	}

	startTime := time.Now()
	result, err := service.AnalyzeEmail(context.Background(), string(rawBytes))
	if err != nil {
		logger.Fatal("Failed to analyze email", zap.Error(err))
	}
	duration := time.Since(startTime)

	if *jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			logger.Fatal("Failed to encode result", zap.Error(err))
		}
		return
	}

	printReport(result, duration)
}

// buildService constructs the pipeline from configuration without the
// long-running cache or transport
func buildService(cfg *config.Config, logger *zap.Logger) (*core.AnalyzerService, error) {
	pf := factory.NewPipelineFactory(cfg, logger)

	scorer, err := pf.CreateScorer()
	if err != nil {
		return nil, err
	}
	resolver, err := pf.CreateTXTResolver()
	if err != nil {
		return nil, err
	}
	age, err := pf.CreateAgeResolver()
	if err != nil {
		return nil, err
	}

	// No cache for one-shot analysis
	authenticator := pf.CreateAuthenticator(resolver, age, nil, false, 0)

	tpf := factory.NewTextProcessorFactory(logger)

	return core.NewAnalyzerService(
		pf.CreateParser(),
		pf.CreateExtractor(),
		scorer,
		pf.CreateHomographDetector(),
		authenticator,
		tpf.CreateTextProcessor(),
		cfg.GetInt("analysis.max_email_bytes"),
		logger,
	), nil
}

func printReport(result *core.AnalysisResult, duration time.Duration) {
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s\n", result.EmailData.From)
	fmt.Printf("Subject: %s\n", result.EmailData.Subject)
	fmt.Printf("Date: %s\n", result.EmailData.Timestamp)

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Risk score: %d/100\n", result.RiskScore)
	fmt.Printf("Risk level: %s\n", result.RiskLevel)
	fmt.Printf("SPF: pass=%t (%s)\n", result.SPFResult.Pass, result.SPFResult.Status)
	fmt.Printf("DKIM: pass=%t (%s)\n", result.DKIMResult.Pass, result.DKIMResult.Status)
	if result.DomainAgeDays != nil {
		fmt.Printf("Domain age: %d days\n", *result.DomainAgeDays)
	}

	if len(result.SuspiciousURLs) > 0 {
		fmt.Printf("\nSuspicious URLs:\n")
		for _, u := range result.SuspiciousURLs {
			fmt.Printf("  - %s\n", u)
		}
	}

	if len(result.Homographs) > 0 {
		fmt.Printf("\nHomograph findings:\n")
		for _, h := range result.Homographs {
			line := fmt.Sprintf("  - %s (%s, risk=%s", h.Original, h.Type, h.Risk)
			if h.SuspectedOf != "" {
				line += fmt.Sprintf(", resembles %s", h.SuspectedOf)
			}
			fmt.Printf("%s)\n", line)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Printf("\nRecommendations:\n")
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}

	fmt.Printf("\nProcessing time: %v\n", duration)
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	if *dnsServers != "" {
		servers := strings.Split(*dnsServers, ",")
		for i, server := range servers {
			servers[i] = strings.TrimSpace(server)
		}
		v.Set("dns.servers", servers)
	}
	v.Set("dns.timeout", dnsTimeout.String())
	v.Set("age.resolver", *ageResolver)
	v.Set("auth.cache.enabled", false)

	return config.NewFromViper(v)
}
