// Package runner wires the flags, config file and signal handling together
// and dispatches to either the HTTP server or the CLI generator.
package runner

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dorkiq/internal/app/catalog"
	"dorkiq/internal/app/console"
	"dorkiq/internal/app/core"
	"dorkiq/internal/app/export"
	"dorkiq/internal/app/server"
	"dorkiq/internal/app/target"
	"dorkiq/internal/app/tech"
	"dorkiq/internal/app/utils"
)

func Run() {
	cfg := &core.Config{}

	help := flag.Bool("h", false, "Display help")
	flag.BoolVar(help, "help", *help, "Display help")

	flag.StringVar(&cfg.Target, "d", "", "Target domain")
	flag.StringVar(&cfg.Target, "domain", "", "Target domain")

	flag.StringVar(&cfg.Category, "c", core.CategoryAll, "Vulnerability category filter")
	flag.StringVar(&cfg.Category, "category", core.CategoryAll, "Vulnerability category filter")

	flag.BoolVar(&cfg.AdvancedMode, "a", false, "Include the advanced catalog entries")
	flag.BoolVar(&cfg.AdvancedMode, "advanced", false, "Include the advanced catalog entries")

	flag.BoolVar(&cfg.IncludeSubdomains, "s", false, "Also emit wildcard-subdomain variants")
	flag.BoolVar(&cfg.IncludeSubdomains, "subdomains", false, "Also emit wildcard-subdomain variants")

	flag.BoolVar(&cfg.TechDetect, "tech-detect", false, "Fingerprint the target and append tech-specific dorks")
	flag.StringVar(&cfg.Proxy, "proxy", "", "SOCKS5 proxy for tech detection (host:port)")
	flag.BoolVar(&cfg.Insecure, "insecure", false, "Skip TLS certificate verification during tech detection")

	flag.BoolVar(&cfg.JSONOutput, "json", false, "Print results as JSON instead of plain dorks")

	flag.StringVar(&cfg.OutputPath, "o", "", "Write results to a file (.txt, .json or .csv)")
	flag.StringVar(&cfg.OutputPath, "output", "", "Write results to a file (.txt, .json or .csv)")

	flag.StringVar(&cfg.ListenAddr, "listen", "", "Listen address for the HTTP server (overrides config)")
	flag.StringVar(&cfg.ConfigPath, "config", "config.yaml", "Path to the config file")

	flag.BoolVar(&cfg.NoColors, "no-colors", false, "Disable colorful output (colors enabled by default)")

	flag.BoolVar(&cfg.Verbose, "v", false, "Enable verbose")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose")

	flag.Parse()

	fileConfig, err := core.LoadFileConfig(cfg.ConfigPath)
	if err != nil {
		console.LogErr("[!] %v", err)
		os.Exit(1)
	}

	if fileConfig.NoColors {
		cfg.NoColors = true
	}
	console.Init(cfg.NoColors)

	if *help {
		console.ShowBanner()
		console.PrintUsage()
		return
	}

	// Graceful Ctrl+C handling: first signal cancels the context, second
	// signal hard-exits.
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		count := 0
		for sig := range sigCh {
			count++
			if count == 1 {
				console.LogErr("[!] Caught %s, attempting graceful shutdown... (press Ctrl+C again to force)", sig.String())
				cancel()
			} else {
				console.LogErr("[!] Force exiting.")
				os.Exit(130)
			}
		}
	}()
	defer func() {
		signal.Stop(sigCh)
		close(sigCh)
		cancel()
	}()

	cat, err := catalog.Load()
	if err != nil {
		console.LogErr("[!] Failed to load dork catalog: %v", err)
		os.Exit(1)
	}
	console.Logv(cfg.Verbose, "[Catalog] Loaded %d templates in %d groups", cat.Len(), len(cat.Groups()))

	// Collect targets: -d first, piped stdin otherwise.
	var targets []string
	if cfg.Target != "" {
		targets = []string{cfg.Target}
	} else if utils.CheckStdin() {
		targets, err = utils.ReadStdin()
		if err != nil {
			console.LogErr("[!] Error reading from stdin: %v", err)
			os.Exit(1)
		}
		console.Logv(cfg.Verbose, "[stdin] Processing %d domain(s) from pipe", len(targets))
	}

	// No targets at all means serve mode.
	if len(targets) == 0 {
		addr := cfg.ListenAddr
		if addr == "" {
			addr = fileConfig.ListenAddr()
		}
		console.ShowBanner()
		console.LogErr("[Serve] DorkIQ listening on %s", addr)
		if err := server.New(cat, fileConfig.Server.Debug).Run(ctx, addr); err != nil {
			console.LogErr("[!] Server error: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := runGenerate(ctx, cfg, cat, targets); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		console.LogErr("[!] %v", err)
		os.Exit(1)
	}
}

func runGenerate(ctx context.Context, cfg *core.Config, cat *catalog.Catalog, targets []string) error {
	opts := core.GenerateOptions{
		IncludeSubdomains: cfg.IncludeSubdomains,
		Category:          cfg.Category,
		AdvancedMode:      cfg.AdvancedMode,
	}

	var results []core.DorkResult
	for _, raw := range targets {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		domain, err := target.NormalizeAndValidate(raw)
		if err != nil {
			if len(targets) == 1 {
				return fmt.Errorf("invalid domain %q: %w", raw, err)
			}
			console.LogErr("[!] Skipping invalid domain %q: %v", raw, err)
			continue
		}

		console.Logv(cfg.Verbose, "[Target] Generating dorks for %s", domain)
		results = append(results, cat.Generate(domain, opts)...)

		if cfg.TechDetect {
			cfg.Target = domain
			detected := tech.Detect(ctx, cfg)
			results = append(results, tech.DorkResults(domain, detected)...)
		}
	}

	if cfg.OutputPath != "" {
		if err := export.WriteFile(cfg.OutputPath, results); err != nil {
			return fmt.Errorf("export results: %w", err)
		}
		console.Logv(cfg.Verbose, "[Export] Wrote %d results to %s", len(results), cfg.OutputPath)
	} else if err := printResults(cfg, results); err != nil {
		return err
	}

	console.Logv(cfg.Verbose, "[Summary] %d dorks generated for %d target(s)", len(results), len(targets))
	return nil
}

func printResults(cfg *core.Config, results []core.DorkResult) error {
	if cfg.JSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, r := range results {
		fmt.Println(r.Dork)
	}
	return nil
}
