// Package tech fingerprints the target with Wappalyzer and derives
// technology-specific dorks. It is the only part of the tool that touches the
// network and is therefore kept out of the HTTP generator path.
package tech

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	wappalyzergo "github.com/projectdiscovery/wappalyzergo"
	xproxy "golang.org/x/net/proxy"

	"dorkiq/internal/app/console"
	"dorkiq/internal/app/core"
	"dorkiq/internal/app/utils"
)

// DetectionResult contains detected technology information.
type DetectionResult struct {
	Technology string
	Category   string
}

// Paths probed when the homepage alone yields few fingerprints.
var additionalPaths = []string{"/wp-login.php", "/admin", "/login", "/api"}

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Detect fingerprints the target homepage, trying HTTPS first and falling
// back to HTTP.
func Detect(ctx context.Context, cfg *core.Config) []DetectionResult {
	console.Logv(cfg.Verbose, "[TECH-DETECT] Fingerprinting %s...", cfg.Target)

	wappalyzer, err := wappalyzergo.New()
	if err != nil {
		console.Logv(cfg.Verbose, "[TECH-DETECT] Failed to initialize Wappalyzer: %v", err)
		return nil
	}

	client, err := newClient(cfg)
	if err != nil {
		console.LogErr("[!] Tech detection client: %v", err)
		return nil
	}

	targetURL := fmt.Sprintf("https://%s", cfg.Target)
	resp, body, err := fetch(ctx, client, targetURL)
	if err != nil {
		targetURL = fmt.Sprintf("http://%s", cfg.Target)
		resp, body, err = fetch(ctx, client, targetURL)
		if err != nil {
			console.Logv(cfg.Verbose, "[TECH-DETECT] Failed to fetch target: %v", err)
			return nil
		}
	}

	console.Logv(cfg.Verbose, "[TECH-DETECT] Fetched %d bytes from %s", len(body), targetURL)

	results := fingerprint(wappalyzer, resp.Header, body)
	for _, r := range results {
		console.Logv(cfg.Verbose, "[TECH-DETECT] ✓ %s (%s)", r.Technology, r.Category)
	}

	// Few fingerprints on the homepage; probe common paths concurrently.
	if len(results) < 3 {
		console.Logv(cfg.Verbose, "[TECH-DETECT] Limited results (%d techs), probing additional paths...", len(results))
		results = append(results, probePaths(ctx, cfg, client, wappalyzer, targetURL)...)
	}

	console.Logv(cfg.Verbose, "[TECH-DETECT] Detected %d technologies", len(results))
	return dedupe(results)
}

func fingerprint(w *wappalyzergo.Wappalyze, header http.Header, body []byte) []DetectionResult {
	fingerprintsWithInfo := w.FingerprintWithInfo(header, body)

	var results []DetectionResult
	for technology, info := range fingerprintsWithInfo {
		category := "Other"
		if len(info.Categories) > 0 {
			category = info.Categories[0]
		}
		results = append(results, DetectionResult{Technology: technology, Category: category})
	}
	return results
}

func probePaths(ctx context.Context, cfg *core.Config, client *http.Client, w *wappalyzergo.Wappalyze, baseURL string) []DetectionResult {
	perPath, _ := utils.RunWorkerPool(ctx, additionalPaths, 4, func(ctx context.Context, path string) ([]DetectionResult, error) {
		resp, body, err := fetch(ctx, client, baseURL+path)
		if err != nil {
			return nil, err
		}
		return fingerprint(w, resp.Header, body), nil
	})

	var results []DetectionResult
	for _, found := range perPath {
		results = append(results, found...)
	}
	return results
}

func dedupe(results []DetectionResult) []DetectionResult {
	seen := make(map[string]struct{}, len(results))
	out := results[:0]
	for _, r := range results {
		key := strings.ToLower(r.Technology)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// newClient builds the fingerprinting HTTP client, honoring the SOCKS5 proxy
// and TLS settings from the config.
func newClient(cfg *core.Config) (*http.Client, error) {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.Insecure,
		},
	}

	if cfg.Proxy != "" {
		dialer, err := xproxy.SOCKS5("tcp", cfg.Proxy, nil, &net.Dialer{Timeout: 10 * time.Second})
		if err != nil {
			return nil, fmt.Errorf("socks5 proxy %s: %w", cfg.Proxy, err)
		}
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(xproxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
	}

	return &http.Client{
		Timeout:   15 * time.Second,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}, nil
}

func fetch(ctx context.Context, client *http.Client, url string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, nil, err
	}

	return resp, body, nil
}
