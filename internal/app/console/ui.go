package console

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/term"
)

const (
	Version = "2.0.0"

	// ANSI color codes (optimized for dark backgrounds).
	ColorReset     = "\033[0m"
	ColorRed       = "\033[38;5;204m"
	ColorBlue      = "\033[38;5;117m"
	ColorOrange    = "\033[38;5;215m"
	ColorGreen     = "\033[38;5;114m"
	ColorCyan      = "\033[38;5;122m"
	ColorYellow    = "\033[38;5;222m"
	ColorMagenta   = "\033[38;5;176m"
	ColorBoldWhite = "\033[1;97m"
	ColorGray      = "\033[38;5;248m"
)

var GlobalNoColors bool

// Init disables colors when stderr is not a terminal (piped output, CI).
func Init(noColors bool) {
	if noColors || !term.IsTerminal(int(os.Stderr.Fd())) {
		GlobalNoColors = true
	}
}

func ShowBanner() {
	fmt.Fprintln(os.Stderr, `    ____             __   ________ `)
	fmt.Fprintln(os.Stderr, `   / __ \____  _____/ /__/  _/ __ \`)
	fmt.Fprintln(os.Stderr, `  / / / / __ \/ ___/ //_// // / / /`)
	fmt.Fprintln(os.Stderr, ` / /_/ / /_/ / /  / ,<  / // /_/ / `)
	fmt.Fprintln(os.Stderr, `/_____/\____/_/  /_/|_/___/\___\_\ `)
	fmt.Fprintf(os.Stderr, "\n DorkIQ v%s - see the dorks before anyone else\n\n", Version)
}

func Logv(v bool, f string, a ...any) {
	if v {
		colorized := ColorizeVerboseOutput(f)
		fmt.Fprintf(os.Stderr, colorized+"\n", a...)
	}
}

func LogErr(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
}

// ColorizeVerboseOutput adds colors to [tags] in verbose output
func ColorizeVerboseOutput(msg string) string {
	if GlobalNoColors {
		return msg
	}

	re := regexp.MustCompile(`\[([^\]]+)\]`)

	return re.ReplaceAllStringFunc(msg, func(match string) string {
		tag := strings.Trim(match, "[]")
		var color string

		switch tag {
		case "Target", "stdin":
			color = ColorYellow
		case "Catalog":
			color = ColorGreen
		case "TECH-DETECT":
			color = ColorMagenta
		case "Serve":
			color = ColorBlue
		case "Export":
			color = ColorOrange
		case "Summary":
			color = ColorBoldWhite
		case "!":
			color = ColorRed
		default:
			color = ColorCyan
		}

		return color + match + ColorReset
	})
}

func PrintUsage() {
	LogErr("Usage:")
	LogErr("  dorkiq                          Start the HTTP server (default when no target is given)")
	LogErr("  dorkiq -d example.com           Generate dorks for a single domain")
	LogErr("  cat domains.txt | dorkiq        Generate dorks for piped domains")
	LogErr("")
	LogErr("Flags:")
	LogErr("  -d,  -domain       Target domain")
	LogErr("  -c,  -category     Vulnerability category filter (default: all)")
	LogErr("  -a,  -advanced     Include the advanced catalog entries")
	LogErr("  -s,  -subdomains   Also emit wildcard-subdomain variants")
	LogErr("  -tech-detect       Fingerprint the target and append tech-specific dorks")
	LogErr("  -proxy             SOCKS5 proxy for tech detection (host:port)")
	LogErr("  -insecure          Skip TLS verification during tech detection")
	LogErr("  -json              Print results as JSON instead of plain dorks")
	LogErr("  -o,  -output       Write results to a file (.txt, .json or .csv)")
	LogErr("  -listen            Listen address for the HTTP server")
	LogErr("  -config            Path to the config file (default: config.yaml)")
	LogErr("  -no-colors         Disable colorful output")
	LogErr("  -v,  -verbose      Verbose output")
}

func ShowErrorAndExit() {
	LogErr("[!] No target domain. Pass -d, pipe domains via stdin, or run without flags to serve.")
	PrintUsage()
	os.Exit(1)
}
