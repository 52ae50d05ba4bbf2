package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	geomag "github.com/j143/geomag-algorithms"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "validate":
		err = validateCommand(os.Args[2:])
	case "codes":
		err = codesCommand(os.Args[2:])
	case "stats":
		err = statsCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("geomag-edge %s: %v", cmd, err)
	}
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./data/config.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := geomag.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func codesCommand(args []string) error {
	fs := flag.NewFlagSet("codes", flag.ExitOnError)
	observatory := fs.String("observatory", "", "Observatory code, e.g. BOU")
	channel := fs.String("channel", "H", "Channel element (D, E, F, H or Z)")
	dataType := fs.String("type", "variation", "Data type (variation, quasi-definitive or definitive)")
	interval := fs.String("interval", "minute", "Sample interval (second, minute, hourly or daily)")
	location := fs.String("location", "", "Location code override, e.g. R1")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *observatory == "" {
		return fmt.Errorf("-observatory is required")
	}

	id, err := geomag.IdentityFor(*observatory, *channel, *dataType, *interval, *location)
	if err != nil {
		return err
	}

	fmt.Printf("network  %s\n", id.Network)
	fmt.Printf("station  %s\n", id.Station)
	fmt.Printf("location %s\n", id.Location)
	fmt.Printf("channel  %s\n", id.Channel)
	fmt.Printf("sncl     %s.%s.%s.%s\n", id.Network, id.Station, id.Location, id.Channel)
	return nil
}

func statsCommand(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	url := fs.String("url", "http://localhost:9100/metrics", "Prometheus metrics endpoint")
	interval := fs.Duration("interval", 2*time.Second, "Refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	fmt.Printf("Streaming metrics from %s (Ctrl+C to stop)\n", *url)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := printMetricsSnapshot(*url); err != nil {
				fmt.Fprintf(os.Stderr, "stats error: %v\n", err)
			}
		}
	}
}

func printMetricsSnapshot(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	targets := map[string]float64{
		"geomag_samples_read_total":       0,
		"geomag_samples_written_total":    0,
		"geomag_windows_sent_total":       0,
		"geomag_gap_samples_padded_total": 0,
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for key := range targets {
			if strings.HasPrefix(line, key+" ") {
				var value float64
				if _, err := fmt.Sscanf(line, key+" %f", &value); err == nil {
					targets[key] = value
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("[%s] read=%f written=%f windows=%f padded=%f\n",
		time.Now().Format(time.RFC3339),
		targets["geomag_samples_read_total"],
		targets["geomag_samples_written_total"],
		targets["geomag_windows_sent_total"],
		targets["geomag_gap_samples_padded_total"],
	)
	return nil
}

func printUsage() {
	fmt.Printf(`geomag-edge CLI

Usage:
  geomag-edge <command> [flags]

Commands:
  validate   Load and validate a config file
  codes      Resolve the Earthworm SNCL identity for an observatory channel
  stats      Poll a Prometheus metrics endpoint and print live counters

Examples:
  geomag-edge validate -config ./data/config.yaml
  geomag-edge codes -observatory BOU -channel H -type definitive
  geomag-edge stats -url http://localhost:9100/metrics -interval 1s
`)
}
