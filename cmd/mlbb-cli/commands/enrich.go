package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mlbb-pipeline/lib/configutil"
	"mlbb-pipeline/lib/jsonutil"
	"mlbb-pipeline/lib/mlbbapi"
	"mlbb-pipeline/lib/scrapers/mlbbio"
	"mlbb-pipeline/lib/serviceutil"
	"mlbb-pipeline/services/enrich"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	enrichConfigPath *string
	enrichExfilDir   *string
	enrichHarFile    *string
	enrichFetchApi   *bool
	enrichDelay      *float64
	enrichBaseUrl    *string
)

func init() {
	enrichConfigPath = enrichCmd.Flags().String("config", "mlbb.json5", "The config file listing source and output paths.")
	enrichExfilDir = enrichCmd.Flags().String("exfil-dir", "", "Directory of per-hero scrape output files.")
	enrichHarFile = enrichCmd.Flags().String("har-file", "", "HAR capture containing hero detail traffic.")
	enrichFetchApi = enrichCmd.Flags().Bool("fetch-api", false, "Fetch hero details from the live mlbb.io API.")
	enrichDelay = enrichCmd.Flags().Float64("delay", 0.5, "Delay between API requests in seconds.")
	enrichBaseUrl = enrichCmd.Flags().String("base-url", "https://mlbb.io", "Base URL of the detail API.")

	enrichCmd.MarkFlagsOneRequired("exfil-dir", "har-file", "fetch-api")
	enrichCmd.MarkFlagsMutuallyExclusive("exfil-dir", "har-file", "fetch-api")
	rootCmd.AddCommand(enrichCmd)
}

// detailLoader resolves the detail map for the given hero collection. The
// live-fetch strategy is the only one that cares about the heroes.
type detailLoader func(ctx context.Context, heroes []mlbbapi.Hero) (enrich.DetailMap, error)

func selectedLoader() detailLoader {
	switch {
	case *enrichFetchApi:
		return func(ctx context.Context, heroes []mlbbapi.Hero) (enrich.DetailMap, error) {
			client := mlbbio.NewClient(mlbbio.ClientOptions{
				BaseUrl:      *enrichBaseUrl,
				RequestDelay: time.Duration(*enrichDelay * float64(time.Second)),
			})
			names := make([]string, 0, len(heroes))
			for _, hero := range heroes {
				if hero.HeroName != "None" {
					names = append(names, hero.HeroName)
				}
			}
			return enrich.FromApi(ctx, client, names), nil
		}
	case *enrichHarFile != "":
		return func(ctx context.Context, heroes []mlbbapi.Hero) (enrich.DetailMap, error) {
			return enrich.FromHar(ctx, *enrichHarFile)
		}
	default:
		return func(ctx context.Context, heroes []mlbbapi.Hero) (enrich.DetailMap, error) {
			return enrich.FromDirectory(ctx, *enrichExfilDir)
		}
	}
}

// runEnrich loads the hero file, merges in whatever the loader produces and
// writes the file back once. A loader yielding zero records aborts with
// ErrNoDetailData before anything is written.
func runEnrich(ctx context.Context, heroPath string, load detailLoader) (mlbbapi.Document[mlbbapi.Hero], enrich.Summary, error) {
	heroDoc, err := jsonutil.ReadFile[mlbbapi.Document[mlbbapi.Hero]](heroPath)
	if err != nil {
		return heroDoc, enrich.Summary{}, fmt.Errorf("load hero metadata: %w", err)
	}
	slog.Info("loaded hero metadata", "heroes", len(heroDoc.Data))

	details, err := load(ctx, heroDoc.Data)
	if err != nil {
		return heroDoc, enrich.Summary{}, fmt.Errorf("load hero details: %w", err)
	}
	if len(details) == 0 {
		return heroDoc, enrich.Summary{}, enrich.ErrNoDetailData
	}
	slog.Info("loaded hero details", "records", len(details))

	enriched, summary := enrich.Heroes(ctx, heroDoc.Data, details)
	heroDoc.Data = enriched

	err = jsonutil.WriteFile(heroPath, heroDoc)
	if err != nil {
		return heroDoc, summary, fmt.Errorf("write hero metadata: %w", err)
	}
	slog.Info("saved", "file", heroPath)

	return heroDoc, summary, nil
}

var enrichCmd = &cobra.Command{
	Use:   "enrich (--exfil-dir <dir> | --har-file <capture.har> | --fetch-api) [--delay <seconds>]",
	Short: "Merges per-hero detail data into an already transformed hero file.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config](*enrichConfigPath)
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		heroDoc, summary, err := runEnrich(cmd.Context(), cfg.HeroesOut, selectedLoader())
		if err != nil {
			serviceutil.Fatal("enrichment failed", err)
		}

		withSkills := 0
		for _, hero := range heroDoc.Data {
			if len(hero.Skills) > 0 {
				withSkills++
			}
		}

		t := newTable()
		t.AppendHeader(table.Row{"result", "heroes"})
		t.AppendRow(table.Row{"enriched", summary.Enriched})
		t.AppendRow(table.Row{"skipped", summary.Skipped})
		t.AppendRow(table.Row{"with skills", withSkills})
		t.Render()
	},
}
