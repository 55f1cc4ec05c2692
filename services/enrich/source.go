package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mlbb-pipeline/lib/jsonutil"
	"mlbb-pipeline/lib/scrapers/mlbbio"
	"mlbb-pipeline/lib/textutil"
)

// DetailMap keys hero detail payloads by every name spelling they were seen
// under.
type DetailMap map[string]*mlbbio.HeroDetail

// ErrNoDetailData means a detail source produced zero records, which makes
// the whole enrichment run pointless.
var ErrNoDetailData = errors.New("no hero detail data could be obtained")

// FromDirectory reads every per-hero detail file in dir. Each detail is
// keyed by its canonical hero name, plus the filename stem when the stem
// can't be reproduced from the name (irregular punctuation like "Chang'e"
// living in chang-e.json).
func FromDirectory(ctx context.Context, dir string) (DetailMap, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	details := DetailMap{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		res, err := jsonutil.ReadFile[mlbbio.DetailResponse](filepath.Join(dir, entry.Name()))
		if err != nil {
			slog.WarnContext(ctx, "failed to load hero detail file", "file", entry.Name(), "err", err)
			continue
		}
		if !res.Success || res.Data == nil {
			continue
		}

		name := res.Data.HeroName
		details[name] = res.Data

		stem := strings.TrimSuffix(entry.Name(), ".json")
		if stem != textutil.FileSlug(name) {
			details[stem] = res.Data
		}
		slog.DebugContext(ctx, "loaded hero detail", "hero", name, "file", entry.Name())
	}

	return details, nil
}

// FromHar extracts detail payloads from a captured-traffic document.
func FromHar(ctx context.Context, harFile string) (DetailMap, error) {
	return mlbbio.ExtractHarDetails(ctx, harFile)
}

// FromApi fetches detail for each named hero from the live site, one request
// at a time. Individual failures are logged and skipped, never fatal.
func FromApi(ctx context.Context, client *mlbbio.Client, heroNames []string) DetailMap {
	details := DetailMap{}
	for idx, name := range heroNames {
		slog.InfoContext(ctx, "fetching hero detail",
			"hero", name,
			"progress", fmt.Sprintf("%d/%d", idx+1, len(heroNames)),
		)
		detail, err := client.FetchHeroDetail(ctx, name)
		if err != nil {
			slog.WarnContext(ctx, "failed to fetch hero detail", "hero", name, "err", err)
			continue
		}
		details[name] = detail
	}
	return details
}
