package mlbbio

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"mlbb-pipeline/lib/jsonutil"
)

type harDocument struct {
	Log struct {
		Entries []harEntry `json:"entries"`
	} `json:"log"`
}

type harEntry struct {
	Request struct {
		Url string `json:"url"`
	} `json:"request"`
	Response struct {
		Content struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"response"`
}

// ExtractHarDetails pulls successful hero detail payloads out of a browser
// traffic capture, keyed by the URL-decoded hero name path component.
// Entries that fail to parse are logged and dropped.
func ExtractHarDetails(ctx context.Context, harPath string) (map[string]*HeroDetail, error) {
	doc, err := jsonutil.ReadFile[harDocument](harPath)
	if err != nil {
		return nil, err
	}

	details := map[string]*HeroDetail{}
	for _, entry := range doc.Log.Entries {
		idx := strings.LastIndex(entry.Request.Url, DetailPath)
		if idx < 0 {
			continue
		}
		name := entry.Request.Url[idx+len(DetailPath):]
		if q := strings.IndexByte(name, '?'); q >= 0 {
			name = name[:q]
		}
		decoded, err := url.PathUnescape(name)
		if err == nil {
			name = decoded
		}

		text := entry.Response.Content.Text
		if text == "" {
			continue
		}
		var body DetailResponse
		err = json.Unmarshal([]byte(text), &body)
		if err != nil {
			slog.WarnContext(ctx, "failed to parse hero detail response", "hero", name, "err", err)
			continue
		}
		if !body.Success || body.Data == nil {
			continue
		}

		details[name] = body.Data
		slog.DebugContext(ctx, "extracted hero detail", "hero", name)
	}

	return details, nil
}
