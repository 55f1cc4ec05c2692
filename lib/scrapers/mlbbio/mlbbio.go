// Package mlbbio reads the mlbb.io scraper's source schema, whether it
// arrives from disk dumps, a traffic capture, or the live site.
package mlbbio

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mlbb-pipeline/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("scrapers/mlbbio")

// DetailPath is the endpoint path segment hero detail requests share.
const DetailPath = "/api/hero/detail/"

const defaultRequestDelay = time.Millisecond * 500

type ClientOptions struct {
	BaseUrl string
	// minimum time between detail requests, defaults to 500ms
	RequestDelay time.Duration
}

type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 10)

	telemetry.InstrumentResty(client, "scrapers/mlbbio/http")

	delay := opts.RequestDelay
	if delay <= 0 {
		delay = defaultRequestDelay
	}

	return &Client{
		http:    client,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
	}
}

// DetailUrlName formats a hero name the way the detail endpoint expects:
// spaces %20-encoded, apostrophes stripped. Note this intentionally differs
// from the keys a traffic capture yields, which keep apostrophes.
func DetailUrlName(heroName string) string {
	return url.PathEscape(strings.ReplaceAll(heroName, "'", ""))
}

// FetchHeroDetail requests one hero's detail payload, waiting out the
// configured inter-request delay first.
func (c *Client) FetchHeroDetail(ctx context.Context, heroName string) (*HeroDetail, error) {
	ctx, span := tracer.Start(ctx, "FetchHeroDetail")
	defer span.End()

	err := c.limiter.Wait(ctx)
	if err != nil {
		return nil, err
	}

	var body DetailResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(DetailPath + DetailUrlName(heroName))
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("http %d for %q", res.StatusCode(), heroName)
	}
	if !body.Success || body.Data == nil {
		message := body.Message
		if message == "" {
			message = "unknown error"
		}
		return nil, fmt.Errorf("api error for %q: %s", heroName, message)
	}

	return body.Data, nil
}
