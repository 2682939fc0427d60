package volby

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
	"volby-scraper/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/volby")

// DefaultBaseUrl is the directory all pages of the 2017 parliamentary
// election results live under. Relative hrefs on those pages resolve
// against it.
const DefaultBaseUrl = "https://www.volby.cz/pls/ps2017nss/"

// indexPage lists every district of the country with links to their
// sub-district tables.
const indexPage = "ps3?xjazyk=CZ"

var (
	ErrFetch        = errors.New("failed to fetch page")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// defaults to 30s
	Timeout time.Duration
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "scrapers/volby/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

// FetchDocument retrieves a page and parses it. `link` may be relative
// to the client's base url.
func (c *Client) FetchDocument(ctx context.Context, link string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, link, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: %s: status %d", ErrFetch, link, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, link, err)
	}
	return doc, nil
}

// CheckReachable makes a HEAD request against a caller-supplied url
// before the crawl commits to it.
func (c *Client) CheckReachable(ctx context.Context, link string) error {
	res, err := c.Http.R().
		SetContext(ctx).
		Head(link)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFetch, link, err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("%w: %s: status %d", ErrFetch, link, res.StatusCode())
	}
	return nil
}
