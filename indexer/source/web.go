package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/f2prateek/train"
	trainlog "github.com/f2prateek/train/log"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/nyaarss/config"
	"github.com/sp0x/nyaarss/requests"
)

// FetchOptions configures the web client.
type FetchOptions struct {
	Timeout   time.Duration
	UserAgent string
	// DebugHTTP logs requests to DebugOutput: "basic" for headers, "body" to include bodies.
	DebugHTTP   string
	DebugOutput io.Writer
	Transport   http.RoundTripper
}

// WebClient is a content fetcher backed by net/http.
type WebClient struct {
	client  *http.Client
	options FetchOptions
}

func NewWebContentFetcher(options FetchOptions) (*WebClient, error) {
	if options.UserAgent == "" {
		options.UserAgent = config.AppName()
	}
	if options.DebugOutput == nil {
		options.DebugOutput = os.Stderr
	}
	transport := options.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	switch options.DebugHTTP {
	case "1", "true", "basic":
		transport = train.TransportWith(transport, trainlog.New(options.DebugOutput, trainlog.Basic))
	case "body":
		transport = train.TransportWith(transport, trainlog.New(options.DebugOutput, trainlog.Body))
	case "", "0", "false":
	default:
		return nil, fmt.Errorf("unknown http debug mode %q", options.DebugHTTP)
	}
	return &WebClient{
		client: &http.Client{
			Timeout:   options.Timeout,
			Transport: transport,
		},
		options: options,
	}, nil
}

// NewWebContentFetcherFromConfig creates a web client using the http settings from config.
func NewWebContentFetcherFromConfig(cfg config.Config, version string) (*WebClient, error) {
	userAgent := config.AppName()
	if version != "" {
		userAgent += "/" + version
	}
	return NewWebContentFetcher(FetchOptions{
		Timeout:   cfg.GetDuration("http_timeout"),
		UserAgent: userAgent,
		DebugHTTP: cfg.GetString("debug_http"),
	})
}

// FetchText gets the body of a url. Non-success statuses are returned as *requests.StatusError.
func (w *WebClient) FetchText(ctx context.Context, url string) (string, error) {
	log.WithField("url", url).Debug("Fetching")
	return requests.Get(ctx, w.client, url, w.options.UserAgent, nil)
}
