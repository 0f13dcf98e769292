package requests

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"golang.org/x/net/html/charset"
)

// StatusError is returned for responses that don't have a success status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.URL, e.StatusCode)
}

var errNoClient = errors.New("null transport client")

func setupHeaders(req *http.Request, userAgent string) {
	req.Header.Add("User-Agent", userAgent)
	req.Header.Add("cache-control", "no-cache")
	req.Header.Add("Accept-Charset", "utf-8")
}

// Get fetches a url and returns its body, decoded to utf-8 using the response content type.
func Get(ctx context.Context, client *http.Client, route string, userAgent string, headers map[string]string) (string, error) {
	if client == nil {
		return "", errNoClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, route, nil)
	if err != nil {
		return "", err
	}
	setupHeaders(req, userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		_, _ = io.Copy(ioutil.Discard, res.Body)
		return "", &StatusError{StatusCode: res.StatusCode, URL: route}
	}
	reader, err := charset.NewReader(res.Body, res.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("couldn't detect the charset of %s: %w", route, err)
	}
	body, err := ioutil.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
