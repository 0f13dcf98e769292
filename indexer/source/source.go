package source

import "context"

// ContentFetcher retrieves the text body of a url.
//go:generate mockgen -source source.go -destination=mocks/source.go -package=mocks
type ContentFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}
