package cookalong

import "context"

// Fetcher retrieves the HTML of a page over the network.
type Fetcher interface {
	// Fetch performs a GET request for the URL and returns the body.
	// Non-success status codes are reported as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
