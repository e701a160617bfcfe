// Package fetcher retrieves origin documents over HTTP or from the local
// filesystem.
//
// The HTTP fetcher wraps hashicorp/go-retryablehttp with pooled transports,
// bounded retries and a request timeout. Connection failures and 5xx
// responses other than 501 are retried; 429 is returned to the caller.
// Every fetch verifies that the payload looks like a JSON or YAML document,
// so an HTML error page served with a 200 status is reported as a
// [ponterrors.FetchError] rather than handed to the parser.
//
//	f, err := fetcher.New(fetcher.WithMaxRetries(5))
//	data, err := f.Fetch(ctx, "https://petstore.example.com/v2/api-docs")
package fetcher
