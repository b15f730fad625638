package steal

import (
	"context"
	"html"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"recipe-box/domain"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
)

type PageFetcher interface {
	// Fetch returns the raw body of pageURL.
	Fetch(ctx context.Context, pageURL string) (string, error)
}

type restyFetcher struct {
	client          *resty.Client
	maxRetries      uint64
	initialInterval time.Duration
}

func NewPageFetcher(timeout time.Duration, userAgent string) PageFetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	return &restyFetcher{
		client:          client,
		maxRetries:      3,
		initialInterval: 500 * time.Millisecond,
	}
}

func (f *restyFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	var body string
	operation := func() error {
		resp, err := f.client.R().SetContext(ctx).Get(pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return errors.Wrap(err, "fetch page")
		}

		status := resp.StatusCode()
		switch {
		case status >= http.StatusInternalServerError || status == http.StatusTooManyRequests:
			return errors.Errorf("fetch page: status %d", status)
		case resp.IsError():
			return backoff.Permanent(errors.Errorf("fetch page: status %d", status))
		}

		body = resp.String()
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = f.initialInterval
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, f.maxRetries), ctx)); err != nil {
		return "", &domain.UpstreamError{
			Kind:    domain.UpstreamFetchFailed,
			Message: "could not fetch the recipe page",
			Err:     err,
		}
	}
	return body, nil
}

var textPolicy = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// HTMLToText strips markup, scripts and styles from page and collapses the
// remaining whitespace. The result is cut to maxChars runes when maxChars > 0.
func HTMLToText(page string, maxChars int) string {
	text := html.UnescapeString(textPolicy.Sanitize(page))
	text = strings.Join(strings.Fields(text), " ")

	if maxChars > 0 && utf8.RuneCountInString(text) > maxChars {
		runes := []rune(text)
		text = string(runes[:maxChars])
	}
	return text
}
