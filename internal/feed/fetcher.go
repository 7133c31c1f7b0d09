package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	defaultFetchTimeout = 10 * time.Second
	defaultUserAgent    = "github-rss/1.0 Feed Aggregator"
)

// Fetcher 负责抓取并解析单个订阅源。
type Fetcher struct {
	parser    *gofeed.Parser
	client    *http.Client
	userAgent string
}

// NewFetcher 创建订阅源抓取器。timeout 为 0 时使用默认超时。
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Fetcher{
		parser:    gofeed.NewParser(),
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch 抓取指定 URL 的 Feed 并解析。
func (f *Fetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return f.parser.Parse(resp.Body)
}
