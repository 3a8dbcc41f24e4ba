package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// OKXFetcher implements Fetcher using the OKX v5 market data API.
type OKXFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewOKXFetcher creates a fetcher with optional proxy support.
func NewOKXFetcher(baseURL, proxyURL string, timeout time.Duration) *OKXFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &OKXFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *OKXFetcher) Name() string { return "okx" }

// FetchCandles retrieves up to `limit` candles for the instrument.
// OKX returns rows as positional string arrays, newest first:
// [ts, open, high, low, close, vol, volCcy, volCcyQuote, confirm].
// Volume is taken from volCcyQuote (quote currency).
func (f *OKXFetcher) FetchCandles(ctx context.Context, instrument, bar string, limit int) ([]model.Candle, error) {
	q := url.Values{}
	q.Set("instId", instrument)
	q.Set("bar", bar)
	q.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/api/v5/market/candles?%s", f.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("okx fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("okx read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("okx: status %d, body: %s", resp.StatusCode, string(body))
	}

	if code := gjson.GetBytes(body, "code").String(); code != "0" {
		return nil, fmt.Errorf("okx api error: code=%s msg=%s", code, gjson.GetBytes(body, "msg").String())
	}

	rows := gjson.GetBytes(body, "data").Array()
	if len(rows) == 0 {
		return nil, fmt.Errorf("okx: no candle data returned")
	}

	candles := make([]model.Candle, 0, len(rows))
	for _, row := range rows {
		cols := row.Array()
		if len(cols) < 8 {
			return nil, fmt.Errorf("okx: malformed candle row with %d columns", len(cols))
		}
		candles = append(candles, model.Candle{
			Time:   time.UnixMilli(cols[0].Int()),
			Open:   cols[1].Float(),
			High:   cols[2].Float(),
			Low:    cols[3].Float(),
			Close:  cols[4].Float(),
			Volume: cols[7].Float(), // volCcyQuote
		})
	}

	sort.Slice(candles, func(i, j int) bool { return candles[i].Time.Before(candles[j].Time) })
	return candles, nil
}
