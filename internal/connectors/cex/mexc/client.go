package mexc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/config"
)

// Client — публичный REST; нужен один раз на старте, чтобы показать стакан до первого push.
type Client struct {
	cfg  *config.Config
	log  *zap.Logger
	http *http.Client
}

func NewClient(cfg *config.Config, log *zap.Logger) (*Client, error) {
	return &Client{cfg: cfg, log: log, http: &http.Client{Timeout: 6 * time.Second}}, nil
}

type bookTickerResp struct {
	Symbol   string `json:"symbol"`
	BidPrice string `json:"bidPrice"`
	BidQty   string `json:"bidQty"`
	AskPrice string `json:"askPrice"`
	AskQty   string `json:"askQty"`
}

func (c *Client) BestBidAsk(ctx context.Context, symbol string) (Ticker, error) {
	endpoint := c.cfg.MEXC.RestURL + "/api/v3/ticker/bookTicker?symbol=" + url.QueryEscape(symbol)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return Ticker{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Ticker{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return Ticker{}, fmt.Errorf("bookTicker %d: %s", resp.StatusCode, string(b))
	}
	var br bookTickerResp
	if err := json.NewDecoder(resp.Body).Decode(&br); err != nil {
		return Ticker{}, err
	}

	bid, _ := strconv.ParseFloat(br.BidPrice, 64)
	ask, _ := strconv.ParseFloat(br.AskPrice, 64)
	bidQty, _ := strconv.ParseFloat(br.BidQty, 64)
	askQty, _ := strconv.ParseFloat(br.AskQty, 64)
	if bid == 0 && ask == 0 {
		return Ticker{}, fmt.Errorf("bookTicker: empty book for %s", symbol)
	}
	return Ticker{
		Symbol: br.Symbol,
		Bid:    bid,
		BidQty: bidQty,
		Ask:    ask,
		AskQty: askQty,
		TS:     time.Now(),
	}, nil
}
