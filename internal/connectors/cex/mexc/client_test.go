package mexc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/config"
)

func TestBestBidAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/bookTicker", r.URL.Path)
		assert.Equal(t, "JUMPUSDT", r.URL.Query().Get("symbol"))
		_, _ = w.Write([]byte(`{"symbol":"JUMPUSDT","bidPrice":"0.00851","bidQty":"1200.5","askPrice":"0.00853","askQty":"900"}`))
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.MEXC.RestURL = srv.URL

	c, err := NewClient(cfg, zap.NewNop())
	require.NoError(t, err)

	tick, err := c.BestBidAsk(context.Background(), "JUMPUSDT")
	require.NoError(t, err)
	assert.Equal(t, "JUMPUSDT", tick.Symbol)
	assert.Equal(t, 0.00851, tick.Bid)
	assert.Equal(t, 1200.5, tick.BidQty)
	assert.Equal(t, 0.00853, tick.Ask)
	assert.Equal(t, 900.0, tick.AskQty)
}

func TestBestBidAsk_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.MEXC.RestURL = srv.URL

	c, err := NewClient(cfg, zap.NewNop())
	require.NoError(t, err)

	_, err = c.BestBidAsk(context.Background(), "NOPE")
	assert.Error(t, err)
}

func TestBestBidAsk_EmptyBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"symbol":"JUMPUSDT","bidPrice":"","bidQty":"","askPrice":"","askQty":""}`))
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.MEXC.RestURL = srv.URL

	c, err := NewClient(cfg, zap.NewNop())
	require.NoError(t, err)

	_, err = c.BestBidAsk(context.Background(), "JUMPUSDT")
	assert.Error(t, err)
}
