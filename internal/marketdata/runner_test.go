package marketdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/connectors/cex/mexc"
	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/types"
)

type fakePublisher struct {
	quotes []types.Quote
	err    error
}

func (f *fakePublisher) UpsertQuote(_ context.Context, q types.Quote) error {
	f.quotes = append(f.quotes, q)
	return f.err
}

func TestFormatLine(t *testing.T) {
	line := FormatLine(mexc.Ticker{
		Symbol: "JUMPUSDT",
		Bid:    0.00851,
		BidQty: 1200.5,
		Ask:    0.00853,
		AskQty: 900,
	})
	assert.Equal(t, "[bookTicker] JUMPUSDT | bid 0.00851 x 1200.5  ask 0.00853 x 900", line)
}

func TestRun_PublishesQuotes(t *testing.T) {
	stream := make(chan mexc.Ticker, 2)
	errs := make(chan error, 1)
	pub := &fakePublisher{}

	ts := time.UnixMilli(1700000000123)
	stream <- mexc.Ticker{Symbol: "JUMPUSDT", Bid: 0.5, BidQty: 10, Ask: 0.6, AskQty: 20, TS: ts}
	close(stream)

	err := Run(context.Background(), stream, errs, pub, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, pub.quotes, 1)
	q := pub.quotes[0]
	assert.Equal(t, "JUMPUSDT", q.Symbol)
	assert.Equal(t, 0.5, q.Bid)
	assert.Equal(t, 0.6, q.Ask)
	assert.Equal(t, int64(1700000000123), q.TsMs)
}

func TestRun_NilPublisher(t *testing.T) {
	stream := make(chan mexc.Ticker, 1)
	errs := make(chan error, 1)
	stream <- mexc.Ticker{Symbol: "JUMPUSDT", Bid: 1, Ask: 2}
	close(stream)

	assert.NoError(t, Run(context.Background(), stream, errs, nil, zap.NewNop()))
}

func TestRun_StreamErrorReturned(t *testing.T) {
	stream := make(chan mexc.Ticker)
	errs := make(chan error, 1)
	want := errors.New("read: connection reset")
	errs <- want

	err := Run(context.Background(), stream, errs, nil, zap.NewNop())
	assert.ErrorIs(t, err, want)
}

func TestRun_ContextCancel(t *testing.T) {
	stream := make(chan mexc.Ticker)
	errs := make(chan error)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, stream, errs, nil, zap.NewNop()) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancel")
	}
}

func TestRun_PublisherErrorDoesNotStop(t *testing.T) {
	stream := make(chan mexc.Ticker, 2)
	errs := make(chan error, 1)
	pub := &fakePublisher{err: errors.New("redis down")}

	stream <- mexc.Ticker{Symbol: "JUMPUSDT", Bid: 1, Ask: 2}
	stream <- mexc.Ticker{Symbol: "JUMPUSDT", Bid: 3, Ask: 4}
	close(stream)

	require.NoError(t, Run(context.Background(), stream, errs, pub, zap.NewNop()))
	assert.Len(t, pub.quotes, 2)
}
