package marketdata

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/connectors/cex/mexc"
	imetrics "github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/metrics"
	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/types"
)

// QuotePublisher — последняя котировка наружу (Redis); nil = выключено.
type QuotePublisher interface {
	UpsertQuote(ctx context.Context, q types.Quote) error
}

func fmtPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatLine — строка консольного вывода, одна на котировку.
func FormatLine(t mexc.Ticker) string {
	return fmt.Sprintf("[bookTicker] %s | bid %s x %s  ask %s x %s",
		t.Symbol, fmtPx(t.Bid), fmtPx(t.BidQty), fmtPx(t.Ask), fmtPx(t.AskQty))
}

// Run читает поток котировок до отмены контекста, закрытия потока или первой
// ошибки чтения. Каждая котировка печатается в консоль, обновляет метрики и,
// если задан pub, уходит в Redis.
func Run(ctx context.Context, stream <-chan mexc.Ticker, errs <-chan error, pub QuotePublisher, log *zap.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			return err
		case t, ok := <-stream:
			if !ok {
				return nil
			}
			fmt.Println(FormatLine(t))
			imetrics.BestBid.Set(t.Bid)
			imetrics.BestAsk.Set(t.Ask)

			if pub != nil {
				q := types.Quote{
					Symbol: t.Symbol,
					Bid:    t.Bid,
					BidQty: t.BidQty,
					Ask:    t.Ask,
					AskQty: t.AskQty,
					TsMs:   t.TS.UnixMilli(),
				}
				if err := pub.UpsertQuote(ctx, q); err != nil {
					log.Warn("marketdata: ошибка записи котировки в Redis", zap.Error(err))
				}
			}
		}
	}
}
