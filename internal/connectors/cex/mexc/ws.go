package mexc

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/proto"

	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/connectors/cex/mexc/pb"
	imetrics "github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/metrics"
)

const chanPrefix = "spot@public.aggre.bookTicker.v3.api.pb@"

type Ticker struct {
	Symbol string
	Bid    float64
	BidQty float64
	Ask    float64
	AskQty float64
	TS     time.Time
}

type WS struct {
	URL     string
	Channel string
	Ping    time.Duration
	Dialer  *websocket.Dialer

	mu   sync.Mutex
	wmu  sync.Mutex // gorilla допускает только одного писателя
	conn *websocket.Conn
}

func NewWS(url, channel string, ping time.Duration) *WS {
	return &WS{
		URL:     strings.TrimRight(url, "/"),
		Channel: channel,
		Ping:    ping,
		Dialer: &websocket.Dialer{
			HandshakeTimeout:  15 * time.Second,
			EnableCompression: true,
		},
	}
}

func (w *WS) connect(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn != nil {
		return nil
	}
	h := http.Header{"Origin": []string{"https://www.mexc.com"}}
	c, _, err := w.Dialer.DialContext(ctx, w.URL, h)
	if err != nil {
		return err
	}
	w.conn = c

	// сервер рвёт соединение после ~минуты тишины — двигаем дедлайн на каждый кадр и PONG
	_ = w.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	w.conn.SetPongHandler(func(string) error {
		return w.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	})
	return nil
}

func (w *WS) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn != nil {
		return w.conn.Close()
	}
	return nil
}

func (w *WS) writeText(b []byte) error {
	w.wmu.Lock()
	defer w.wmu.Unlock()
	return w.conn.WriteMessage(websocket.TextMessage, b)
}

// tryDecompress пытается распаковать gzip/zlib, иначе возвращает исходные байты.
func tryDecompress(b []byte) []byte {
	// gzip signature 0x1f 0x8b
	if len(b) > 2 && b[0] == 0x1f && b[1] == 0x8b {
		if r, err := gzip.NewReader(bytes.NewReader(b)); err == nil {
			defer r.Close()
			if out, err := io.ReadAll(r); err == nil {
				return out
			}
		}
	}
	// zlib (deflate) с заголовком, обычно начинается на 0x78
	if len(b) > 2 && b[0] == 0x78 {
		if r, err := zlib.NewReader(bytes.NewReader(b)); err == nil {
			defer r.Close()
			if out, err := io.ReadAll(r); err == nil {
				return out
			}
		}
	}
	return b
}

// SubscribeBookTicker подключается, отправляет SUBSCRIPTION на канал w.Channel
// и запускает приёмный цикл. Первая же ошибка чтения уходит в errc, после чего
// оба канала закрываются — переподключение не наша забота.
func (w *WS) SubscribeBookTicker(ctx context.Context) (<-chan Ticker, <-chan error, error) {
	if err := w.connect(ctx); err != nil {
		return nil, nil, err
	}

	sub := struct {
		ID     int      `json:"id"`
		Method string   `json:"method"`
		Params []string `json:"params"`
	}{ID: 1, Method: "SUBSCRIPTION", Params: []string{w.Channel}}

	b, _ := json.Marshal(sub)
	if err := w.writeText(b); err != nil {
		return nil, nil, fmt.Errorf("subscribe: %w", err)
	}

	out := make(chan Ticker, 1024)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)
		defer w.Close()

		// поддержание соединения: свой PING раз в w.Ping
		pingStop := make(chan struct{})
		go func() {
			t := time.NewTicker(w.Ping)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-pingStop:
					return
				case <-t.C:
					if w.writeText([]byte(`{"method":"PING"}`)) == nil {
						imetrics.PingsSent.Inc()
					}
				}
			}
		}()
		defer close(pingStop)

		type ack struct {
			ID      *int   `json:"id,omitempty"`
			Code    *int   `json:"code,omitempty"`
			Msg     string `json:"msg,omitempty"`
			Channel string `json:"channel,omitempty"`
			Method  string `json:"method,omitempty"`
		}

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			msgType, data, err := w.conn.ReadMessage()
			if err != nil {
				errc <- err
				return
			}
			_ = w.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
			imetrics.FramesTotal.Inc()

			// текстовые кадры: ack подписки, PONG на наши пинги, серверный PING
			if msgType == websocket.TextMessage {
				var a ack
				if json.Unmarshal(data, &a) == nil && strings.EqualFold(a.Method, "PING") {
					// ровно один PONG на каждый серверный PING
					if w.writeText([]byte(`{"method":"PONG"}`)) == nil {
						imetrics.PongsAnswered.Inc()
					}
				}
				continue
			}
			if msgType != websocket.BinaryMessage {
				continue
			}

			raw := tryDecompress(data)

			var wrap pb.PushDataV3ApiWrapper
			if err := proto.Unmarshal(raw, &wrap); err != nil {
				imetrics.DecodeErrors.Inc()
				continue
			}

			if !strings.HasPrefix(wrap.GetChannel(), chanPrefix) {
				continue
			}
			bt := wrap.GetPublicAggreBookTicker()
			if bt == nil {
				continue
			}

			bid, _ := strconv.ParseFloat(bt.GetBidPrice(), 64)
			ask, _ := strconv.ParseFloat(bt.GetAskPrice(), 64)
			if bid == 0 && ask == 0 {
				continue
			}
			bidQty, _ := strconv.ParseFloat(bt.GetBidQuantity(), 64)
			askQty, _ := strconv.ParseFloat(bt.GetAskQuantity(), 64)

			ts := time.Now()
			if wrap.GetSendTime() > 0 {
				ts = time.UnixMilli(wrap.GetSendTime())
			}

			select {
			case out <- Ticker{
				Symbol: wrap.GetSymbol(),
				Bid:    bid,
				BidQty: bidQty,
				Ask:    ask,
				AskQty: askQty,
				TS:     ts,
			}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, errc, nil
}
