package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	BestBid = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "feed_best_bid",
		Help: "Best bid price from the bookTicker stream",
	})

	BestAsk = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "feed_best_ask",
		Help: "Best ask price from the bookTicker stream",
	})

	FramesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_frames_total",
		Help: "Number of WebSocket frames received",
	})

	DecodeErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_decode_errors_total",
		Help: "Number of binary frames that failed protobuf decoding",
	})

	PingsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_pings_sent_total",
		Help: "Number of keep-alive PINGs sent by the client",
	})

	PongsAnswered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_pongs_answered_total",
		Help: "Number of server PINGs answered with a PONG",
	})
)

func init() {
	prometheus.MustRegister(
		BestBid,
		BestAsk,
		FramesTotal,
		DecodeErrors,
		PingsSent,
		PongsAnswered,
	)
}
