package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/config"
	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/connectors/cex/mexc"
	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/connectors/redisfeed"
	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/marketdata"
	"github.com/XMMM19/connect-to-mexc-for-get-JUMP-coin/internal/metrics"
)

func newLogger() (*zap.Logger, error) {
	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.InfoLevel),
		Development: false,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "время",
			LevelKey:       "уровень",
			NameKey:        "лог",
			CallerKey:      "файл",
			MessageKey:     "сообщение",
			StacktraceKey:  "стек",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}

func parseFlags() (cfgPath, symbol, interval string) {
	flag.StringVar(&cfgPath, "config", "./config.yaml", "путь к конфигу")
	flag.StringVar(&symbol, "symbol", "", "торговая пара (перекрывает конфиг)")
	flag.StringVar(&interval, "interval", "", "интервал push: 100ms или 10ms")
	flag.Parse()
	return cfgPath, symbol, interval
}

func main() {
	cfgPath, symbol, interval := parseFlags()

	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("ошибка загрузки конфига", zap.Error(err))
	}
	if symbol != "" {
		cfg.Symbol = strings.ToUpper(strings.TrimSpace(symbol))
	}
	if interval != "" {
		cfg.Interval = interval
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		logger.Warn("получен сигнал, выходим…")
		cancel()
	}()

	metrics.Serve(ctx, cfg.Metrics.ListenAddr, nil, logger)

	// REST-снимок, чтобы не ждать первого push
	rest, err := mexc.NewClient(cfg, logger)
	if err != nil {
		logger.Fatal("инициализация MEXC", zap.Error(err))
	}
	snapCtx, snapCancel := context.WithTimeout(ctx, 5*time.Second)
	if t, err := rest.BestBidAsk(snapCtx, cfg.Symbol); err == nil {
		fmt.Println(marketdata.FormatLine(t))
	} else {
		logger.Warn("REST-снимок недоступен", zap.Error(err))
	}
	snapCancel()

	ws := mexc.NewWS(cfg.MEXC.WsURL, cfg.Channel(), cfg.PingInterval())
	stream, errs, err := ws.SubscribeBookTicker(ctx)
	if err != nil {
		logger.Fatal("подписка не удалась", zap.Error(err))
	}
	defer ws.Close()

	var pub marketdata.QuotePublisher
	if cfg.Redis.Addr != "" {
		pub = redisfeed.NewPublisher(cfg)
	}

	logger.Info("подписка оформлена",
		zap.String("канал", cfg.Channel()),
		zap.String("пара", cfg.Symbol),
	)

	if err := marketdata.Run(ctx, stream, errs, pub, logger); err != nil {
		logger.Fatal("поток оборвался", zap.Error(err))
	}
}
