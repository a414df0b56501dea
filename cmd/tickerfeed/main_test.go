package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"cmd", "--config=/tmp/feed.yaml", "--symbol=btcusdt", "--interval=10ms"}

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	cfgPath, symbol, interval := parseFlags()

	assert.Equal(t, "/tmp/feed.yaml", cfgPath)
	assert.Equal(t, "btcusdt", symbol)
	assert.Equal(t, "10ms", interval)
}

func TestParseFlags_Defaults(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"cmd"}

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	cfgPath, symbol, interval := parseFlags()

	assert.Equal(t, "./config.yaml", cfgPath)
	assert.Equal(t, "", symbol)
	assert.Equal(t, "", interval)
}
