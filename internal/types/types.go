package types

// Quote — последняя лучшая пара bid/ask по символу; только текущее значение, без истории.
type Quote struct {
	Symbol string
	Bid    float64
	BidQty float64
	Ask    float64
	AskQty float64
	TsMs   int64
}
