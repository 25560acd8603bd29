package models

import "time"

// LedgerKind names the operation that moved coins.
type LedgerKind string

const (
	LedgerScrape   LedgerKind = "scrape"
	LedgerCoinFlip LedgerKind = "coinflip"
	LedgerSlots    LedgerKind = "slots"
	LedgerPurchase LedgerKind = "purchase"
)

type LedgerEntry struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Kind      LedgerKind `json:"kind"`
	Delta     int64      `json:"delta"`
	Balance   uint64     `json:"balance"`
	Detail    string     `json:"detail"`
	CreatedAt time.Time  `json:"created_at"`
}

type LedgerFilter struct {
	Username string
	Kind     LedgerKind
	Limit    int
}

// LedgerPage is one page of a student's history plus the total entry count.
type LedgerPage struct {
	Entries []LedgerEntry `json:"entries"`
	Total   int           `json:"total"`
}
