package services

import (
	"encoding/json"

	"travel-storefront/internal/models"
	"travel-storefront/internal/session"
)

// TotalsCache keeps the display totals (subtotal, discount, total) of
// completed checkouts, keyed by transaction id, in the session store. It
// exists purely so the history page can show the promo breakdown; the
// server transaction record stays the source of truth. Every read fails
// closed to an empty map.
type TotalsCache struct {
	store session.Session
}

func NewTotalsCache(store session.Session) *TotalsCache {
	return &TotalsCache{store: store}
}

// Load returns the cached totals map, empty on any storage or parse error.
func (c *TotalsCache) Load() map[string]models.TransactionTotals {
	raw, ok := c.store.Get(session.KeyTotals)
	if !ok || raw == "" {
		return map[string]models.TransactionTotals{}
	}
	var totals map[string]models.TransactionTotals
	if err := json.Unmarshal([]byte(raw), &totals); err != nil || totals == nil {
		return map[string]models.TransactionTotals{}
	}
	return totals
}

// Save records the totals for one transaction. Failures are swallowed: the
// cache is display-only and must never break a successful checkout.
func (c *TotalsCache) Save(transactionID string, totals models.TransactionTotals) {
	if transactionID == "" {
		return
	}
	next := c.Load()
	next[transactionID] = totals

	raw, err := json.Marshal(next)
	if err != nil {
		return
	}
	_ = c.store.Set(session.KeyTotals, string(raw))
}

// Get looks up the cached totals for one transaction.
func (c *TotalsCache) Get(transactionID string) (models.TransactionTotals, bool) {
	totals, ok := c.Load()[transactionID]
	return totals, ok
}
