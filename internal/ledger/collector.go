package ledger

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-petr/pet-ledger/pkg/currencypkg"
)

var (
	accountsDesc = prometheus.NewDesc(
		"ledger_accounts",
		"Number of accounts per currency.",
		[]string{"currency"}, nil,
	)
	balanceDesc = prometheus.NewDesc(
		"ledger_balance_minor_units",
		"Sum of account balances per currency in minor units.",
		[]string{"currency"}, nil,
	)
)

// Collector exports ledger totals as Prometheus gauges.
type Collector struct {
	store *Store
}

// NewCollector returns a collector reading from the given store on every scrape.
func NewCollector(s *Store) *Collector {
	return &Collector{store: s}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- accountsDesc
	ch <- balanceDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	counts := make(map[currencypkg.Currency]int, len(currencypkg.SupportedCurrencies))
	totals := make(map[currencypkg.Currency]float64, len(currencypkg.SupportedCurrencies))

	for _, a := range c.store.ListAccounts(context.Background()) {
		counts[a.Currency]++
		totals[a.Currency] += float64(a.Balance)
	}

	for _, cur := range currencypkg.SupportedCurrencies {
		ch <- prometheus.MustNewConstMetric(accountsDesc, prometheus.GaugeValue, float64(counts[cur]), string(cur))
		ch <- prometheus.MustNewConstMetric(balanceDesc, prometheus.GaugeValue, totals[cur], string(cur))
	}
}
