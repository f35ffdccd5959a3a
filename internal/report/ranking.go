package report

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"vcenter-healthcheck/internal/model"
)

// Rank computes one table per metric: all records sorted by that metric
// descending, truncated to topN. The five tables are independent and built
// concurrently. Ties keep input order (stable sort).
func Rank(ctx context.Context, records []model.VMRecord, topN int) ([]model.RankingTable, error) {
	metrics := model.Metrics()
	tables := make([]model.RankingTable, len(metrics))

	g, _ := errgroup.WithContext(ctx)
	for i, m := range metrics {
		i, m := i, m
		g.Go(func() error {
			tables[i] = rankBy(records, m, topN)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

func rankBy(records []model.VMRecord, m model.Metric, topN int) model.RankingTable {
	rows := make([]model.VMRecord, len(records))
	copy(rows, records)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value(m) > rows[j].Value(m)
	})
	if len(rows) > topN {
		rows = rows[:topN]
	}
	return model.RankingTable{Metric: m, Rows: rows}
}
