package model

// RankingTable is a read-only view over collected records: the top machines
// for one metric, ordered by descending value. A machine may appear in any
// number of tables.
type RankingTable struct {
	Metric Metric     `json:"metric"`
	Rows   []VMRecord `json:"rows"`
}
