// Package archive persists reconciled observatory data to TimescaleDB so
// reads can be replayed without the wave server.
package archive

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/j143/geomag-algorithms/internal/ports"
	"github.com/j143/geomag-algorithms/internal/timeseries"
)

// Postgres caps bind parameters per statement, so second-rate days are
// written in slices.
const maxRowsPerInsert = 5000

type TimescaleArchive struct {
	db        *sql.DB
	tableName string
}

func NewTimescaleArchive(db *sql.DB, table string) *TimescaleArchive {
	return &TimescaleArchive{db: db, tableName: table}
}

func (a *TimescaleArchive) Name() string { return "timescaledb" }

// WriteStream stores every present sample of the stream. Missing samples
// are not stored; a replayed read pads them back as gaps.
func (a *TimescaleArchive) WriteStream(st timeseries.Stream) error {
	for _, tr := range st {
		if err := a.writeTrace(tr); err != nil {
			return fmt.Errorf("archive %s: %w", tr.Stats.ID(), err)
		}
	}
	return nil
}

type row struct {
	ts    time.Time
	value float64
}

func (a *TimescaleArchive) writeTrace(tr *timeseries.Trace) error {
	rows := make([]row, 0, tr.Npts())
	for i, v := range tr.Data {
		if tr.Mask != nil && tr.Mask[i] {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rows = append(rows, row{
			ts:    tr.Stats.Start.Add(time.Duration(i) * tr.Stats.Delta),
			value: v,
		})
	}

	for len(rows) > 0 {
		n := len(rows)
		if n > maxRowsPerInsert {
			n = maxRowsPerInsert
		}
		if err := a.insertRows(tr.Stats, rows[:n]); err != nil {
			return err
		}
		rows = rows[n:]
	}
	return nil
}

func (a *TimescaleArchive) insertRows(stats timeseries.Stats, rows []row) error {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(a.tableName)
	b.WriteString(" (observatory, channel, ts, value, data_type, data_interval) VALUES ")

	args := make([]any, 0, len(rows)*6)
	for i, r := range rows {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d)",
			len(args)+1, len(args)+2, len(args)+3, len(args)+4, len(args)+5, len(args)+6))
		args = append(args,
			stats.Station,
			stats.Channel,
			r.ts,
			r.value,
			stats.DataType,
			stats.DataInterval,
		)
	}

	b.WriteString(" ON CONFLICT (observatory, channel, ts) DO NOTHING")

	_, err := a.db.Exec(b.String(), args...)
	return err
}

var _ ports.Archive = (*TimescaleArchive)(nil)
