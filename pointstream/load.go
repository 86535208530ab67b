package pointstream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/boxtree"
)

// Some defaults for stream ingestion
const (
	defaultBatchSize = 1024
)

// Record is one box read from a stream. Records are loaded as pointers,
// so tree operations compare them by identity.
type Record struct {
	Min []float64
	Max []float64
}

// Geom derives boxes from records; it implements boxtree.Geometry for
// *Record.
type Geom struct{}

// BBox returns the record's bounding box.
func (Geom) BBox(r *Record) boxtree.BBox {
	return boxtree.NewBBox(r.Min, r.Max)
}

// CompareMin orders records by their lower bound on an axis.
func (Geom) CompareMin(axis int, a, b *Record) float64 {
	return a.Min[axis] - b.Min[axis]
}

// Progress is broadcast to subscribers after every loaded batch.
type Progress struct {
	Records int  // records loaded so far
	Done    bool // stream fully consumed
}

// A Loader ingests box records from a stream into a boxtree. Loaders are
// single-use: create one per stream.
type Loader struct {
	dim   int
	batch int
	cast  *caster.Caster // broadcaster for ingestion progress
}

// NewLoader creates a loader for records of the given dimension.
// A batchSize of 0 selects a sensible default.
func NewLoader(dim int, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Loader{
		dim:   dim,
		batch: batchSize,
		cast:  caster.New(nil), // we will broadcast messages when batches are loaded
	}
}

// Subscribe returns a channel of Progress messages and a cancel function.
// Subscribers that fall behind miss intermediate messages rather than
// blocking the loader.
func (l *Loader) Subscribe() (<-chan interface{}, func()) {
	ch, _ := l.cast.Sub(nil, 1)
	return ch, func() { l.cast.Unsub(ch) }
}

// Load reads whitespace-separated records from r, one record per line,
// each holding 2·dim numbers (all per-axis minima, then all maxima), and
// bulk-loads them into a fresh tree. Blank lines and lines starting with
// '#' are skipped. Progress is broadcast after every batch; the broadcast
// is closed when the stream ends.
func (l *Loader) Load(r io.Reader) (*boxtree.Tree[*Record], error) {
	defer l.cast.Close()
	tree, err := boxtree.New(boxtree.Config[*Record]{
		Dimension: l.dim,
		Geometry:  Geom{},
	})
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	batch := make([]*Record, 0, l.batch)
	total := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := l.parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		batch = append(batch, rec)
		if len(batch) == cap(batch) {
			tree.Load(batch)
			total += len(batch)
			batch = batch[:0]
			l.cast.TryPub(Progress{Records: total})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error loading box records: %w", err)
	}
	if len(batch) > 0 {
		tree.Load(batch)
		total += len(batch)
	}
	tracer().Debugf("pointstream: loaded %d records", total)
	l.cast.TryPub(Progress{Records: total, Done: true})
	return tree, nil
}

func (l *Loader) parseRecord(line string) (*Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 2*l.dim {
		return nil, fmt.Errorf("record has %d fields, want %d", len(fields), 2*l.dim)
	}
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		values[i] = v
	}
	return &Record{
		Min: values[:l.dim],
		Max: values[l.dim:],
	}, nil
}
