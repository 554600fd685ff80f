package regions

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dgraph-io/badger/v4"
	"github.com/uber/h3-go/v4"
	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/concurrent"
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

var (
	ErrRecordNotFound      = errors.New("regions record not found")
	ErrTransitionsNotFound = errors.New("no transitions near point")
)

const (
	batchSize      = 1000
	maxRingLevel   = 10
	cellKeyPrefix  = "cell/"
	saveBatchJobs  = 4
	searchRadiusKm = 1.0
)

// KVDB stores regions records in badger. the h3 cells of both ends of every record are indexed
// for nearest transition lookups.
type KVDB struct {
	db         *badger.DB
	resolution int
	logger     *zap.Logger
}

func NewKVDB(db *badger.DB, resolution int, logger *zap.Logger) *KVDB {
	return &KVDB{db: db, resolution: resolution, logger: logger}
}

// OpenKVDB opens badger at dir, or in memory when inMemory is set.
func OpenKVDB(dir string, inMemory bool, resolution int, logger *zap.Logger) (*KVDB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open regions db %s: %w", dir, err)
	}
	return NewKVDB(db, resolution, logger), nil
}

func (k *KVDB) cellOf(lat, lon float64) h3.Cell {
	return h3.LatLngToCell(h3.NewLatLng(lat, lon), k.resolution)
}

// SaveRecords writes records and the cell index in batches, several batches in parallel.
func (k *KVDB) SaveRecords(ctx context.Context, records []SegmentRecord) error {
	k.logger.Info("saving regions records", zap.Int("records", len(records)))

	cells := make(map[string][]segmentKey)
	var items []concurrent.SaveCellJobItem
	for _, r := range records {
		select {
		case <-ctx.Done():
			return fmt.Errorf("save regions records: %w", ctx.Err())
		default:
		}
		val, err := encodeRecord(r)
		if err != nil {
			return fmt.Errorf("encode record %s: %w", r.Segment, err)
		}
		items = append(items, concurrent.SaveCellJobItem{KeyStr: r.Segment.String(), Val: val})

		// both ends, so a point near a border finds the two directions of every crossing.
		back, front := k.cellOf(r.FromLat, r.FromLon), k.cellOf(r.ToLat, r.ToLon)
		cells[cellKeyPrefix+front.String()] = append(cells[cellKeyPrefix+front.String()], r.Segment)
		if back != front {
			cells[cellKeyPrefix+back.String()] = append(cells[cellKeyPrefix+back.String()], r.Segment)
		}
	}
	for cell, keys := range cells {
		val, err := encodeKeys(keys)
		if err != nil {
			return fmt.Errorf("encode cell %s: %w", cell, err)
		}
		items = append(items, concurrent.SaveCellJobItem{KeyStr: cell, Val: val})
	}

	var batches [][]concurrent.SaveCellJobItem
	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}

	workers := concurrent.NewWorkerPool[concurrent.SaveBatchJobItem, error](saveBatchJobs, len(batches))
	for _, batch := range batches {
		workers.AddJob(concurrent.SaveBatchJobItem{Items: batch})
	}
	workers.Close()
	workers.Start(func(job concurrent.SaveBatchJobItem) error {
		return k.saveBatch(ctx, job.Items)
	})
	workers.Wait()

	for err := range workers.CollectResults() {
		if err != nil {
			return err
		}
	}
	k.logger.Info("saving regions records done", zap.Int("batches", len(batches)))
	return nil
}

func (k *KVDB) saveBatch(ctx context.Context, items []concurrent.SaveCellJobItem) error {
	batch := k.db.NewWriteBatch()
	defer batch.Cancel()

	for _, item := range items {
		select {
		case <-ctx.Done():
			return fmt.Errorf("save regions batch: %w", ctx.Err())
		default:
		}
		if err := batch.Set([]byte(item.KeyStr), item.Val); err != nil {
			return err
		}
	}
	if err := batch.Flush(); err != nil {
		return fmt.Errorf("flush regions batch: %w", err)
	}
	return nil
}

func (k *KVDB) get(key []byte) ([]byte, error) {
	var val []byte
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	return val, err
}

func (k *KVDB) GetRecord(segment datastructure.Segment) (SegmentRecord, error) {
	key := toKey(segment)
	val, err := k.get([]byte(key.String()))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return SegmentRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, segment)
	}
	if err != nil {
		return SegmentRecord{}, err
	}
	return decodeRecord(val)
}

func (k *KVDB) getCell(cell h3.Cell) ([]segmentKey, error) {
	val, err := k.get([]byte(cellKeyPrefix + cell.String()))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeKeys(val)
}

// GetNearestTransitions returns the transitions of the cell of point, widening the ring of cells
// until something is found.
func (k *KVDB) GetNearestTransitions(point datastructure.Coordinate) ([]datastructure.Segment, error) {
	cell := k.cellOf(point.Lat, point.Lon)

	var keys []segmentKey
	seen := make(map[h3.Cell]struct{})
	for _, c := range kRingIndexesArea(cell, searchRadiusKm) {
		seen[c] = struct{}{}
		found, err := k.getCell(c)
		if err != nil {
			return nil, err
		}
		keys = append(keys, found...)
	}

	for lev := 1; lev <= maxRingLevel && len(keys) == 0; lev++ {
		for _, c := range h3.GridDisk(cell, lev) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			found, err := k.getCell(c)
			if err != nil {
				return nil, err
			}
			keys = append(keys, found...)
		}
	}

	if len(keys) == 0 {
		return nil, ErrTransitionsNotFound
	}
	segments := make([]datastructure.Segment, 0, len(keys))
	for _, key := range keys {
		segments = append(segments, key.toSegment())
	}
	return segments, nil
}

// kRingIndexesArea returns the disk of cells around origin covering a circle of searchRadiusKm.
func kRingIndexesArea(origin h3.Cell, searchRadiusKm float64) []h3.Cell {
	originArea := h3.CellAreaKm2(origin)
	searchArea := math.Pi * searchRadiusKm * searchRadiusKm

	radius := 0
	diskArea := originArea
	for diskArea < searchArea {
		radius++
		cellCount := float64(3*radius*(radius+1) + 1)
		diskArea = cellCount * originArea
	}
	return h3.GridDisk(origin, radius)
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
