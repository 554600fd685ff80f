package crossmwm

import (
	"fmt"

	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

type segmentRecord struct {
	MwmID      uint16
	FeatureID  uint32
	SegmentIdx uint32
	Forward    bool
}

func toSegmentRecord(s datastructure.Segment) segmentRecord {
	return segmentRecord{MwmID: uint16(s.MwmID), FeatureID: s.FeatureID, SegmentIdx: s.SegmentIdx, Forward: s.Forward}
}

func (r segmentRecord) toSegment() datastructure.Segment {
	return datastructure.NewSegment(datastructure.NumMwmID(r.MwmID), r.FeatureID, r.SegmentIdx, r.Forward)
}

type twinRecord struct {
	Transition segmentRecord
	Twin       segmentRecord
	IsExit     bool
}

type weightRecord struct {
	Enter             segmentRecord
	Exit              segmentRecord
	Weight            float64
	PassThrough       int8
	Access            int8
	AccessConditional int8
	TransitTime       float64
}

type connectorRecord struct {
	MwmID   uint16
	Twins   []twinRecord
	Weights []weightRecord
}

func toRecord(c *Connector) connectorRecord {
	rec := connectorRecord{MwmID: uint16(c.MwmID)}
	for _, exit := range c.GetExits() {
		for _, twin := range c.twinsOut[exit] {
			rec.Twins = append(rec.Twins, twinRecord{Transition: toSegmentRecord(exit), Twin: toSegmentRecord(twin), IsExit: true})
		}
	}
	for _, enter := range c.GetEnters() {
		for _, twin := range c.twinsIn[enter] {
			rec.Twins = append(rec.Twins, twinRecord{Transition: toSegmentRecord(enter), Twin: toSegmentRecord(twin)})
		}
		for _, edge := range c.GetOutgoingEdgeList(enter) {
			w := edge.Weight
			rec.Weights = append(rec.Weights, weightRecord{
				Enter:             toSegmentRecord(enter),
				Exit:              toSegmentRecord(edge.Target),
				Weight:            w.Weight,
				PassThrough:       w.NumPassThroughChanges,
				Access:            w.NumAccessChanges,
				AccessConditional: w.NumAccessConditionalPenalties,
				TransitTime:       w.TransitTime,
			})
		}
	}
	return rec
}

func fromRecord(rec connectorRecord) *Connector {
	c := NewConnector(datastructure.NumMwmID(rec.MwmID))
	for _, t := range rec.Twins {
		if t.IsExit {
			c.AddExit(t.Transition.toSegment(), t.Twin.toSegment())
		} else {
			c.AddEnter(t.Transition.toSegment(), t.Twin.toSegment())
		}
	}
	for _, w := range rec.Weights {
		c.SetWeight(w.Enter.toSegment(), w.Exit.toSegment(),
			datastructure.NewRouteWeightFull(w.Weight, w.PassThrough, w.Access, w.AccessConditional, w.TransitTime))
	}
	return c
}

// EncodeConnector serializes c with kelindar/binary and compresses it with zstd.
func EncodeConnector(c *Connector) ([]byte, error) {
	bb, err := binary.Marshal(toRecord(c))
	if err != nil {
		return nil, fmt.Errorf("marshal connector %d: %w", c.MwmID, err)
	}
	compressed, err := zstd.Compress(nil, bb)
	if err != nil {
		return nil, fmt.Errorf("compress connector %d: %w", c.MwmID, err)
	}
	return compressed, nil
}

func DecodeConnector(compressed []byte) (*Connector, error) {
	bb, err := zstd.Decompress(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress connector: %w", err)
	}
	var rec connectorRecord
	if err := binary.Unmarshal(bb, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal connector: %w", err)
	}
	return fromRecord(rec), nil
}
