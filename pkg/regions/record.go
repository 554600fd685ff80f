package regions

import (
	"fmt"

	"github.com/kelindar/binary"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

type segmentKey struct {
	MwmID      uint16
	FeatureID  uint32
	SegmentIdx uint32
	Forward    bool
}

func toKey(s datastructure.Segment) segmentKey {
	return segmentKey{MwmID: uint16(s.MwmID), FeatureID: s.FeatureID, SegmentIdx: s.SegmentIdx, Forward: s.Forward}
}

func (k segmentKey) toSegment() datastructure.Segment {
	return datastructure.NewSegment(datastructure.NumMwmID(k.MwmID), k.FeatureID, k.SegmentIdx, k.Forward)
}

func (k segmentKey) String() string {
	return fmt.Sprintf("seg/%05d/%d/%d/%t", k.MwmID, k.FeatureID, k.SegmentIdx, k.Forward)
}

// SegmentRecord is a node of the regions sparse graph: a border crossing segment with its geometry
// and the crossings reachable from it.
type SegmentRecord struct {
	Segment  segmentKey
	FromLat  float64
	FromLon  float64
	ToLat    float64
	ToLon    float64
	Altitude int16
	LengthM  float64
	Outgoing []segmentKey
	Ingoing  []segmentKey
}

func (r SegmentRecord) GetSegment() datastructure.Segment {
	return r.Segment.toSegment()
}

func (r SegmentRecord) GetJunction(front bool) datastructure.LatLonWithAltitude {
	if front {
		return datastructure.NewLatLonWithAltitude(r.ToLat, r.ToLon, r.Altitude)
	}
	return datastructure.NewLatLonWithAltitude(r.FromLat, r.FromLon, r.Altitude)
}

func (r SegmentRecord) GetNeighbours(isOutgoing bool) []datastructure.Segment {
	keys := r.Ingoing
	if isOutgoing {
		keys = r.Outgoing
	}
	res := make([]datastructure.Segment, 0, len(keys))
	for _, k := range keys {
		res = append(res, k.toSegment())
	}
	return res
}

func encodeRecord(r SegmentRecord) ([]byte, error) {
	return binary.Marshal(r)
}

func decodeRecord(bb []byte) (SegmentRecord, error) {
	var r SegmentRecord
	err := binary.Unmarshal(bb, &r)
	return r, err
}

func encodeKeys(keys []segmentKey) ([]byte, error) {
	return binary.Marshal(keys)
}

func decodeKeys(bb []byte) ([]segmentKey, error) {
	var keys []segmentKey
	err := binary.Unmarshal(bb, &keys)
	return keys, err
}
