package datastructure

import (
	"fmt"
	"math"
)

// NumMwmID is a dense index of a map tile (mwm).
type NumMwmID uint16

const (
	// FakeNumMwmID marks segments created per request by the fake graph.
	FakeNumMwmID NumMwmID = math.MaxUint16
	// GuidesNumMwmID marks segments of user tracks (guides).
	GuidesNumMwmID NumMwmID = FakeNumMwmID - 1

	FakeFeatureID uint32 = math.MaxUint32 - 1
)

/*
Segment. directed piece of a road feature between two consecutive road points.

forward segment with index i goes from point i to point i+1 of the feature,
backward segment with the same index goes from point i+1 to point i.
*/
type Segment struct {
	MwmID      NumMwmID `json:"mwm_id"`
	FeatureID  uint32   `json:"feature_id"`
	SegmentIdx uint32   `json:"segment_idx"`
	Forward    bool     `json:"forward"`
}

func NewSegment(mwmID NumMwmID, featureID, segmentIdx uint32, forward bool) Segment {
	return Segment{
		MwmID:      mwmID,
		FeatureID:  featureID,
		SegmentIdx: segmentIdx,
		Forward:    forward,
	}
}

func NewFakeSegment(id uint32) Segment {
	return NewSegment(FakeNumMwmID, FakeFeatureID, id, false)
}

func (s Segment) GetReversed() Segment {
	return NewSegment(s.MwmID, s.FeatureID, s.SegmentIdx, !s.Forward)
}

func (s Segment) IsFakeCreated() bool {
	return s.MwmID == FakeNumMwmID
}

func (s Segment) IsRealSegment() bool {
	return s.MwmID != FakeNumMwmID && s.MwmID != GuidesNumMwmID
}

func (s Segment) IsGuides() bool {
	return s.MwmID == GuidesNumMwmID
}

// Compare orders by (mwm, feature, segment index, direction).
func (s Segment) Compare(o Segment) int {
	switch {
	case s.MwmID != o.MwmID:
		return cmpOrdered(s.MwmID, o.MwmID)
	case s.FeatureID != o.FeatureID:
		return cmpOrdered(s.FeatureID, o.FeatureID)
	case s.SegmentIdx != o.SegmentIdx:
		return cmpOrdered(s.SegmentIdx, o.SegmentIdx)
	case s.Forward == o.Forward:
		return 0
	case !s.Forward:
		return -1
	default:
		return 1
	}
}

func (s Segment) Less(o Segment) bool {
	return s.Compare(o) < 0
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(mwm=%d, fid=%d, idx=%d, fwd=%t)", s.MwmID, s.FeatureID, s.SegmentIdx, s.Forward)
}

func cmpOrdered[T NumMwmID | uint32](a, b T) int {
	if a < b {
		return -1
	}
	return 1
}
