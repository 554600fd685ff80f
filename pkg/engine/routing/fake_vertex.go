package routing

import (
	"fmt"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

type FakeVertexType uint8

const (
	// PureFake has no real world counterpart, e.g. the stub at a route point.
	PureFake FakeVertexType = iota
	// PartOfReal covers a piece of exactly one real segment.
	PartOfReal
)

func (t FakeVertexType) String() string {
	if t == PartOfReal {
		return "PartOfReal"
	}
	return "PureFake"
}

// FakeVertex is comparable so it can be used as a map key for reverse lookups.
type FakeVertex struct {
	MwmID datastructure.NumMwmID           `json:"mwm_id"`
	From  datastructure.LatLonWithAltitude `json:"from"`
	To    datastructure.LatLonWithAltitude `json:"to"`
	Type  FakeVertexType                   `json:"type"`
}

func NewFakeVertex(mwmID datastructure.NumMwmID, from, to datastructure.LatLonWithAltitude, vertexType FakeVertexType) FakeVertex {
	return FakeVertex{
		MwmID: mwmID,
		From:  from,
		To:    to,
		Type:  vertexType,
	}
}

func (v FakeVertex) GetJunctionFrom() datastructure.LatLonWithAltitude {
	return v.From
}

func (v FakeVertex) GetJunctionTo() datastructure.LatLonWithAltitude {
	return v.To
}

func (v FakeVertex) GetPointFrom() datastructure.Coordinate {
	return v.From.GetLatLon()
}

func (v FakeVertex) GetPointTo() datastructure.Coordinate {
	return v.To.GetLatLon()
}

func (v FakeVertex) GetMwmID() datastructure.NumMwmID {
	return v.MwmID
}

func (v FakeVertex) GetType() FakeVertexType {
	return v.Type
}

func (v FakeVertex) String() string {
	return fmt.Sprintf("FakeVertex(mwm=%d, from=(%f, %f), to=(%f, %f), %s)", v.MwmID,
		v.From.Lat, v.From.Lon, v.To.Lat, v.To.Lon, v.Type)
}
