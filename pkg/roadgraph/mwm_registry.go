package roadgraph

import (
	"fmt"
	"sync"

	"github.com/uber/h3-go/v4"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

/*
MwmRegistry. tiles the world into mwms, one mwm per h3 cell of the tile resolution.

the parent cell at the country resolution stands for the country: two mwms with the same
parent are in the same country.
*/
type MwmRegistry struct {
	mu                sync.RWMutex
	resolution        int
	countryResolution int
	cellToMwm         map[h3.Cell]datastructure.NumMwmID
	mwmToCell         []h3.Cell
}

func NewMwmRegistry(resolution, countryResolution int) *MwmRegistry {
	return &MwmRegistry{
		resolution:        resolution,
		countryResolution: countryResolution,
		cellToMwm:         make(map[h3.Cell]datastructure.NumMwmID),
	}
}

func (m *MwmRegistry) CellOf(point datastructure.Coordinate) h3.Cell {
	return h3.LatLngToCell(h3.NewLatLng(point.Lat, point.Lon), m.resolution)
}

// GetOrCreateMwm returns the mwm of cell, registering it on first use.
func (m *MwmRegistry) GetOrCreateMwm(cell h3.Cell) datastructure.NumMwmID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.cellToMwm[cell]; ok {
		return id
	}
	id := datastructure.NumMwmID(len(m.mwmToCell))
	if id >= datastructure.GuidesNumMwmID {
		panic(fmt.Sprintf("too many mwms: %d", len(m.mwmToCell)))
	}
	m.cellToMwm[cell] = id
	m.mwmToCell = append(m.mwmToCell, cell)
	return id
}

// MwmOf returns the mwm covering point. false if no road was ever added there.
func (m *MwmRegistry) MwmOf(point datastructure.Coordinate) (datastructure.NumMwmID, bool) {
	cell := m.CellOf(point)
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.cellToMwm[cell]
	return id, ok
}

func (m *MwmRegistry) GetCell(mwmID datastructure.NumMwmID) (h3.Cell, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(mwmID) >= len(m.mwmToCell) {
		return 0, false
	}
	return m.mwmToCell[mwmID], true
}

func (m *MwmRegistry) GetMwmName(mwmID datastructure.NumMwmID) string {
	cell, ok := m.GetCell(mwmID)
	if !ok {
		return fmt.Sprintf("unknown-%d", mwmID)
	}
	return cell.String()
}

func (m *MwmRegistry) GetCountryID(mwmID datastructure.NumMwmID) (uint64, bool) {
	cell, ok := m.GetCell(mwmID)
	if !ok {
		return 0, false
	}
	return uint64(cell.Parent(m.countryResolution)), true
}

// AreMwmsNear reports whether the cells of a and b touch.
func (m *MwmRegistry) AreMwmsNear(a, b datastructure.NumMwmID) bool {
	if a == b {
		return true
	}
	cellA, ok := m.GetCell(a)
	if !ok {
		return false
	}
	cellB, ok := m.GetCell(b)
	if !ok {
		return false
	}
	for _, c := range h3.GridDisk(cellA, 1) {
		if c == cellB {
			return true
		}
	}
	return false
}

func (m *MwmRegistry) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.mwmToCell)
}

func (m *MwmRegistry) GetResolution() int {
	return m.resolution
}
