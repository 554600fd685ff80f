package concurrent

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

// BuildConnectorParam asks for the cross-mwm connector of one mwm.
type BuildConnectorParam struct {
	MwmID datastructure.NumMwmID
}

func NewBuildConnectorParam(mwmID datastructure.NumMwmID) BuildConnectorParam {
	return BuildConnectorParam{MwmID: mwmID}
}

// SaveCellJobItem is an encoded batch of records stored under one key.
type SaveCellJobItem struct {
	KeyStr string
	Val    []byte
}

// SaveBatchJobItem is written in one storage batch.
type SaveBatchJobItem struct {
	Items []SaveCellJobItem
}

type JobI interface {
	BuildConnectorParam | SaveCellJobItem | SaveBatchJobItem
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}

type JobFunc[T JobI, G any] func(job T) G
