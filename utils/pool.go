package utils

import (
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
)

var boxListPool = sync.Pool{
	New: func() any {
		s := make([]cube.BBox, 0, 32)
		return &s
	},
}

// GetBBoxList returns an empty box slice from the pool. It must be handed back with PutBBoxList once the
// caller is done with it.
func GetBBoxList() *[]cube.BBox {
	list := boxListPool.Get().(*[]cube.BBox)
	*list = (*list)[:0]
	return list
}

// PutBBoxList returns a box slice to the pool.
func PutBBoxList(list *[]cube.BBox) {
	if list != nil {
		*list = (*list)[:0]
		boxListPool.Put(list)
	}
}
