package ui

import "sync/atomic"

// WidgetID identifies a widget for the lifetime of the process.
type WidgetID uint32

// IDAllocator hands out strictly increasing widget ids.
// It is safe for concurrent use.
type IDAllocator struct {
	next atomic.Uint32
}

// DefaultIDs is the process-wide allocator used when a constructor is given nil.
var DefaultIDs = NewIDAllocator()

// NewIDAllocator returns an allocator whose first id is 0.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// NewIDAllocatorAt returns an allocator whose first id is start.
func NewIDAllocatorAt(start WidgetID) *IDAllocator {
	a := &IDAllocator{}
	a.next.Store(uint32(start))
	return a
}

// Next returns a fresh id. Wraparound of the 32-bit counter is not handled.
func (a *IDAllocator) Next() WidgetID {
	return WidgetID(a.next.Add(1) - 1)
}

func allocate(ids *IDAllocator) WidgetID {
	if ids == nil {
		ids = DefaultIDs
	}
	return ids.Next()
}
