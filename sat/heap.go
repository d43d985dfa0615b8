package sat

// depthHeap is a binary max-heap over trail depths. It gives the
// conflict analyzer O(log n) access to the latest implied variable
// still unresolved in the current conflict: a plain depth-priority
// queue used only during conflict resolution, not a variable-activity
// heap.
type depthHeap struct {
	data []int
}

func (h *depthHeap) reset() {
	h.data = h.data[:0]
}

func (h *depthHeap) empty() bool {
	return len(h.data) == 0
}

func (h *depthHeap) push(depth int) {
	h.data = append(h.data, depth)
	h.percolateUp(len(h.data) - 1)
}

// popMax removes and returns the greatest depth currently held.
func (h *depthHeap) popMax() (int, bool) {
	if h.empty() {
		return 0, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.percolateDown(0)
	}
	return top, true
}

func (h *depthHeap) percolateUp(i int) {
	x := h.data[i]
	for i != 0 {
		p := parentIndex(i)
		if h.data[p] >= x {
			break
		}
		h.data[i] = h.data[p]
		i = p
	}
	h.data[i] = x
}

func (h *depthHeap) percolateDown(i int) {
	n := len(h.data)
	for {
		l, r := leftIndex(i), rightIndex(i)
		largest := i
		if l < n && h.data[l] > h.data[largest] {
			largest = l
		}
		if r < n && h.data[r] > h.data[largest] {
			largest = r
		}
		if largest == i {
			break
		}
		h.data[i], h.data[largest] = h.data[largest], h.data[i]
		i = largest
	}
}

func leftIndex(i int) int   { return 2*i + 1 }
func rightIndex(i int) int  { return 2*i + 2 }
func parentIndex(i int) int { return (i - 1) / 2 }
