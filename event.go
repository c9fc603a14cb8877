package sweep

import (
	"fmt"
	"io"
	"strings"
)

// EventKind is the type of a sweep event. The order of the constants is
// significant: at equal vertices left-endpoint events sort before
// intersection events, which sort before right-endpoint events, so that
// starting segments are inserted before crossings at the same point are
// resolved, and ending segments are removed after.
type EventKind int

const (
	LeftEvent EventKind = iota
	IntersectionEvent
	RightEvent
)

func (kind EventKind) String() string {
	switch kind {
	case LeftEvent:
		return "Left"
	case IntersectionEvent:
		return "Intersection"
	case RightEvent:
		return "Right"
	}
	return "Unknown"
}

// Event is a sweep event: the left or right endpoint of an edge, or a
// candidate crossing between two currently-adjacent active segments.
type Event struct {
	Kind   EventKind
	Vertex Point

	// endpoint events
	Edge int

	// intersection events
	Below *ActiveSegment
	Above *ActiveSegment
	Close bool // crossing coincides with a segment endpoint
}

func (e *Event) String() string {
	if e.Kind == IntersectionEvent {
		return fmt.Sprintf("%v%v{E%d,E%d}", e.Kind, e.Vertex, e.Below.Edge, e.Above.Edge)
	}
	return fmt.Sprintf("%v%v{E%d}", e.Kind, e.Vertex, e.Edge)
}

// CompareQ orders events in the queue: by vertex in horizontal order, then by
// kind (Left < Intersection < Right). Endpoint events at the same vertex and
// of the same kind are ordered by edge. Intersection events at the same
// vertex are ordered by their below and above edges and then by Close, for
// determinism only.
func (e *Event) CompareQ(f *Event) int {
	if cmp := e.Vertex.CompareH(f.Vertex); cmp != 0 {
		return cmp
	} else if e.Kind != f.Kind {
		if e.Kind < f.Kind {
			return -1
		}
		return 1
	} else if e.Kind == IntersectionEvent {
		if e.Below.Edge != f.Below.Edge {
			if e.Below.Edge < f.Below.Edge {
				return -1
			}
			return 1
		} else if e.Above.Edge != f.Above.Edge {
			if e.Above.Edge < f.Above.Edge {
				return -1
			}
			return 1
		} else if e.Close != f.Close {
			if !e.Close {
				return -1
			}
			return 1
		}
		return 0
	} else if e.Edge != f.Edge {
		if e.Edge < f.Edge {
			return -1
		}
		return 1
	}
	return 0
}

// LessQ returns true if e sorts strictly before f in the queue.
func (e *Event) LessQ(f *Event) bool {
	return e.CompareQ(f) < 0
}

// EventQueue is a heap priority queue of sweep events. It is built once from
// the input sequences; afterwards it is mutated only by pushing newly
// discovered intersection candidates.
type EventQueue []*Event

func (q EventQueue) Less(i, j int) bool {
	return q[i].LessQ(q[j])
}

func (q EventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

// NewEventQueue builds the initial queue over the given segments, with a left
// and a right endpoint event per segment.
func NewEventQueue(segs []Segment) EventQueue {
	q := make(EventQueue, 0, 2*len(segs))
	for i := range segs {
		q = append(q,
			&Event{Kind: LeftEvent, Vertex: segs[i].Left, Edge: segs[i].Edge},
			&Event{Kind: RightEvent, Vertex: segs[i].Right, Edge: segs[i].Edge},
		)
	}
	q.Init()
	return q
}

// Init establishes the heap ordering over the current events.
func (q EventQueue) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

// Push adds a newly discovered intersection candidate to the queue.
func (q *EventQueue) Push(item *Event) {
	*q = append(*q, item)
	q.up(len(*q) - 1)
}

// Pop removes and returns the minimum event, or false when the queue is
// empty.
func (q *EventQueue) Pop() (*Event, bool) {
	if len(*q) == 0 {
		return nil, false
	}
	n := len(*q) - 1
	q.Swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	*q = (*q)[:n]
	return item, true
}

// from container/heap
func (q EventQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		j = i
	}
}

func (q EventQueue) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		i = j
	}
}

func (q EventQueue) Print(w io.Writer) {
	q2 := make(EventQueue, len(q))
	copy(q2, q)
	q = q2

	n := len(q) - 1
	for 0 < n {
		q.Swap(0, n)
		q.down(0, n)
		n--
	}
	for k := len(q) - 1; 0 <= k; k-- {
		fmt.Fprintln(w, len(q)-1-k, q[k])
	}
}

func (q EventQueue) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
