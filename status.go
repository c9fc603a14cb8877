package sweep

import (
	"fmt"
	"strings"

	rb "github.com/glycerine/rbtree"
)

// OrderedActiveSet is a self-balancing ordered map over the active segments,
// keyed by the status comparator. Insert, Remove, Find and neighbor lookups
// are O(log n).
type OrderedActiveSet interface {
	Insert(seg *ActiveSegment)
	Remove(seg *ActiveSegment) bool
	Find(key *ActiveSegment) *ActiveSegment
	Prev(seg *ActiveSegment) *ActiveSegment
	Next(seg *ActiveSegment) *ActiveSegment
	Len() int
}

// treeSet implements OrderedActiveSet on a red-black tree.
type treeSet struct {
	tree *rb.Tree
}

func newTreeSet(compare func(a, b *ActiveSegment) int) *treeSet {
	return &treeSet{
		tree: rb.NewTree(func(a, b rb.Item) int {
			return compare(a.(*ActiveSegment), b.(*ActiveSegment))
		}),
	}
}

func (s *treeSet) Insert(seg *ActiveSegment) {
	s.tree.InsertGetIt(seg)
}

func (s *treeSet) Remove(seg *ActiveSegment) bool {
	it, found := s.tree.FindGE_isEqual(seg)
	if !found {
		return false
	}
	s.tree.DeleteWithIterator(it)
	return true
}

func (s *treeSet) Find(key *ActiveSegment) *ActiveSegment {
	it, found := s.tree.FindGE_isEqual(key)
	if !found {
		return nil
	}
	return it.Item().(*ActiveSegment)
}

func (s *treeSet) Prev(seg *ActiveSegment) *ActiveSegment {
	it, found := s.tree.FindGE_isEqual(seg)
	if !found {
		return nil
	}
	if it = it.Prev(); it.NegativeLimit() {
		return nil
	}
	return it.Item().(*ActiveSegment)
}

func (s *treeSet) Next(seg *ActiveSegment) *ActiveSegment {
	it, found := s.tree.FindGE_isEqual(seg)
	if !found {
		return nil
	}
	if it = it.Next(); it.Limit() {
		return nil
	}
	return it.Item().(*ActiveSegment)
}

func (s *treeSet) Len() int {
	return s.tree.Len()
}

func (s *treeSet) String() string {
	sb := strings.Builder{}
	for it := s.tree.Min(); !it.Limit(); it = it.Next() {
		if 0 < sb.Len() {
			sb.WriteString(" < ")
		}
		fmt.Fprintf(&sb, "%v", it.Item().(*ActiveSegment).Segment)
	}
	return sb.String()
}
