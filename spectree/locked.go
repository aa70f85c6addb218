package spectree

import "sync"

// Locked is a Tree protected by a single mutex, for sharing one multiset
// between goroutines. Every operation holds the lock for its whole duration.
type Locked struct {
	mu   *sync.Mutex
	tree *Tree
}

func NewLocked() *Locked {
	return &Locked{mu: new(sync.Mutex), tree: New()}
}

func (l *Locked) Insert(energy float64) {
	l.mu.Lock()
	l.tree.Insert(energy)
	l.mu.Unlock()
}

func (l *Locked) Inorder() []Entry {
	l.mu.Lock()
	entries := l.tree.Inorder()
	l.mu.Unlock()
	return entries
}

func (l *Locked) RangeQuery(low, high float64) uint64 {
	l.mu.Lock()
	n := l.tree.RangeQuery(low, high)
	l.mu.Unlock()
	return n
}

func (l *Locked) Len() uint64 {
	l.mu.Lock()
	n := l.tree.Len()
	l.mu.Unlock()
	return n
}
