package entity

// List is an insertion-ordered collection that exclusively owns its entities.
// Dropping an entity from the list releases its body.
type List struct {
	items  []Entity
	nextID EntityID
}

// NewList returns an empty list
func NewList() *List {
	return &List{}
}

// Add appends e and assigns it the next ID. The list takes ownership.
func (l *List) Add(e Entity) EntityID {
	l.nextID++
	e.setID(l.nextID)
	l.items = append(l.items, e)
	return l.nextID
}

// Len returns the number of entities
func (l *List) Len() int {
	return len(l.items)
}

// At returns the i-th entity in insertion order
func (l *List) At(i int) Entity {
	return l.items[i]
}

// Each calls fn for every entity in insertion order
func (l *List) Each(fn func(Entity)) {
	for _, e := range l.items {
		fn(e)
	}
}

// Kinds returns the kind of every entity in insertion order
func (l *List) Kinds() []Kind {
	kinds := make([]Kind, len(l.items))
	for i, e := range l.items {
		kinds[i] = e.Kind()
	}
	return kinds
}

// Clear releases and drops every entity
func (l *List) Clear() {
	for _, e := range l.items {
		e.Release()
	}
	clear(l.items)
	l.items = l.items[:0]
}

// RemoveInactive drops entities whose Active flag is false, keeping the
// relative order of the survivors. It returns the number removed.
func (l *List) RemoveInactive() int {
	kept := l.items[:0]
	removed := 0
	for _, e := range l.items {
		if e.Active() {
			kept = append(kept, e)
			continue
		}
		e.Release()
		removed++
	}
	clear(l.items[len(kept):])
	l.items = kept
	return removed
}
