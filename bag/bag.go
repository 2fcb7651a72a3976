package bag

// Token identifies a single insertion. Tokens are unique per Bag and never
// reused.
type Token uint64

type entry[V any] struct {
	token   Token
	value   V
	deleted bool
}

// Bag is an insertion-ordered token registry. The zero value is not usable;
// use New.
type Bag[V any] struct {
	next    Token
	entries []entry[V]
	index   map[Token]int
	dead    int
}

// New creates an empty Bag.
func New[V any]() *Bag[V] {
	return &Bag[V]{index: make(map[Token]int)}
}

// Insert registers v and returns the token that removes it.
func (b *Bag[V]) Insert(v V) Token {
	tok := b.next
	b.next++
	b.index[tok] = len(b.entries)
	b.entries = append(b.entries, entry[V]{token: tok, value: v})
	return tok
}

// Remove deletes the entry inserted under tok. Removing an absent token is
// a no-op. Entries are tombstoned and compacted once they outnumber live
// ones, which keeps removal O(1) amortized without disturbing insertion
// order.
func (b *Bag[V]) Remove(tok Token) {
	i, ok := b.index[tok]
	if !ok {
		return
	}
	var zero V
	b.entries[i].deleted = true
	b.entries[i].value = zero
	delete(b.index, tok)
	b.dead++
	if b.dead > len(b.entries)-b.dead {
		b.compact()
	}
}

// Len returns the number of live entries.
func (b *Bag[V]) Len() int { return len(b.entries) - b.dead }

// Snapshot returns the live values in insertion order. The returned slice
// is owned by the caller and unaffected by later mutation.
func (b *Bag[V]) Snapshot() []V {
	if b.Len() == 0 {
		return nil
	}
	out := make([]V, 0, b.Len())
	for _, e := range b.entries {
		if !e.deleted {
			out = append(out, e.value)
		}
	}
	return out
}

// Clear removes every entry.
func (b *Bag[V]) Clear() {
	b.entries = nil
	b.index = make(map[Token]int)
	b.dead = 0
}

func (b *Bag[V]) compact() {
	live := b.entries[:0]
	for _, e := range b.entries {
		if !e.deleted {
			b.index[e.token] = len(live)
			live = append(live, e)
		}
	}
	// Zero the tail so dropped values do not linger.
	for i := len(live); i < len(b.entries); i++ {
		b.entries[i] = entry[V]{}
	}
	b.entries = live
	b.dead = 0
}
