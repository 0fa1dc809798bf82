package drill

import (
	"fmt"
	"sort"
)

// Table maps a kana (or any short glyph token) to its accepted answers, in file order.
type Table map[string][]string

// Pool holds the full vocabulary and the keys still unanswered in the current pass.
// A Pool is owned by a single caller and is not safe for concurrent use.
type Pool struct {
	table Table
	keys  []string

	// working set: members in work, position of each member in index.
	work  []string
	index map[string]int

	loops int
	rng   Rand
}

// NewPool builds a pool over a copy of table. Every key must map to at least one answer,
// and the table must not be empty for Draw to succeed.
func NewPool(table Table, rng Rand) *Pool {
	if rng == nil {
		rng = NewRand()
	}
	p := &Pool{
		table: make(Table, len(table)),
		keys:  make([]string, 0, len(table)),
		rng:   rng,
	}
	for k, answers := range table {
		p.table[k] = append([]string(nil), answers...)
		p.keys = append(p.keys, k)
	}
	sort.Strings(p.keys)
	p.refill()
	return p
}

// Merge returns a new pool over the union of both tables. On a key present in both,
// other's answers win. The merged pool starts a fresh pass with its own time-seeded
// Rand; p and other are untouched.
func (p *Pool) Merge(other *Pool) *Pool {
	return p.MergeWith(other, nil)
}

// MergeWith is Merge drawing from rng. A nil rng gets a time-seeded source.
func (p *Pool) MergeWith(other *Pool, rng Rand) *Pool {
	union := make(Table, len(p.table)+len(other.table))
	for k, v := range p.table {
		union[k] = v
	}
	for k, v := range other.table {
		union[k] = v
	}
	return NewPool(union, rng)
}

// Draw picks a key uniformly from the working set. Drawing never removes the key.
func (p *Pool) Draw() string {
	p.ensureNotEmpty()
	return p.work[p.rng.Intn(len(p.work))]
}

// Answers returns a copy of the accepted answers for key. It panics when key was never
// loaded into the pool: callers only pass keys obtained from Draw.
func (p *Pool) Answers(key string) []string {
	answers, ok := p.table[key]
	if !ok {
		panic(fmt.Sprintf("drill: answers requested for unknown key %q", key))
	}
	return append([]string(nil), answers...)
}

// Accepts reports whether answer matches any accepted answer for key.
func (p *Pool) Accepts(key, answer string) bool {
	for _, a := range p.Answers(key) {
		if a == answer {
			return true
		}
	}
	return false
}

// Resolve removes key from the working set. It returns false when that removal completed
// the pass, in which case the working set has already been refilled.
func (p *Pool) Resolve(key string) bool {
	if i, ok := p.index[key]; ok {
		last := len(p.work) - 1
		moved := p.work[last]
		p.work[i] = moved
		p.index[moved] = i
		p.work = p.work[:last]
		delete(p.index, key)
	}
	return p.ensureNotEmpty()
}

// Progress returns how many keys remain in this pass and how many the pool holds.
func (p *Pool) Progress() (remaining, total int) {
	return len(p.work), len(p.keys)
}

// Loops returns the number of completed passes.
func (p *Pool) Loops() int {
	return p.loops
}

func (p *Pool) contains(key string) bool {
	_, ok := p.table[key]
	return ok
}

func (p *Pool) ensureNotEmpty() bool {
	if len(p.work) > 0 {
		return true
	}
	p.refill()
	p.loops++
	return false
}

func (p *Pool) refill() {
	p.work = append(p.work[:0], p.keys...)
	p.index = make(map[string]int, len(p.keys))
	for i, k := range p.work {
		p.index[k] = i
	}
}
