package diag

import (
	"fmt"
	"math"
	"sort"
)

// Bag is a capped, append-only collection of diagnostics for one
// compilation. Producers go through a Reporter; the driver owns the Bag.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	capped := clampCap(max)
	return &Bag{
		items: make([]Diagnostic, 0, capped),
		max:   capped,
	}
}

// clampCap saturates a requested cap into the uint16 the bag stores, so an
// oversized --max-diagnostics never wraps into a tiny cap.
func clampCap(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}

// Add appends a diagnostic unless the cap is reached. It returns false when
// the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether the bag holds at least one error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether the bag holds at least one warning or error.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the collected diagnostics. Callers must
// not modify the returned slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Refs returns pointers into the bag's storage, in bag order. The golden
// and short formatters take pointer slices so they can mix diagnostics
// from several bags without copying.
func (b *Bag) Refs() []*Diagnostic {
	out := make([]*Diagnostic, len(b.items))
	for i := range b.items {
		out[i] = &b.items[i]
	}
	return out
}

// Merge appends the diagnostics of another bag, growing the cap as needed.
func (b *Bag) Merge(other *Bag) {
	if newTotal := clampCap(len(b.items) + len(other.items)); newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start, end, severity (descending) and
// code, giving deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code.String() < dj.Code.String()
	})
}

// Dedup removes repeated diagnostics keyed by code and primary span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s", d.Code.String(), d.Primary.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}
