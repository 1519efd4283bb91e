package regexlib

import (
	"fmt"
	"slices"
)

// frag is the automaton piece built for one subexpression. Indices in nodes,
// table, heads and tails are local to the fragment until it is merged into a
// parent, which shifts them.
//
// A fragment without nodes denotes ε. Heads are always physical nodes; a
// physical tail is either the last node or is immediately followed by a
// placeholder, and no two placeholders are adjacent.
type frag struct {
	nodes    []State
	table    [][]int // placeholder id -> targets
	heads    []int
	tails    []int
	nullable bool // admits the empty path
}

func newFrag() *frag { return &frag{nullable: true} }

// single is the fragment of one literal or wildcard.
func single(kind Kind, r rune) *frag {
	return &frag{
		nodes: []State{{Kind: kind, Rune: r, Next: 1}},
		heads: []int{0},
		tails: []int{0},
	}
}

// starred is the fragment of one literal or wildcard closed by '*': the atom
// followed by a placeholder that loops back to it.
func starred(kind Kind, r rune) *frag {
	return &frag{
		nodes:    []State{{Kind: kind, Rune: r, Next: 1}, {Kind: placeholder, Next: 0}},
		table:    [][]int{{0}},
		heads:    []int{0},
		tails:    []int{1},
		nullable: true,
	}
}

func (f *frag) empty() bool { return len(f.nodes) == 0 }

func (f *frag) isPlaceholder(i int) bool { return i >= 0 && i < len(f.nodes) && !f.nodes[i].physical() }

func (f *frag) pushPlaceholder() int {
	f.nodes = append(f.nodes, State{Kind: placeholder, Next: len(f.table)})
	f.table = append(f.table, nil)
	return len(f.nodes) - 1
}

// padTail makes sure the last node is a placeholder, so that every dangling
// tail has somewhere to record its successors.
func (f *frag) padTail() {
	if n := len(f.nodes); n > 0 && f.nodes[n-1].physical() {
		f.pushPlaceholder()
	}
}

func (f *frag) addTarget(p, target int) {
	id := f.nodes[p].Next
	if !slices.Contains(f.table[id], target) {
		f.table[id] = append(f.table[id], target)
	}
}

// link wires every tail to every head. A placeholder tail, or the placeholder
// right after a physical tail, records the head in the virtual-transition
// table; otherwise the head must be the tail's physical neighbour.
func (f *frag) link(tails, heads []int) error {
	for _, t := range tails {
		for _, h := range heads {
			switch {
			case f.isPlaceholder(t):
				f.addTarget(t, h)
			case f.isPlaceholder(t + 1):
				f.addTarget(t+1, h)
			case t+1 != h:
				return &InternalError{Op: "link", Detail: fmt.Sprintf("state %d has no transfer path to %s", t, Target(h))}
			}
		}
	}
	return nil
}

// absorb appends src after f's nodes and returns the node offset applied to
// src's indices.
func (f *frag) absorb(src *frag) int {
	off, tableOff := len(f.nodes), len(f.table)
	for _, s := range src.nodes {
		if s.physical() {
			s.Next += off
		} else {
			s.Next += tableOff
		}
		f.nodes = append(f.nodes, s)
	}
	for _, targets := range src.table {
		f.table = append(f.table, shift(targets, off))
	}
	return off
}

func shift(idx []int, off int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		if v != Accept {
			v += off
		}
		out[i] = v
	}
	return out
}

func merge(a, b []int) []int {
	for _, v := range b {
		if !slices.Contains(a, v) {
			a = append(a, v)
		}
	}
	return a
}

// concatenate appends src to dst and wires dst's tails to src's heads.
func concatenate(dst, src *frag) error {
	if src.empty() {
		return nil
	}
	if dst.empty() {
		*dst = *src
		return nil
	}
	if adjacent := !src.nullable && len(src.heads) == 1 && src.heads[0] == 0; !adjacent {
		dst.padTail()
	}
	off := dst.absorb(src)
	heads := shift(src.heads, off)
	if err := dst.link(dst.tails, heads); err != nil {
		return err
	}
	if dst.nullable {
		dst.heads = merge(dst.heads, heads)
	}
	tails := shift(src.tails, off)
	if src.nullable {
		dst.tails = merge(dst.tails, tails)
	} else {
		dst.tails = tails
	}
	dst.nullable = dst.nullable && src.nullable
	return nil
}

// union appends src to dst as a parallel branch.
func union(dst, src *frag) {
	if src.empty() {
		dst.nullable = dst.nullable || src.nullable
		return
	}
	if dst.empty() {
		nullable := dst.nullable || src.nullable
		*dst = *src
		dst.nullable = nullable
		return
	}
	dst.padTail()
	off := dst.absorb(src)
	dst.heads = merge(dst.heads, shift(src.heads, off))
	dst.tails = merge(dst.tails, shift(src.tails, off))
	dst.nullable = dst.nullable || src.nullable
}

// closure turns f into f*: its tails loop back to its heads and the whole
// fragment may be skipped.
func (f *frag) closure() error {
	if f.empty() {
		return nil
	}
	f.padTail()
	if err := f.link(f.tails, f.heads); err != nil {
		return err
	}
	f.nullable = true
	return nil
}
