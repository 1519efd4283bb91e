package regexlib

type resolution uint8

const (
	resolved    resolution = iota // physical node, or placeholder spliced into jumps
	dead                          // placeholder with no targets
	passThrough                   // placeholder whose only target is the next physical node
)

// expand replaces every placeholder by its list of targets and renumbers the
// states. Placeholders without targets disappear, as do those that only
// forward to the node right after them. Running it on an automaton without
// placeholders returns an identical copy.
func expand(nodes []State, table [][]int) []State {
	n := len(nodes)
	pos := make([]int, n)
	res := make([]resolution, n)

	// pass 1: final position of every construction index
	total := 0
	for i, s := range nodes {
		pos[i] = total
		switch {
		case s.physical():
			total++
		case len(table[s.Next]) == 0:
			res[i] = dead
		case forwardsOnly(nodes, table, i):
			res[i] = passThrough
		default:
			total += len(table[s.Next])
		}
	}

	// entry is where control lands when sent to construction index i.
	entry := func(i int) int {
		if i < 0 || i >= n {
			return Accept
		}
		switch res[i] {
		case passThrough:
			t := table[nodes[i].Next][0]
			if t < 0 || t >= n {
				return Accept
			}
			return pos[t]
		case dead:
			if pos[i] >= total {
				return Accept
			}
		}
		return pos[i]
	}

	// pass 2: splice
	out := make([]State, 0, total)
	for i, s := range nodes {
		if s.physical() {
			out = append(out, s)
			continue
		}
		if res[i] != resolved {
			continue
		}
		for _, t := range table[s.Next] {
			out = append(out, State{Kind: Jump, Next: t})
		}
	}

	// pass 3: remap targets
	for i := range out {
		out[i].Next = entry(out[i].Next)
	}
	return out
}

// forwardsOnly reports whether the placeholder at i has a single target equal
// to the next physical node, or to Accept when no physical node follows. The
// start placeholder is kept when nothing follows it so that state 0 exists.
func forwardsOnly(nodes []State, table [][]int, i int) bool {
	targets := table[nodes[i].Next]
	if len(targets) != 1 {
		return false
	}
	succ := i + 1
	for succ < len(nodes) && !nodes[succ].physical() {
		succ++
	}
	if succ == len(nodes) {
		return i > 0 && targets[0] == Accept
	}
	return targets[0] == succ
}
