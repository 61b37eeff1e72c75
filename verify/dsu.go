package verify

// dsu is a disjoint-set forest over labels 1..n with path compression and
// union by rank.
type dsu struct {
	parent []int
	rank   []int
	sets   int
}

func newDSU(n int) *dsu {
	d := &dsu{
		parent: make([]int, n+1),
		rank:   make([]int, n+1),
		sets:   n,
	}
	for v := range d.parent {
		d.parent[v] = v
	}
	return d
}

// find is iterative to avoid deep recursion on long chains.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		// Path compression: point u to its grandparent.
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// union merges the sets of u and v. It reports false if they were already
// in the same set, i.e. the edge (u,v) closes a cycle.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}
	d.sets--
	return true
}
