package collections

// DisjointSet is an array-backed union-find structure with path compression
// on Find and union by rank on Union. Elements are the integers [0, n).
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet creates n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Find returns the representative of the set containing x. The walk to the
// root is iterative so deep parent chains cannot exhaust the stack; a second
// pass reparents every node on the path directly to the root.
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Union merges the sets containing a and b. The set with the shallower tree
// is attached under the deeper one to keep Find paths short.
func (d *DisjointSet) Union(a, b int) {
	a = d.Find(a)
	b = d.Find(b)
	if a == b {
		return
	}
	if d.rank[a] < d.rank[b] {
		a, b = b, a
	}
	d.parent[b] = a
	if d.rank[a] == d.rank[b] {
		d.rank[a]++
	}
}
