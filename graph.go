package aoc

// Graph is an undirected weighted graph.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// Degree returns the number of edges at a.
func (g *Graph[K]) Degree(a K) int {
	return len(g.Edges[a])
}

// ReachableNodes returns every node connected to a, including a.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// Distances returns the number of edges on the shortest path from a to
// every reachable node, ignoring weights.
func (g *Graph[K]) Distances(a K) map[K]int {
	dist := map[K]int{a: 0}
	q := NewQueue(a)
	q.While(func(v K) bool {
		for k := range g.Edges[v] {
			if _, ok := dist[k]; ok {
				continue
			}
			dist[k] = dist[v] + 1
			q.Push(k)
		}
		return true
	})
	return dist
}
