package router

import "container/heap"

// pqItem is one entry in the priority queue: a candidate distance to a
// vertex, along with the edge that produced it. Stale entries (superseded
// by a cheaper relaxation) are pushed rather than mutated in place and
// filtered out on pop by comparing against best[]  — the same lazy
// decrease-key pattern as the teacher's internal/routing/astar.go
// PriorityQueue and katalvlaran-lvlath/dijkstra's nodePQ. The search itself
// is a single function, shortestPath.
type pqItem struct {
	vertex VertexID
	dist   float64
	via    Edge
	from   VertexID
	hasVia bool
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// predecessor records, for a settled vertex, the edge and originating vertex
// that produced its shortest distance.
type predecessor struct {
	from Edge
	src  VertexID
	ok   bool
}

// shortestPath runs Dijkstra from source to target over g and returns the
// ordered list of edges traversed, or ok=false if target is unreachable.
func shortestPath(g *Graph, source, target VertexID) ([]Edge, bool) {
	best := make(map[VertexID]float64)
	pred := make(map[VertexID]predecessor)
	visited := make(map[VertexID]bool)

	pq := &priorityQueue{{vertex: source, dist: 0}}
	best[source] = 0
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if visited[cur.vertex] {
			continue
		}
		if d, ok := best[cur.vertex]; ok && cur.dist > d {
			continue
		}
		visited[cur.vertex] = true

		if cur.hasVia {
			pred[cur.vertex] = predecessor{from: cur.via, src: cur.from, ok: true}
		}

		if cur.vertex == target {
			break
		}

		for _, edge := range g.Edges(cur.vertex) {
			if visited[edge.To] {
				continue
			}
			next := cur.dist + edge.Weight
			if d, ok := best[edge.To]; !ok || next < d {
				best[edge.To] = next
				heap.Push(pq, pqItem{vertex: edge.To, dist: next, via: edge, from: cur.vertex, hasVia: true})
			}
		}
	}

	if !visited[target] {
		return nil, false
	}

	var edges []Edge
	v := target
	for v != source {
		p, ok := pred[v]
		if !ok {
			return nil, false
		}
		edges = append(edges, p.from)
		v = p.src
	}

	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges, true
}
