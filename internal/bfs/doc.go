// Package bfs runs breadth-first search over a proximity graph & records
// every step as a Frame so the walk can be replayed.
//
// Determinism
//
//	Neighbours are enqueued in ascending vertex order & marked discovered
//	as they are enqueued, so no vertex is ever queued twice & the visit
//	order depends only on the graph and the start vertex.
//
// Pacing
//
//	Schedule & Play space frames out in time for display. The speed given
//	there is frames per second; it never feeds back into Traverse.
//
// Complexity: O(V + E) time, plus O(V) per frame for the frontier snapshot.
package bfs
