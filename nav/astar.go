package nav

import (
	"container/heap"
	"math"

	"github.com/jakecoffman/cp"
)

const defaultMaxNodes = 4096

// borderPenalty nudges equal-cost paths toward the interior. It is far below
// one step cost so it only breaks ties, it never lengthens a path.
const borderPenalty = 1.0 / 1024.0

// FindPath runs A* on the 4-way grid graph from (sx, sy) to (gx, gy) and
// returns world-space waypoints at cell centers, or nil when no path exists.
// The policy decides passability; borderMargin widens the tie-break zone that
// biases paths away from the border ring; maxNodes caps expansions so a
// flood over a large open area cannot blow the tick budget.
func FindPath(g *Grid, sx, sy, gx, gy int, policy MovementPolicy, borderMargin, maxNodes int) []cp.Vector {
	if g == nil || policy == nil {
		return nil
	}
	if !g.InBounds(sx, sy) || !g.InBounds(gx, gy) {
		return nil
	}
	if !policy.Passable(g, sx, sy) || !policy.Passable(g, gx, gy) {
		return nil
	}
	if sx == gx && sy == gy {
		return []cp.Vector{g.GridToWorld(gx, gy)}
	}
	if maxNodes <= 0 {
		maxNodes = defaultMaxNodes
	}

	cols := g.Cols()
	total := cols * g.Rows()
	cameFrom := make([]int, total)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	gScore := make([]float64, total)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}

	startIdx := sy*cols + sx
	goalIdx := gy*cols + gx
	gScore[startIdx] = 0

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{x: sx, y: sy, f: manhattan(sx, sy, gx, gy)})

	expanded := 0
	for open.Len() > 0 && expanded < maxNodes {
		current := heap.Pop(open).(*openItem)
		curIdx := current.y*cols + current.x
		expanded++

		if curIdx == goalIdx {
			return reconstructPath(g, cameFrom, startIdx, goalIdx)
		}

		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := current.x+d[0], current.y+d[1]
			if !policy.Passable(g, nx, ny) {
				continue
			}
			idx := ny*cols + nx
			step := 1.0
			if g.IsNearBorder(nx, ny, borderMargin) {
				step += borderPenalty
			}
			tentative := gScore[curIdx] + step
			if tentative < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentative
				heap.Push(open, &openItem{x: nx, y: ny, f: tentative + manhattan(nx, ny, gx, gy)})
			}
		}
	}

	return nil
}

func reconstructPath(g *Grid, cameFrom []int, startIdx, goalIdx int) []cp.Vector {
	cols := g.Cols()
	cells := make([]int, 0, 32)
	for cur := goalIdx; cur != -1; cur = cameFrom[cur] {
		cells = append(cells, cur)
		if cur == startIdx {
			break
		}
	}
	path := make([]cp.Vector, len(cells))
	for i, idx := range cells {
		path[len(cells)-1-i] = g.GridToWorld(idx%cols, idx/cols)
	}
	return path
}

func manhattan(x1, y1, x2, y2 int) float64 {
	return math.Abs(float64(x1-x2)) + math.Abs(float64(y1-y2))
}

type openItem struct {
	x, y  int
	f     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
