package graph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// cluster 点连接图,点的下标即图节点ID
type cluster struct {
	g *simple.UndirectedGraph
}

func newCluster(n int) *cluster {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	return &cluster{g: g}
}

// link 连接两点
func (c *cluster) link(a, b int) {
	if a == b {
		return
	}
	c.g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
}

// components 连通分量,返回每个点所属分量的编号
func (c *cluster) components() []int {
	of := make([]int, c.g.Nodes().Len())
	for k, cc := range topo.ConnectedComponents(c.g) {
		for _, n := range cc {
			of[n.ID()] = k
		}
	}
	return of
}
