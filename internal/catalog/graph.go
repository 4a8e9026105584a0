package catalog

// Node groups used by the relationship graph.
const (
	GroupCandidate   = "candidate"
	GroupCommission  = "commission"
	GroupInstitution = "institution"
)

// GraphNode is a vertex of the force-directed relationship graph.
type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Group string `json:"group"`
	Val   int    `json:"val"`
}

// GraphLink is an edge between two node ids.
type GraphLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

// Graph is the data contract consumed by the graph renderer.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

func nodeID(group, id string) string { return group + ":" + id }

// Graph links every candidate to its institution and commission. Institutions and commissions
// with no candidates are still present as isolated nodes; references that resolve to nothing
// are dropped.
func (c *Catalog) Graph() Graph {
	g := Graph{Nodes: []GraphNode{}, Links: []GraphLink{}}
	weight := make(map[string]int)

	for _, cand := range c.doc.Candidates {
		from := nodeID(GroupCandidate, cand.ID)
		if inst, ok := c.InstitutionByName(cand.Institution); ok {
			to := nodeID(GroupInstitution, inst.ID)
			g.Links = append(g.Links, GraphLink{Source: from, Target: to, Kind: "works_at"})
			weight[to]++
		}
		if com, ok := c.CandidateCommission(cand); ok {
			to := nodeID(GroupCommission, com.ID)
			g.Links = append(g.Links, GraphLink{Source: from, Target: to, Kind: "applies_to"})
			weight[to]++
		}
	}

	for _, inst := range c.doc.Institutions {
		id := nodeID(GroupInstitution, inst.ID)
		g.Nodes = append(g.Nodes, GraphNode{ID: id, Label: inst.Name, Group: GroupInstitution, Val: 1 + weight[id]})
	}
	for _, com := range c.doc.Commissions {
		id := nodeID(GroupCommission, com.ID)
		g.Nodes = append(g.Nodes, GraphNode{ID: id, Label: com.Name, Group: GroupCommission, Val: 1 + weight[id]})
	}
	for _, cand := range c.doc.Candidates {
		g.Nodes = append(g.Nodes, GraphNode{ID: nodeID(GroupCandidate, cand.ID), Label: cand.Name, Group: GroupCandidate, Val: 1})
	}
	return g
}
