package service

import (
	"sort"
	"strings"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/model"
)

// DefaultFlowTopN bounds each outer band of the flow graph.
const DefaultFlowTopN = 10

// zeroWidthSpace tags nominee node ids so two nominees sharing a display
// name stay distinct nodes; the rendered label keeps the original name.
const zeroWidthSpace = "​"

// Fixed horizontal bands: nominators left, pillars center, nominees right.
const (
	flowBandLeftX  = 0.1
	flowBandMidX   = 0.5
	flowBandRightX = 0.9
)

type flowEdge struct {
	source string
	target string
	value  int
}

// BuildFlowGraph derives the three-tier nominator → pillar → nominee graph.
// Only the topN nominators and topN nominees by total reward are retained;
// pillars appear only when at least one retained nominator edge reaches
// them. An empty restricted set yields an explicitly empty graph, never a
// graph with orphan nodes.
func BuildFlowGraph(records []model.NominationRecord, topN int) dto.FlowGraph {
	empty := dto.FlowGraph{Nodes: []dto.FlowNode{}, Links: []dto.FlowLink{}}
	if topN <= 0 || len(records) == 0 {
		return empty
	}

	nominatorPillar := groupEdges(records, func(r model.NominationRecord) (string, string) {
		return r.NominatorName, r.PillarName
	})
	pillarNominee := groupEdges(records, func(r model.NominationRecord) (string, string) {
		return r.PillarName, r.NomineeName
	})

	nominators := topByTotal(records, topN, func(r model.NominationRecord) string { return r.NominatorName })
	nominees := topByTotal(records, topN, func(r model.NominationRecord) string { return r.NomineeName })

	nominatorSet := toSet(nominators)
	nomineeSet := toSet(nominees)

	// Pillars ranked by crystals flowing in from the retained nominators.
	pillarTotals := make(map[string]int)
	pillarOrder := []string{}
	for _, e := range nominatorPillar {
		if _, ok := nominatorSet[e.source]; !ok {
			continue
		}
		if _, seen := pillarTotals[e.target]; !seen {
			pillarOrder = append(pillarOrder, e.target)
		}
		pillarTotals[e.target] += e.value
	}
	sort.SliceStable(pillarOrder, func(i, j int) bool {
		return pillarTotals[pillarOrder[i]] > pillarTotals[pillarOrder[j]]
	})
	pillarSet := toSet(pillarOrder)

	// Nominee node ids are tagged with invisible markers so they can never
	// collide with each other or with a nominator node of the same name.
	nomineeIDs := make([]string, len(nominees))
	nomineeIDByName := make(map[string]string, len(nominees))
	for i, name := range nominees {
		id := name + strings.Repeat(zeroWidthSpace, i+1)
		nomineeIDs[i] = id
		if _, exists := nomineeIDByName[name]; !exists {
			nomineeIDByName[name] = id
		}
	}

	nodes := []dto.FlowNode{}
	nodeIndex := make(map[string]int)
	appendBand := func(ids []string, labels []string, band string, x float64) {
		denom := float64(len(ids) - 1)
		if denom < 1 {
			denom = 1
		}
		for i, id := range ids {
			nodeIndex[id] = len(nodes)
			nodes = append(nodes, dto.FlowNode{
				ID:    id,
				Label: labels[i],
				Band:  band,
				X:     x,
				Y:     float64(i) / denom,
			})
		}
	}
	appendBand(nominators, nominators, dto.FlowBandNominator, flowBandLeftX)
	appendBand(pillarOrder, pillarOrder, dto.FlowBandPillar, flowBandMidX)
	appendBand(nomineeIDs, nominees, dto.FlowBandNominee, flowBandRightX)

	links := []dto.FlowLink{}
	for _, e := range nominatorPillar {
		src, okSrc := nodeIndex[e.source]
		dst, okDst := nodeIndex[e.target]
		if _, retained := nominatorSet[e.source]; okSrc && okDst && retained {
			links = append(links, dto.FlowLink{Source: src, Target: dst, Value: e.value})
		}
	}
	for _, e := range pillarNominee {
		if _, ok := pillarSet[e.source]; !ok {
			continue
		}
		if _, ok := nomineeSet[e.target]; !ok {
			continue
		}
		nomineeID, ok := nomineeIDByName[e.target]
		if !ok {
			continue
		}
		links = append(links, dto.FlowLink{
			Source: nodeIndex[e.source],
			Target: nodeIndex[nomineeID],
			Value:  e.value,
		})
	}

	if len(links) == 0 {
		return empty
	}
	return dto.FlowGraph{Nodes: nodes, Links: links}
}

// groupEdges sums rewards per (source, target) pair, preserving first
// appearance order.
func groupEdges(records []model.NominationRecord, pair func(model.NominationRecord) (string, string)) []flowEdge {
	type key struct{ source, target string }

	totals := make(map[key]int)
	order := []key{}
	for _, rec := range records {
		src, dst := pair(rec)
		k := key{source: src, target: dst}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += rec.CrystalReward
	}

	edges := make([]flowEdge, 0, len(order))
	for _, k := range order {
		edges = append(edges, flowEdge{source: k.source, target: k.target, value: totals[k]})
	}
	return edges
}

// topByTotal returns at most n keys ordered by summed reward descending,
// ties broken by first appearance.
func topByTotal(records []model.NominationRecord, n int, keyOf func(model.NominationRecord) string) []string {
	totals := make(map[string]int)
	order := []string{}
	for _, rec := range records {
		k := keyOf(rec)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += rec.CrystalReward
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	if n < len(order) {
		order = order[:n]
	}
	return order
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
