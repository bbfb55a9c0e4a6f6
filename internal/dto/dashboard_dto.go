package dto

import (
	"time"

	"github.com/google/uuid"
)

// DashboardFilter carries the dashboard query parameters. TopN is a pointer
// so an explicit top_n=0 (empty flow graph) is distinguishable from absent.
type DashboardFilter struct {
	From    string   `form:"from"`
	To      string   `form:"to"`
	Heroes  []string `form:"heroes"`
	Pillars []string `form:"pillars"`
	Status  string   `form:"status" binding:"omitempty,oneof=pending approved refused"`
	TopN    *int     `form:"top_n" binding:"omitempty,min=0"`
}

// KPISummary holds the headline dashboard metrics. DistinctHeroes counts
// distinct nominees.
type KPISummary struct {
	DistinctHeroes   int `json:"distinct_heroes"`
	TotalCrystals    int `json:"total_crystals"`
	TotalNominations int `json:"total_nominations"`
}

// RankingEntry is one row of the hero ranking. Position is 1-based.
type RankingEntry struct {
	Position      int    `json:"position"`
	Hero          string `json:"hero"`
	Team          string `json:"team"`
	TotalCrystals int    `json:"total_crystals"`
}

type PillarSlice struct {
	Pillar        string `json:"pillar"`
	TotalCrystals int    `json:"total_crystals"`
}

// TimePoint is one day's crystal total. Date is the calendar date of the
// source timestamp, no timezone conversion applied.
type TimePoint struct {
	Date          string `json:"date"`
	TotalCrystals int    `json:"total_crystals"`
}

type FeedItem struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	NominatorName string    `json:"nominator_name"`
	NomineeName   string    `json:"nominee_name"`
	MissionName   string    `json:"mission_name"`
	CrystalReward int       `json:"crystal_reward"`
	PillarName    string    `json:"pillar_name"`
}

const (
	FlowBandNominator = "nominator"
	FlowBandPillar    = "pillar"
	FlowBandNominee   = "nominee"
)

// FlowNode is one node of the three-tier flow graph. ID may carry invisible
// marker characters to keep colliding display names distinct; Label is the
// original name for rendering.
type FlowNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Band  string  `json:"band"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// FlowLink is a weighted edge between node indices.
type FlowLink struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Value  int `json:"value"`
}

type FlowGraph struct {
	Nodes []FlowNode `json:"nodes"`
	Links []FlowLink `json:"links"`
}

// Empty reports whether the graph carries nothing to display.
func (g FlowGraph) Empty() bool {
	return len(g.Links) == 0
}

type DashboardResponse struct {
	KPIs               KPISummary     `json:"kpis"`
	Feed               []FeedItem     `json:"feed"`
	Ranking            []RankingEntry `json:"ranking"`
	PillarDistribution []PillarSlice  `json:"pillar_distribution"`
	TimeSeries         []TimePoint    `json:"time_series"`
	FlowGraph          FlowGraph      `json:"flow_graph"`
}
