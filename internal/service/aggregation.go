package service

import (
	"sort"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/model"
)

// Aggregation helpers: pure single-pass functions over the denormalized
// nomination records. Callers pass whatever slice they already filtered.

// SummarizeKPIs computes the headline metrics. Distinct heroes counts
// distinct nominees, matching the hall-of-heroes cards.
func SummarizeKPIs(records []model.NominationRecord) dto.KPISummary {
	nominees := make(map[string]struct{})
	total := 0
	for _, rec := range records {
		nominees[rec.NomineeName] = struct{}{}
		total += rec.CrystalReward
	}
	return dto.KPISummary{
		DistinctHeroes:   len(nominees),
		TotalCrystals:    total,
		TotalNominations: len(records),
	}
}

// BuildRanking groups records by (nominee, team), sums rewards and orders by
// total descending. Ties keep the order of first appearance.
func BuildRanking(records []model.NominationRecord) []dto.RankingEntry {
	type key struct{ hero, team string }

	totals := make(map[key]int)
	order := []key{}
	for _, rec := range records {
		k := key{hero: rec.NomineeName, team: rec.NomineeTeam}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += rec.CrystalReward
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	entries := make([]dto.RankingEntry, 0, len(order))
	for i, k := range order {
		entries = append(entries, dto.RankingEntry{
			Position:      i + 1,
			Hero:          k.hero,
			Team:          k.team,
			TotalCrystals: totals[k],
		})
	}
	return entries
}

// BuildPillarDistribution groups rewards by pillar, ordered by pillar name.
func BuildPillarDistribution(records []model.NominationRecord) []dto.PillarSlice {
	totals := make(map[string]int)
	for _, rec := range records {
		totals[rec.PillarName] += rec.CrystalReward
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	slices := make([]dto.PillarSlice, 0, len(names))
	for _, name := range names {
		slices = append(slices, dto.PillarSlice{Pillar: name, TotalCrystals: totals[name]})
	}
	return slices
}

// BuildTimeSeries sums rewards per calendar day of the source timestamp and
// returns the days chronologically ascending.
func BuildTimeSeries(records []model.NominationRecord) []dto.TimePoint {
	totals := make(map[string]int)
	for _, rec := range records {
		day := rec.CreatedAt.Format("2006-01-02")
		totals[day] += rec.CrystalReward
	}

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	points := make([]dto.TimePoint, 0, len(days))
	for _, day := range days {
		points = append(points, dto.TimePoint{Date: day, TotalCrystals: totals[day]})
	}
	return points
}

// BuildFeed converts the most recent records into feed items.
func BuildFeed(records []model.NominationRecord, limit int) []dto.FeedItem {
	if limit > len(records) {
		limit = len(records)
	}
	items := make([]dto.FeedItem, 0, limit)
	for _, rec := range records[:limit] {
		items = append(items, dto.FeedItem{
			ID:            rec.ID,
			CreatedAt:     rec.CreatedAt,
			NominatorName: rec.NominatorName,
			NomineeName:   rec.NomineeName,
			MissionName:   rec.MissionName,
			CrystalReward: rec.CrystalReward,
			PillarName:    rec.PillarName,
		})
	}
	return items
}
