// Package query holds the aggregate and filter operations over a mission table.
// Every function is read-only and safe to call concurrently.
package query

import (
	"math"
	"sort"

	"github.com/leengari/space-missions/internal/domain/mission"
)

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MissionCountByCompany counts records whose company matches exactly.
func MissionCountByCompany(t *mission.Table, company string) int {
	count := 0
	t.Each(func(_ int, r mission.Record) {
		if r.Company == company {
			count++
		}
	})
	return count
}

// SuccessRate returns the percentage of the company's missions that succeeded.
// Unknown companies yield 0.
func SuccessRate(t *mission.Table, company string) float64 {
	total, successes := 0, 0
	t.Each(func(_ int, r mission.Record) {
		if r.Company != company {
			return
		}
		total++
		if r.MissionStatus == mission.StatusSuccess {
			successes++
		}
	})
	if total == 0 {
		return 0
	}
	return Round2(float64(successes) / float64(total) * 100)
}

// MissionsByDateRange returns mission names dated within [start, end],
// ordered by date then launch time. Bounds are normalized YYYY-MM-DD strings.
func MissionsByDateRange(t *mission.Table, start, end string) []string {
	if start > end {
		return []string{}
	}
	matches := []mission.Record{}
	t.Each(func(_ int, r mission.Record) {
		if r.Date >= start && r.Date <= end {
			matches = append(matches, r)
		}
	})

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Date != matches[j].Date {
			return matches[i].Date < matches[j].Date
		}
		// Untimed launches go last within their date.
		ti, tj := matches[i].Time, matches[j].Time
		if ti == "" || tj == "" {
			return ti != "" && tj == ""
		}
		return ti < tj
	})

	names := make([]string, len(matches))
	for i, r := range matches {
		names[i] = r.Mission
	}
	return names
}

// TopCompaniesByMissionCount ranks companies by mission count, highest first,
// ties broken by name, and keeps the first n.
func TopCompaniesByMissionCount(t *mission.Table, n int) []CompanyCount {
	if n <= 0 {
		return []CompanyCount{}
	}

	counts := make(map[string]int)
	t.Each(func(_ int, r mission.Record) {
		counts[r.Company]++
	})

	ranking := make([]CompanyCount, 0, len(counts))
	for name, count := range counts {
		ranking = append(ranking, CompanyCount{Name: name, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Name < ranking[j].Name
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// MissionStatusCount counts the status vocabulary. Other statuses are ignored.
func MissionStatusCount(t *mission.Table) StatusCounts {
	counts := make(StatusCounts, len(mission.StatusVocabulary))
	for _, status := range mission.StatusVocabulary {
		counts[status] = 0
	}
	t.Each(func(_ int, r mission.Record) {
		if _, ok := counts[r.MissionStatus]; ok {
			counts[r.MissionStatus]++
		}
	})
	return counts
}

// MissionsByYear counts records launched in the given year.
func MissionsByYear(t *mission.Table, year int) int {
	count := 0
	t.Each(func(_ int, r mission.Record) {
		if r.Year == year {
			count++
		}
	})
	return count
}

// MostUsedRocket returns the most frequent rocket, alphabetically first on ties,
// or "" when no record names a rocket.
func MostUsedRocket(t *mission.Table) string {
	counts := make(map[string]int)
	t.Each(func(_ int, r mission.Record) {
		if r.HasRocket() {
			counts[r.Rocket]++
		}
	})

	best, bestCount := "", 0
	for rocket, count := range counts {
		if count > bestCount || (count == bestCount && rocket < best) {
			best, bestCount = rocket, count
		}
	}
	return best
}

// AverageMissionsPerYear averages the mission count over [startYear, endYear].
// An empty or inverted span yields 0.
func AverageMissionsPerYear(t *mission.Table, startYear, endYear int) float64 {
	years := endYear - startYear + 1
	if years <= 0 {
		return 0
	}
	count := 0
	t.Each(func(_ int, r mission.Record) {
		if r.Year >= startYear && r.Year <= endYear {
			count++
		}
	})
	return Round2(float64(count) / float64(years))
}

// Companies lists distinct company names in ascending order.
func Companies(t *mission.Table) []string {
	seen := make(map[string]bool)
	names := []string{}
	t.Each(func(_ int, r mission.Record) {
		if r.Company == "" || seen[r.Company] {
			return
		}
		seen[r.Company] = true
		names = append(names, r.Company)
	})
	sort.Strings(names)
	return names
}

// MissionsPerYear returns the launch count of every year present, oldest first.
func MissionsPerYear(t *mission.Table) []YearCount {
	counts := make(map[int]int)
	t.Each(func(_ int, r mission.Record) {
		counts[r.Year]++
	})

	out := make([]YearCount, 0, len(counts))
	for year, count := range counts {
		out = append(out, YearCount{Year: year, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}
