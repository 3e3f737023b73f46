package query

// CompanyCount is one entry of a company ranking.
type CompanyCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// YearCount is the number of missions launched in one calendar year.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// StatusCounts maps each status vocabulary entry to its count.
// It always holds exactly the vocabulary keys.
type StatusCounts map[string]int

// Total returns the sum of all counted statuses.
func (s StatusCounts) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}
