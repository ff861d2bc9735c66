package factors

import (
	"sort"
	"strings"
)

// Registry indexes all loaded factors. It is immutable once callers
// stop adding factors, and safe for concurrent readers thereafter.
type Registry struct {
	factors []*Factor
	byID    map[string]*Factor
}

// Load builds a registry from the embedded factor databases.
//
// Precedence when multiple sources match the same query is the fixed
// total order in SourcePrecedence: EPA Hub, then eGRID, Ember, DEFRA,
// USEEIO, EXIOBASE, and custom factors last. Within a source a newer
// publication year wins; remaining ties fall back to declaration order.
func Load() *Registry {
	r := &Registry{byID: make(map[string]*Factor)}
	r.Add(epaHubFactors()...)
	r.Add(egridFactors()...)
	r.Add(defraFactors()...)
	r.Add(useeioFactors()...)
	r.Add(emberFactors()...)
	r.Add(exiobaseFactors()...)
	return r
}

// Add appends factors to the registry, preserving insertion order.
func (r *Registry) Add(fs ...*Factor) {
	for _, f := range fs {
		r.factors = append(r.factors, f)
		r.byID[f.ID] = f
	}
}

// Get returns a factor by exact ID.
func (r *Registry) Get(id string) (*Factor, bool) {
	f, ok := r.byID[id]
	return f, ok
}

// Count returns the number of loaded factors.
func (r *Registry) Count() int { return len(r.factors) }

// Sources returns the distinct sources present, in precedence order.
func (r *Registry) Sources() []Source {
	seen := make(map[Source]bool)
	for _, f := range r.factors {
		seen[f.Source] = true
	}
	var out []Source
	for _, s := range SourcePrecedence {
		if seen[s] {
			out = append(out, s)
		}
	}
	return out
}

// Query filters a factor search. Zero values mean "any".
type Query struct {
	Text         string
	Source       Source
	Category     string
	FuelType     string
	Region       string
	ActivityUnit string
	Tags         []string
	Limit        int
}

// Search returns factors matching all set filters. When Text is given,
// results are ranked by a simple relevance score; otherwise they keep
// source precedence order.
func (r *Registry) Search(q Query) []*Factor {
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}

	matched := make([]*Factor, 0, 32)
	for _, f := range r.factors {
		if q.Source != "" && f.Source != q.Source {
			continue
		}
		if q.Category != "" && !strings.EqualFold(f.Category, q.Category) {
			continue
		}
		if q.FuelType != "" && !strings.EqualFold(f.FuelType, q.FuelType) {
			continue
		}
		if q.Region != "" && !strings.EqualFold(f.Region, q.Region) {
			continue
		}
		if q.ActivityUnit != "" && !strings.EqualFold(f.ActivityUnit, q.ActivityUnit) {
			continue
		}
		if len(q.Tags) > 0 && !hasAllTags(f, q.Tags) {
			continue
		}
		matched = append(matched, f)
	}

	if q.Text != "" {
		matched = rankByText(matched, q.Text)
	} else {
		sortByPrecedence(matched)
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// Find returns the single best match for a calculation. The boolean is
// false when nothing matches; that is a normal outcome, not an error.
func (r *Registry) Find(category, fuelType, region, activityUnit string, source Source) (*Factor, bool) {
	results := r.Search(Query{
		Category:     category,
		FuelType:     fuelType,
		Region:       region,
		ActivityUnit: activityUnit,
		Source:       source,
		Limit:        1,
	})
	if len(results) == 0 {
		return nil, false
	}
	return results[0], true
}

func hasAllTags(f *Factor, want []string) bool {
	have := make(map[string]bool, len(f.Tags))
	for _, t := range f.Tags {
		have[strings.ToLower(t)] = true
	}
	for _, t := range want {
		if !have[strings.ToLower(t)] {
			return false
		}
	}
	return true
}

// sortByPrecedence orders by source rank, then newer year, keeping the
// original declaration order for full ties (stable sort).
func sortByPrecedence(fs []*Factor) {
	sort.SliceStable(fs, func(i, j int) bool {
		ri, rj := sourceRank[fs[i].Source], sourceRank[fs[j].Source]
		if ri != rj {
			return ri < rj
		}
		return fs[i].Year > fs[j].Year
	})
}

func rankByText(fs []*Factor, text string) []*Factor {
	query := strings.ToLower(text)
	words := strings.Fields(query)

	type scored struct {
		score int
		f     *Factor
	}
	var hits []scored
	for _, f := range fs {
		searchable := strings.ToLower(strings.Join([]string{
			f.Name, f.Description, f.Category, f.Subcategory, f.FuelType,
			strings.Join(f.Tags, " "),
		}, " "))

		score := 0
		if strings.Contains(searchable, query) {
			score += 10
		}
		if strings.Contains(strings.ToLower(f.Name), query) {
			score += 20
		}
		if strings.EqualFold(f.FuelType, text) {
			score += 15
		}
		for _, w := range words {
			if strings.Contains(searchable, w) {
				score += 5
			}
		}
		if score > 0 {
			hits = append(hits, scored{score, f})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]*Factor, len(hits))
	for i, h := range hits {
		out[i] = h.f
	}
	return out
}
