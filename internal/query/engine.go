// Package query derives the visible job subset from the full in-memory
// collection. It is a pure function of (jobs, criteria): no I/O, no mutation
// of the input slice.
package query

import (
	"math"
	"sort"
	"strings"

	"jobboard-api/internal/models"
)

// SortKey selects the ordering of the result set.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortSalaryHigh SortKey = "salary-high"
	SortSalaryLow  SortKey = "salary-low"
)

// facetSeparator is the literal token callers use to join selected facet
// values into a single query string.
const facetSeparator = " OR "

// Criteria describes one evaluation of the engine. Each caller supplies its
// own query values explicitly; there is no ambient "most recent query" cell.
type Criteria struct {
	// Keywords holds the distinct free-text inputs (global search, the
	// listing page's own box). Blank entries are ignored; the rest are
	// conjunctive: a job must match every one.
	Keywords []string

	// Facets holds the selected filter values across Location, Industry and
	// Salary-band facets. A single match among them suffices (OR within and
	// across facets).
	Facets []string

	// Sort defaults to SortNewest when empty.
	Sort SortKey
}

// ParseFacets splits a query string its caller assembled with " OR " back
// into individual facet values, dropping blanks.
func ParseFacets(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, facetSeparator)
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Empty reports whether no keyword or facet input is present. The surface
// uses this to distinguish "no jobs available" from "no jobs match filters".
func (c Criteria) Empty() bool {
	for _, k := range c.Keywords {
		if strings.TrimSpace(k) != "" {
			return false
		}
	}
	return len(c.Facets) == 0
}

// Run returns the filtered, sorted view of jobs for the given criteria. The
// result is a fresh slice; the input collection and its order are untouched.
// Ties under every sort key keep their prior relative order.
func Run(jobs []models.Job, c Criteria) []models.Job {
	terms := activeTerms(c.Keywords)
	facets := foldAll(c.Facets)

	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if !matchesAllTerms(&j, terms) {
			continue
		}
		if !matchesAnyFacet(&j, facets) {
			continue
		}
		out = append(out, j)
	}

	sortJobs(out, c.Sort)
	return out
}

// activeTerms case-folds the keyword inputs and drops blanks.
func activeTerms(keywords []string) []string {
	terms := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if t := strings.ToLower(strings.TrimSpace(k)); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func foldAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if f := strings.ToLower(strings.TrimSpace(v)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// searchFields returns the four case-folded haystacks a term is checked
// against: title, description, location, and the owning company's name.
func searchFields(j *models.Job) [4]string {
	var company string
	if j.Company != nil {
		company = j.Company.Name
	}
	return [4]string{
		strings.ToLower(j.Title),
		strings.ToLower(j.Description),
		strings.ToLower(j.Location),
		strings.ToLower(company),
	}
}

func fieldsContain(fields [4]string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(f, needle) {
			return true
		}
	}
	return false
}

// matchesAllTerms is conjunctive across distinct search inputs: every term
// must appear as a substring in at least one field.
func matchesAllTerms(j *models.Job, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	fields := searchFields(j)
	for _, t := range terms {
		if !fieldsContain(fields, t) {
			return false
		}
	}
	return true
}

// matchesAnyFacet is disjunctive: any selected value appearing as a substring
// suffices. Facet values are matched against the same fields as free text
// rather than structured attributes.
func matchesAnyFacet(j *models.Job, facets []string) bool {
	if len(facets) == 0 {
		return true
	}
	fields := searchFields(j)
	for _, f := range facets {
		if fieldsContain(fields, f) {
			return true
		}
	}
	return false
}

// salaryValue orders malformed (NaN) salaries below every real value.
func salaryValue(j *models.Job) float64 {
	if math.IsNaN(j.Salary) {
		return math.Inf(-1)
	}
	return j.Salary
}

func sortJobs(jobs []models.Job, key SortKey) {
	switch key {
	case SortSalaryHigh:
		sort.SliceStable(jobs, func(a, b int) bool {
			return salaryValue(&jobs[a]) > salaryValue(&jobs[b])
		})
	case SortSalaryLow:
		sort.SliceStable(jobs, func(a, b int) bool {
			return salaryValue(&jobs[a]) < salaryValue(&jobs[b])
		})
	case SortNewest, "":
		sort.SliceStable(jobs, func(a, b int) bool {
			return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
		})
	}
}

// EmptyState classifies an empty result for the rendering layer.
type EmptyState int

const (
	// NotEmpty means the result has jobs.
	NotEmpty EmptyState = iota
	// NoJobs means the fetched collection itself was empty.
	NoJobs
	// NoMatch means jobs exist but none pass the current criteria.
	NoMatch
)

// Classify distinguishes "no jobs available" from "no jobs match filters".
func Classify(input, result []models.Job, c Criteria) EmptyState {
	if len(result) > 0 {
		return NotEmpty
	}
	if len(input) == 0 {
		return NoJobs
	}
	if c.Empty() {
		// Empty criteria never filters anything out, so an empty result
		// here can only mean an empty collection.
		return NoJobs
	}
	return NoMatch
}
