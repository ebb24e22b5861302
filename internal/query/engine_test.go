package query_test

import (
	"math"
	"testing"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeJob(title, location string, salary float64, createdAt time.Time) models.Job {
	return models.Job{
		ID:        uuid.New(),
		Title:     title,
		Location:  location,
		Salary:    salary,
		Status:    models.JobStatusActive,
		CreatedAt: createdAt,
	}
}

func titles(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func TestRun_KeywordSubstringCaseInsensitive(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("Backend Engineer", "Pune", 10, now),
		makeJob("Frontend Engineer", "Delhi", 8, now),
		makeJob("DevOps Lead", "Pune", 15, now),
	}

	result := query.Run(jobs, query.Criteria{Keywords: []string{"BACKEND"}})

	require.Len(t, result, 1)
	assert.Equal(t, "Backend Engineer", result[0].Title)
}

func TestRun_KeywordsConjunctiveAcrossInputs(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("Backend Engineer", "Pune", 10, now),
		makeJob("Backend Engineer", "Delhi", 12, now),
		makeJob("Data Engineer", "Pune", 9, now),
	}

	// Global query and local query must both match.
	result := query.Run(jobs, query.Criteria{Keywords: []string{"backend", "pune"}})

	require.Len(t, result, 1)
	assert.Equal(t, "Backend Engineer", result[0].Title)
	assert.Equal(t, "Pune", result[0].Location)
}

func TestRun_BlankKeywordsIgnored(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("Backend Engineer", "Pune", 10, now),
		makeJob("Frontend Engineer", "Delhi", 8, now),
	}

	result := query.Run(jobs, query.Criteria{Keywords: []string{"", "   ", "frontend"}})

	require.Len(t, result, 1)
	assert.Equal(t, "Frontend Engineer", result[0].Title)
}

func TestRun_MatchesCompanyName(t *testing.T) {
	now := time.Now()
	job := makeJob("Engineer", "Remote", 10, now)
	job.Company = &models.Company{Name: "Acme Robotics", IsActive: true}
	other := makeJob("Engineer", "Remote", 10, now)
	other.Company = &models.Company{Name: "Globex", IsActive: true}

	result := query.Run([]models.Job{job, other}, query.Criteria{Keywords: []string{"acme"}})

	require.Len(t, result, 1)
	assert.Equal(t, "Acme Robotics", result[0].Company.Name)
}

func TestRun_FacetsDisjunctive(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("Backend Engineer", "Pune", 10, now),
		makeJob("Backend Engineer", "Delhi", 12, now),
		makeJob("Backend Engineer", "Chennai", 9, now),
	}

	// Any selected value matching is sufficient.
	result := query.Run(jobs, query.Criteria{Facets: []string{"Pune", "Delhi"}})

	require.Len(t, result, 2)
	assert.ElementsMatch(t, []string{"Pune", "Delhi"}, []string{result[0].Location, result[1].Location})
}

func TestRun_FacetsAndKeywordsCombine(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("Backend Engineer", "Pune", 10, now),
		makeJob("Designer", "Pune", 7, now),
		makeJob("Backend Engineer", "Chennai", 11, now),
	}

	result := query.Run(jobs, query.Criteria{
		Keywords: []string{"backend"},
		Facets:   []string{"Pune"},
	})

	require.Len(t, result, 1)
	assert.Equal(t, "Backend Engineer", result[0].Title)
	assert.Equal(t, "Pune", result[0].Location)
}

func TestRun_SortSalaryHigh(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("Backend Engineer", "Pune", 10, now),
		makeJob("Backend Lead", "Pune", 20, now),
	}

	result := query.Run(jobs, query.Criteria{
		Keywords: []string{"backend"},
		Sort:     query.SortSalaryHigh,
	})

	// Example from the workflow contract: Lead(20) before Engineer(10).
	require.Equal(t, []string{"Backend Lead", "Backend Engineer"}, titles(result))
}

func TestRun_SortSalaryLow(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("B", "x", 20, now),
		makeJob("A", "x", 5, now),
		makeJob("C", "x", 12, now),
	}

	result := query.Run(jobs, query.Criteria{Sort: query.SortSalaryLow})

	assert.Equal(t, []string{"A", "C", "B"}, titles(result))
}

func TestRun_SortNewestDefault(t *testing.T) {
	base := time.Now()
	jobs := []models.Job{
		makeJob("old", "x", 1, base.Add(-2*time.Hour)),
		makeJob("new", "x", 1, base),
		makeJob("mid", "x", 1, base.Add(-time.Hour)),
	}

	result := query.Run(jobs, query.Criteria{})

	assert.Equal(t, []string{"new", "mid", "old"}, titles(result))
}

func TestRun_SortStableOnTies(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("first", "x", 10, now),
		makeJob("second", "x", 10, now),
		makeJob("third", "x", 10, now),
	}

	result := query.Run(jobs, query.Criteria{Sort: query.SortSalaryHigh})

	// Equal keys must preserve fetch order.
	assert.Equal(t, []string{"first", "second", "third"}, titles(result))
}

func TestRun_NaNSalarySortsLowest(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("broken", "x", math.NaN(), now),
		makeJob("low", "x", 2, now),
		makeJob("high", "x", 30, now),
	}

	high := query.Run(jobs, query.Criteria{Sort: query.SortSalaryHigh})
	assert.Equal(t, []string{"high", "low", "broken"}, titles(high))

	low := query.Run(jobs, query.Criteria{Sort: query.SortSalaryLow})
	assert.Equal(t, []string{"broken", "low", "high"}, titles(low))
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		makeJob("b", "x", 1, now.Add(-time.Hour)),
		makeJob("a", "x", 2, now),
	}

	_ = query.Run(jobs, query.Criteria{Sort: query.SortNewest})

	assert.Equal(t, []string{"b", "a"}, titles(jobs))
}

func TestParseFacets(t *testing.T) {
	assert.Equal(t, []string{"Pune", "Delhi NCR", "0-5 LPA"}, query.ParseFacets("Pune OR Delhi NCR OR 0-5 LPA"))
	assert.Nil(t, query.ParseFacets("   "))
	assert.Equal(t, []string{"Pune"}, query.ParseFacets("Pune"))
}

func TestClassify(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{makeJob("a", "Pune", 1, now)}

	assert.Equal(t, query.NoJobs, query.Classify(nil, nil, query.Criteria{}))
	assert.Equal(t, query.NoMatch, query.Classify(jobs, nil, query.Criteria{Keywords: []string{"zzz"}}))

	result := query.Run(jobs, query.Criteria{Keywords: []string{"a"}})
	assert.Equal(t, query.NotEmpty, query.Classify(jobs, result, query.Criteria{Keywords: []string{"a"}}))
}
