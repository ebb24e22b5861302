package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"jobboard-api/internal/export"
	"jobboard-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportJob() *models.Job {
	return &models.Job{
		ID:       uuid.New(),
		Title:    "Backend Engineer",
		Location: "Pune",
		Company:  &models.Company{Name: "Acme Robotics"},
	}
}

func TestApplicantsCSV_BOMAndHeader(t *testing.T) {
	data, err := export.ApplicantsCSV(exportJob(), nil)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	r := csv.NewReader(bytes.NewReader(data[3:]))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, export.Header, records[0])
}

func TestApplicantsCSV_RoundTripsAwkwardValues(t *testing.T) {
	applied := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	awkward := `Smith, "Bobby"` + "\nJr."
	apps := []models.Application{
		{
			Status:    models.ApplicationStatusShortlisted,
			CreatedAt: applied,
			Applicant: &models.User{
				FullName:    awkward,
				Email:       "bobby@example.com",
				PhoneNumber: "+91 98765",
				Profile:     models.Profile{ResumeURL: "https://cdn.example.com/r.pdf"},
			},
		},
	}

	data, err := export.ApplicantsCSV(exportJob(), apps)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data[3:]))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, awkward, row[0])
	assert.Equal(t, "bobby@example.com", row[1])
	assert.Equal(t, "shortlisted", row[3])
	assert.Equal(t, applied.Format(time.RFC3339), row[4])
	assert.Equal(t, "Backend Engineer", row[6])
	assert.Equal(t, "Acme Robotics", row[7])
	assert.Equal(t, "Pune", row[8])
}

func TestApplicantsCSV_MissingApplicantJoin(t *testing.T) {
	apps := []models.Application{{Status: models.ApplicationStatusPending, CreatedAt: time.Now()}}

	data, err := export.ApplicantsCSV(exportJob(), apps)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data[3:]))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1][0])
	assert.Equal(t, "pending", records[1][3])
}

func TestFilename(t *testing.T) {
	day := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Backend_Engineer_applicants_2026-08-28.csv", export.Filename("Backend Engineer", day))
	assert.Equal(t, "Sr_Go_Dev_applicants_2026-08-28.csv", export.Filename("Sr. Go / Dev!!", day))
	assert.Equal(t, "job_applicants_2026-08-28.csv", export.Filename("///", day))
}
