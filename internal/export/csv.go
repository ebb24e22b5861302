// Package export produces the applicant CSV artifact shared by every
// export call site.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"jobboard-api/internal/models"
)

// utf8BOM lets spreadsheet tools detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Header is the fixed applicant export header row.
var Header = []string{
	"Applicant Name",
	"Email",
	"Phone Number",
	"Status",
	"Applied Date",
	"Resume URL",
	"Job Title",
	"Company",
	"Location",
}

// ApplicantsCSV renders the applications of a job as UTF-8 CSV with a BOM
// prefix. Values containing commas, quotes or newlines are double-quote
// escaped per RFC 4180. Applications missing their applicant join produce a
// row with blank applicant columns rather than failing the whole export.
func ApplicantsCSV(job *models.Job, apps []models.Application) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	var company string
	if job.Company != nil {
		company = job.Company.Name
	}

	for _, app := range apps {
		var name, email, phone, resume string
		if app.Applicant != nil {
			name = app.Applicant.FullName
			email = app.Applicant.Email
			phone = app.Applicant.PhoneNumber
			resume = app.Applicant.Profile.ResumeURL
		}
		record := []string{
			name,
			email,
			phone,
			string(app.Status),
			app.CreatedAt.Format(time.RFC3339),
			resume,
			job.Title,
			company,
			job.Location,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds "{sanitized_job_title}_applicants_{ISO_date}.csv". Runs of
// characters outside [a-zA-Z0-9-] collapse to single underscores.
func Filename(jobTitle string, now time.Time) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(jobTitle) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	title := strings.Trim(b.String(), "_")
	if title == "" {
		title = "job"
	}
	return fmt.Sprintf("%s_applicants_%s.csv", title, now.Format("2006-01-02"))
}
