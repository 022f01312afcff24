package feedscan

import "strings"

// UnknownTeam is the grouping key used for records that carry no
// team-related field at all.
const UnknownTeam = "Unknown Team"

// Job represents one posting extracted from one feed file. Every field
// except SourceFile is optional; an empty string means the field was absent
// from the source document. Records are immutable once extracted.
type Job struct {
	SourceFile     string `json:"sourceFile"`
	JobID          string `json:"jobId"`
	ReferenceID    string `json:"referenceId"`
	PartnerJobID   string `json:"partnerJobId"`
	JobName        string `json:"jobName"`
	CompanyID      string `json:"companyId"`
	CompanyName    string `json:"companyName"`
	TeamIdentifier string `json:"teamIdentifier"`
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if j.SourceFile == "" {
		return Errorf(EINVALID, "job source file required")
	}
	return nil
}

// MatchesTeam reports whether the job belongs to the searched team. The
// query matches if its lowercased form is a substring of any populated
// team-related field (company ID, company name, team identifier). Absent
// fields never match; an empty query matches any record with at least one
// populated team field.
func (j *Job) MatchesTeam(query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{j.CompanyID, j.CompanyName, j.TeamIdentifier} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// MatchesJob reports whether the job is the searched one. The query matches
// if its lowercased form is a substring of any populated job-related field
// (job ID, reference ID, job name), or if the partner-id rule fires: with
// spaces removed and lowercased, the query equals or is contained anywhere
// within the partner job ID. Partner IDs may embed other identifiers as a
// suffix (e.g. query "1199359" matches partner ID "170001199359").
func (j *Job) MatchesJob(query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{j.JobID, j.ReferenceID, j.JobName} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	if j.PartnerJobID == "" {
		return false
	}
	partner := strings.ToLower(strings.ReplaceAll(j.PartnerJobID, " ", ""))
	cleaned := strings.ToLower(strings.ReplaceAll(query, " ", ""))
	return cleaned == partner || strings.Contains(partner, cleaned)
}

// TeamKey returns the grouping key for per-team summaries: the first
// populated field among company name, company ID and team identifier, or
// UnknownTeam when none is set.
func (j *Job) TeamKey() string {
	switch {
	case j.CompanyName != "":
		return j.CompanyName
	case j.CompanyID != "":
		return j.CompanyID
	case j.TeamIdentifier != "":
		return j.TeamIdentifier
	default:
		return UnknownTeam
	}
}
