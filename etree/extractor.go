// Package etree implements job extraction from XML documents of unknown
// schema using the beevik/etree DOM. Semantic fields are resolved by trying
// an ordered list of candidate tag names, first without a namespace prefix
// and then under any prefix, so feeds from different partners map onto the
// same record shape without per-schema configuration.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/feedscan"
)

// Ensure Extractor implements feedscan.Extractor.
var _ feedscan.Extractor = (*Extractor)(nil)

// containerTags are the tag names believed to demarcate a single posting.
// Order matters: records are emitted alias-major, document-order-minor.
var containerTags = []string{
	"job", "Job", "position", "Position", "vacancy",
	"Vacancy", "requisition", "Requisition", "posting",
}

// Per-field tag aliases, checked in priority order; the first alias with a
// non-empty trimmed value wins.
var (
	jobIDTags       = []string{"jobId", "job-id", "id", "JobID", "ID", "requisitionId"}
	referenceIDTags = []string{"referenceId", "reference-id", "refId", "ref-id", "ReferenceID", "refNumber", "requisitionNumber"}
	partnerIDTags   = []string{"partnerJobId", "partner-job-id", "PartnerJobId", "partnerjobid"}
	jobNameTags     = []string{"title", "jobTitle", "job-title", "name", "jobName", "position", "positionTitle", "Title"}
	companyIDTags   = []string{"companyId", "company-id", "clientId", "client-id", "CompanyID", "teamId", "team-id"}
	companyNameTags = []string{"company", "companyName", "company-name", "client", "clientName", "Company", "employer", "organization", "teamName"}
	teamTags        = []string{"team", "department", "division", "businessUnit", "Team", "Department"}
)

// Extractor extracts job records from XML feed documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses one XML document and returns the job records found in it.
// Every element matching a container tag yields one record. When no
// container is found the document root is treated as a single candidate
// posting and kept only if it carries a job ID, reference ID or job name.
func (e *Extractor) Extract(data []byte, sourceFile string) ([]*feedscan.Job, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, feedscan.Errorf(feedscan.EUNPROCESSABLE, "malformed XML in %q: %s", sourceFile, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, feedscan.Errorf(feedscan.EUNPROCESSABLE, "no root element in %q", sourceFile)
	}

	containers := findContainers(root)
	if len(containers) == 0 {
		job := jobFromElement(root, sourceFile)
		if job.JobID == "" && job.ReferenceID == "" && job.JobName == "" {
			return []*feedscan.Job{}, nil
		}
		return []*feedscan.Job{job}, nil
	}

	jobs := make([]*feedscan.Job, 0, len(containers))
	for _, el := range containers {
		jobs = append(jobs, jobFromElement(el, sourceFile))
	}
	return jobs, nil
}

// findContainers returns every distinct descendant of root whose tag matches
// a container alias. The same element can satisfy several alias/namespace
// combinations; pointer identity keeps it in the result exactly once.
func findContainers(root *etree.Element) []*etree.Element {
	var containers []*etree.Element
	visited := make(map[*etree.Element]bool)

	collect := func(tag string, anySpace bool) {
		walkDescendants(root, func(el *etree.Element) bool {
			if matchesTag(el, tag, anySpace) && !visited[el] {
				visited[el] = true
				containers = append(containers, el)
			}
			return false
		})
	}

	for _, tag := range containerTags {
		collect(tag, false)
		collect(tag, true)
	}
	return containers
}

// jobFromElement runs per-field alias resolution against one candidate
// posting element. Field tags may be nested several levels below the
// container; the search is recursive over its subtree.
func jobFromElement(el *etree.Element, sourceFile string) *feedscan.Job {
	return &feedscan.Job{
		SourceFile:     sourceFile,
		JobID:          findText(el, jobIDTags),
		ReferenceID:    findText(el, referenceIDTags),
		PartnerJobID:   findText(el, partnerIDTags),
		JobName:        findText(el, jobNameTags),
		CompanyID:      findText(el, companyIDTags),
		CompanyName:    findText(el, companyNameTags),
		TeamIdentifier: findText(el, teamTags),
	}
}

// findText resolves one semantic field under el. Each alias is tried twice,
// unqualified first and then under any namespace prefix; the first variant
// whose first matching element has non-empty trimmed text wins. An element
// that is present but empty fails its variant and the search continues.
func findText(el *etree.Element, aliases []string) string {
	for _, tag := range aliases {
		for _, anySpace := range []bool{false, true} {
			found := firstDescendant(el, tag, anySpace)
			if found == nil {
				continue
			}
			if text := strings.TrimSpace(found.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// firstDescendant returns the first descendant of el, in document order,
// matching the tag. CDATA payloads surface through Text() like plain text.
func firstDescendant(el *etree.Element, tag string, anySpace bool) *etree.Element {
	var found *etree.Element
	walkDescendants(el, func(e *etree.Element) bool {
		if matchesTag(e, tag, anySpace) {
			found = e
			return true
		}
		return false
	})
	return found
}

// matchesTag compares local tag names; anySpace accepts any namespace prefix.
func matchesTag(el *etree.Element, tag string, anySpace bool) bool {
	if el.Tag != tag {
		return false
	}
	return anySpace || el.Space == ""
}

// walkDescendants visits every element below el in document order, stopping
// early when visit returns true. el itself is not visited.
func walkDescendants(el *etree.Element, visit func(*etree.Element) bool) bool {
	for _, child := range el.ChildElements() {
		if visit(child) {
			return true
		}
		if walkDescendants(child, visit) {
			return true
		}
	}
	return false
}
