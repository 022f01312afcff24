package etree_test

import (
	"testing"

	"github.com/fwojciec/feedscan"
	feedetree "github.com/fwojciec/feedscan/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, xml string) []*feedscan.Job {
	t.Helper()
	jobs, err := feedetree.NewExtractor().Extract([]byte(xml), "feed.xml")
	require.NoError(t, err)
	return jobs
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts one record per job container", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed>
			<job>
				<jobId>REQ-1</jobId>
				<title>Backend Engineer</title>
				<company>Acme</company>
			</job>
			<job>
				<jobId>REQ-2</jobId>
				<title>Frontend Engineer</title>
				<company>Acme</company>
			</job>
		</feed>`)

		require.Len(t, jobs, 2)
		assert.Equal(t, "REQ-1", jobs[0].JobID)
		assert.Equal(t, "Backend Engineer", jobs[0].JobName)
		assert.Equal(t, "Acme", jobs[0].CompanyName)
		assert.Equal(t, "REQ-2", jobs[1].JobID)
		assert.Equal(t, "feed.xml", jobs[0].SourceFile)
	})

	t.Run("recognizes alternative container tags", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed>
			<vacancy><title>Analyst</title></vacancy>
			<posting><title>Recruiter</title></posting>
		</feed>`)

		require.Len(t, jobs, 2)
	})

	t.Run("honors alias priority order for job ID", func(t *testing.T) {
		t.Parallel()

		// jobId precedes id in the alias list, so it wins regardless of
		// document order.
		jobs := extract(t, `<feed>
			<job>
				<id>A</id>
				<jobId>B</jobId>
			</job>
		</feed>`)

		require.Len(t, jobs, 1)
		assert.Equal(t, "B", jobs[0].JobID)
	})

	t.Run("finds field tags under any namespace prefix", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed xmlns:ns="http://example.com/jobs">
			<job>
				<ns:title>Engineer</ns:title>
				<ns:companyId>C-9</ns:companyId>
			</job>
		</feed>`)

		require.Len(t, jobs, 1)
		assert.Equal(t, "Engineer", jobs[0].JobName)
		assert.Equal(t, "C-9", jobs[0].CompanyID)
	})

	t.Run("finds container tags under any namespace prefix", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed xmlns:ns="http://example.com/jobs">
			<ns:job><title>Engineer</title></ns:job>
		</feed>`)

		require.Len(t, jobs, 1)
		assert.Equal(t, "Engineer", jobs[0].JobName)
	})

	t.Run("prefers unqualified tag over prefixed tag for the same alias", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed xmlns:ns="http://example.com/jobs">
			<job>
				<ns:title>Prefixed</ns:title>
				<title>Plain</title>
			</job>
		</feed>`)

		require.Len(t, jobs, 1)
		assert.Equal(t, "Plain", jobs[0].JobName)
	})

	t.Run("emits each container element once despite overlapping searches", func(t *testing.T) {
		t.Parallel()

		// An unqualified <job> satisfies both the no-namespace and the
		// any-namespace pass; identity de-duplication keeps one record.
		jobs := extract(t, `<feed>
			<job><jobId>REQ-1</jobId></job>
		</feed>`)

		require.Len(t, jobs, 1)
	})

	t.Run("keeps sibling containers with identical content separate", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed>
			<job><jobId>SAME</jobId></job>
			<job><jobId>SAME</jobId></job>
		</feed>`)

		require.Len(t, jobs, 2)
	})

	t.Run("finds fields nested below the container", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed>
			<job>
				<details>
					<identifiers><jobId>DEEP-1</jobId></identifiers>
					<about><team>Infrastructure</team></about>
				</details>
			</job>
		</feed>`)

		require.Len(t, jobs, 1)
		assert.Equal(t, "DEEP-1", jobs[0].JobID)
		assert.Equal(t, "Infrastructure", jobs[0].TeamIdentifier)
	})

	t.Run("skips empty elements and continues with later aliases", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed>
			<job>
				<jobId>   </jobId>
				<id>A</id>
			</job>
		</feed>`)

		require.Len(t, jobs, 1)
		assert.Equal(t, "A", jobs[0].JobID)
	})

	t.Run("trims surrounding whitespace from values", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed>
			<job><title>
				Engineer
			</title></job>
		</feed>`)

		require.Len(t, jobs, 1)
		assert.Equal(t, "Engineer", jobs[0].JobName)
	})

	t.Run("reads partner job ID from CDATA payloads", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed>
			<job>
				<jobId>REQ-1</jobId>
				<partnerJobId><![CDATA[170001199359]]></partnerJobId>
			</job>
		</feed>`)

		require.Len(t, jobs, 1)
		assert.Equal(t, "170001199359", jobs[0].PartnerJobID)
	})

	t.Run("leaves unmatched fields absent", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<feed>
			<job><jobId>REQ-1</jobId></job>
		</feed>`)

		require.Len(t, jobs, 1)
		assert.Empty(t, jobs[0].ReferenceID)
		assert.Empty(t, jobs[0].CompanyName)
		assert.Empty(t, jobs[0].TeamIdentifier)
	})

	t.Run("falls back to the document root when no container matches", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<opening>
			<title>Engineer</title>
			<company>Acme</company>
		</opening>`)

		require.Len(t, jobs, 1)
		assert.Equal(t, "Engineer", jobs[0].JobName)
		assert.Equal(t, "Acme", jobs[0].CompanyName)
	})

	t.Run("discards the root fallback record without identifying fields", func(t *testing.T) {
		t.Parallel()

		jobs := extract(t, `<opening>
			<company>Acme</company>
			<team>Platform</team>
		</opening>`)

		assert.Empty(t, jobs)
	})

	t.Run("returns EUNPROCESSABLE for malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := feedetree.NewExtractor().Extract([]byte("<feed><job>"), "bad.xml")

		require.Error(t, err)
		assert.Equal(t, feedscan.EUNPROCESSABLE, feedscan.ErrorCode(err))
	})
}
