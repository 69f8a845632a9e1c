package certificate

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farhananowshin/SkillBridge/internal/service"
)

func TestRender_ProducesPNG(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out, err := r.Render(service.CertificateData{
		StudentName:    "Nadia Rahman",
		CourseTitle:    "Go Fundamentals",
		MentorName:     "Imran Hossain",
		CompletionDate: time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("\x89PNG\r\n\x1a\n")))
	assert.Greater(t, len(out), 1024)
}

func TestRender_LongTitleStillRenders(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out, err := r.Render(service.CertificateData{
		StudentName:    "Nadia Rahman",
		CourseTitle:    "Distributed Systems, Consensus Protocols and Fault-Tolerant State Machine Replication",
		MentorName:     "Imran Hossain",
		CompletionDate: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
