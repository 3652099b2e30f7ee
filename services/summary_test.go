package services

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestSummaryCounts(t *testing.T) {
	svc := NewSummaryService(newTestLogger())
	r := svc.Generate(mustDataset(t, fourSiteRecords()))

	assert.Equal(t, 10, r.TotalLaunches)
	assert.Equal(t, 5, r.Successes)
	assert.Equal(t, 0.5, r.SuccessRate)
	assert.Equal(t, 3, r.LaunchesBySite["CCAFS LC-40"])
	assert.Equal(t, 2, r.SuccessesBySite["KSC LC-39A"])
	assert.Equal(t, 0, r.SuccessesBySite["Nowhere"])
}

func TestSummaryPayload(t *testing.T) {
	svc := NewSummaryService(newTestLogger())
	r := svc.Generate(mustDataset(t, scenarioRecords()))

	assert.Equal(t, 500.0, r.MinPayloadKg)
	assert.Equal(t, 2000.0, r.MaxPayloadKg)
	assert.Equal(t, 1333.33, r.AveragePayloadKg)
	assert.Equal(t, []string{"Falcon9", "FalconHeavy"}, r.BoosterCategories)
}

func TestSummaryPrint(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	svc := NewSummaryService(newTestLogger())
	r := svc.Generate(mustDataset(t, scenarioRecords()))

	var buf bytes.Buffer
	svc.Print(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "SPACEX LAUNCH RECORDS")
	assert.Contains(t, out, "Total launches : 3")
	assert.Contains(t, out, "Success rate   : 67%")
	assert.Contains(t, out, "SiteA")
	assert.Contains(t, out, "(1/2)")
	assert.Contains(t, out, "Falcon9, FalconHeavy")
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	got := truncate("Estación Espacial Norte", 16)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Estación Espa...", got)
	assert.Equal(t, 16, utf8.RuneCountInString(got))

	assert.Equal(t, "Base Añil", truncate("Base Añil", 16))
}
