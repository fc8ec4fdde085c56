package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawbackAnnotator_KeywordMatch(t *testing.T) {
	a := NewDrawbackAnnotator(nil, testLogger())

	got := a.Annotate(context.Background(), "Acme announces AI automation platform", "", "Acme")

	assert.Equal(t, "Could require significant compute resources and expert oversight.", got)
}

func TestDrawbackAnnotator_VendorTableBeforeKeywords(t *testing.T) {
	a := NewDrawbackAnnotator(nil, testLogger())

	got := a.Annotate(context.Background(), "Tableau ships AI security features", "", "Tableau")

	assert.Equal(t, vendorWeaknesses["tableau"], got)
}

func TestDrawbackAnnotator_VendorLookupIgnoresCase(t *testing.T) {
	a := NewDrawbackAnnotator(nil, testLogger())

	got := a.Annotate(context.Background(), "New release", "", "  THOUGHTSPOT ")

	assert.Equal(t, vendorWeaknesses["thoughtspot"], got)
}

func TestDrawbackAnnotator_RulePrecedence(t *testing.T) {
	a := NewDrawbackAnnotator(nil, testLogger())

	// "security" group precedes the "ai" group.
	got := a.Annotate(context.Background(), "AI security platform launch", "", "")

	assert.Equal(t, "May raise security and compliance concerns.", got)
}

func TestDrawbackAnnotator_SummaryIsScannedToo(t *testing.T) {
	a := NewDrawbackAnnotator(nil, testLogger())

	got := a.Annotate(context.Background(), "New product update", "Now offered as a SaaS subscription.", "")

	assert.Equal(t, "Relies on external infrastructure and possible vendor lock-in.", got)
}

func TestDrawbackAnnotator_Fallback(t *testing.T) {
	a := NewDrawbackAnnotator(nil, testLogger())

	got := a.Annotate(context.Background(), "Quarterly results: new record", "", "Unknown Corp")

	assert.Equal(t, fallbackDrawback, got)
}

func TestDrawbackAnnotator_Deterministic(t *testing.T) {
	a := NewDrawbackAnnotator(nil, testLogger())

	first := a.Annotate(context.Background(), "Cloud migration tooling", "", "")
	second := a.Annotate(context.Background(), "Cloud migration tooling", "", "")

	assert.Equal(t, first, second)
}

func TestDrawbackAnnotator_EnhancerWins(t *testing.T) {
	enhancer := &stubEnhancer{drawback: "Generated caveat."}
	a := NewDrawbackAnnotator(enhancer, testLogger())

	got := a.Annotate(context.Background(), "Tableau ships AI security features", "", "Tableau")

	assert.Equal(t, "Generated caveat.", got)
}

func TestDrawbackAnnotator_EnhancerErrorFallsThrough(t *testing.T) {
	enhancer := &stubEnhancer{drawbackErr: errors.New("timeout")}
	a := NewDrawbackAnnotator(enhancer, testLogger())

	got := a.Annotate(context.Background(), "Acme announces AI automation platform", "", "Acme")

	assert.Equal(t, "Could require significant compute resources and expert oversight.", got)
}
