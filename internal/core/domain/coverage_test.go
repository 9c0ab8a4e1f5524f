package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func record(code string, covered int, assessed bool) OutcomeCoverageRecord {
	return OutcomeCoverageRecord{
		OutcomeID:          uuid.New(),
		OutcomeCode:        code,
		OutcomeDescription: "desc " + code,
		CoveredCount:       covered,
		Assessed:           assessed,
	}
}

func TestApplyFilters_NoToggles(t *testing.T) {
	records := []OutcomeCoverageRecord{
		record("FR.1", 0, false),
		record("FR.2", 2, true),
	}

	got := ApplyFilters(records, AuditFilters{})
	assert.Len(t, got, 2)
}

func TestApplyFilters_OnlyUncovered(t *testing.T) {
	records := []OutcomeCoverageRecord{
		record("FR.1", 0, false),
		record("FR.2", 2, true),
		record("FR.3", 0, true),
	}

	got := ApplyFilters(records, AuditFilters{ShowOnlyUncovered: true})
	assert.Len(t, got, 2)
	for _, r := range got {
		assert.Zero(t, r.CoveredCount)
	}
}

func TestApplyFilters_OnlyUnassessed(t *testing.T) {
	records := []OutcomeCoverageRecord{
		record("FR.1", 0, false),
		record("FR.2", 2, true),
		record("FR.3", 5, false),
	}

	got := ApplyFilters(records, AuditFilters{ShowOnlyUnassessed: true})
	assert.Len(t, got, 2)
	for _, r := range got {
		assert.False(t, r.Assessed)
	}
}

func TestApplyFilters_TogglesCompose(t *testing.T) {
	records := []OutcomeCoverageRecord{
		record("FR.1", 0, false), // passes both
		record("FR.2", 0, true),  // uncovered but assessed
		record("FR.3", 4, false), // unassessed but covered
		record("FR.4", 4, true),  // passes neither
	}

	got := ApplyFilters(records, AuditFilters{ShowOnlyUncovered: true, ShowOnlyUnassessed: true})
	assert.Len(t, got, 1)
	assert.Equal(t, "FR.1", got[0].OutcomeCode)
}

func TestApplyFilters_Idempotent(t *testing.T) {
	records := []OutcomeCoverageRecord{
		record("FR.1", 0, false),
		record("FR.2", 3, true),
		record("FR.3", 1, false),
	}
	filters := AuditFilters{ShowOnlyUnassessed: true}

	once := ApplyFilters(records, filters)
	twice := ApplyFilters(once, filters)
	assert.Equal(t, once, twice)
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	records := []OutcomeCoverageRecord{
		record("FR.1", 0, false),
		record("FR.2", 2, true),
	}

	_ = ApplyFilters(records, AuditFilters{ShowOnlyUncovered: true})
	assert.Len(t, records, 2)
	assert.Equal(t, "FR.2", records[1].OutcomeCode)
}

func TestApplyFilters_EmptyInput(t *testing.T) {
	got := ApplyFilters(nil, AuditFilters{ShowOnlyUncovered: true, ShowOnlyUnassessed: true})
	assert.Empty(t, got)
}

func TestClassify_Uncovered(t *testing.T) {
	got := Classify(record("FR.1", 0, false), DefaultOverusedThreshold)
	assert.Equal(t, StatusUncovered, got)
}

func TestClassify_UncoveredWinsOverAssessed(t *testing.T) {
	// An assessed outcome with zero coverage still reads as uncovered.
	got := Classify(record("FR.1", 0, true), DefaultOverusedThreshold)
	assert.Equal(t, StatusUncovered, got)
}

func TestClassify_OverusedUnassessed(t *testing.T) {
	got := Classify(record("FR.1", 4, false), DefaultOverusedThreshold)
	assert.Equal(t, StatusOverusedUnassessed, got)
}

func TestClassify_AtThresholdIsNotOverused(t *testing.T) {
	got := Classify(record("FR.1", DefaultOverusedThreshold, false), DefaultOverusedThreshold)
	assert.Equal(t, StatusNeutral, got)
}

func TestClassify_Good(t *testing.T) {
	got := Classify(record("FR.1", 2, true), DefaultOverusedThreshold)
	assert.Equal(t, StatusGood, got)

	// Over threshold but assessed is still good.
	got = Classify(record("FR.2", 10, true), DefaultOverusedThreshold)
	assert.Equal(t, StatusGood, got)
}

func TestClassify_Neutral(t *testing.T) {
	got := Classify(record("FR.1", 1, false), DefaultOverusedThreshold)
	assert.Equal(t, StatusNeutral, got)
}

func TestComputeSummary(t *testing.T) {
	records := []OutcomeCoverageRecord{
		record("FR.1", 2, true),
		record("FR.2", 5, false),
		record("FR.3", 0, false),
	}

	s := ComputeSummary(records, DefaultOverusedThreshold)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Covered)
	assert.Equal(t, 1, s.Assessed)
	assert.Equal(t, 1, s.Overused)
	assert.Equal(t, 1, s.Uncovered)
	assert.InDelta(t, 66.67, s.CoveragePercentage, 0.01)
	assert.InDelta(t, 33.33, s.AssessmentPercentage, 0.01)
}

func TestComputeSummary_Empty(t *testing.T) {
	s := ComputeSummary(nil, DefaultOverusedThreshold)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.CoveragePercentage)
	assert.Zero(t, s.AssessmentPercentage)
}

func TestComputeSummary_CoveredPlusUncoveredEqualsTotal(t *testing.T) {
	records := []OutcomeCoverageRecord{
		record("FR.1", 0, false),
		record("FR.2", 1, false),
		record("FR.3", 0, true),
		record("FR.4", 7, true),
		record("FR.5", 2, false),
	}

	s := ComputeSummary(records, DefaultOverusedThreshold)
	assert.Equal(t, s.Total, s.Covered+s.Uncovered)
}

func TestComputeMetrics(t *testing.T) {
	subjectID := uuid.New()
	o1, o2, o3 := uuid.New(), uuid.New(), uuid.New()
	m1, m2 := uuid.New(), uuid.New()

	attachments := []MilestoneOutcome{
		{SubjectID: subjectID, MilestoneID: m1, OutcomeID: o1},
		{SubjectID: subjectID, MilestoneID: m1, OutcomeID: o2},
		{SubjectID: subjectID, MilestoneID: m2, OutcomeID: o3},
	}

	m := ComputeMetrics(attachments, []uuid.UUID{o1, o3}, nil)
	assert.Equal(t, 3, m.TotalOutcomes)
	assert.Equal(t, 2, m.CoveredOutcomes)
	assert.Equal(t, 1, m.UncoveredOutcomes)
	assert.InDelta(t, 66.67, m.CoveragePercentage, 0.01)
}

func TestComputeMetrics_SubjectSelection(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	o1, o2 := uuid.New(), uuid.New()

	attachments := []MilestoneOutcome{
		{SubjectID: s1, MilestoneID: uuid.New(), OutcomeID: o1},
		{SubjectID: s2, MilestoneID: uuid.New(), OutcomeID: o2},
	}

	m := ComputeMetrics(attachments, []uuid.UUID{o1, o2}, []uuid.UUID{s1})
	assert.Equal(t, 1, m.TotalOutcomes)
	assert.Equal(t, 1, m.CoveredOutcomes)
	assert.Zero(t, m.UncoveredOutcomes)
}

func TestComputeMetrics_SharedOutcomeCountsPerMilestone(t *testing.T) {
	// An outcome attached to two milestones inflates the total but is
	// matched once as covered.
	subjectID := uuid.New()
	shared := uuid.New()

	attachments := []MilestoneOutcome{
		{SubjectID: subjectID, MilestoneID: uuid.New(), OutcomeID: shared},
		{SubjectID: subjectID, MilestoneID: uuid.New(), OutcomeID: shared},
	}

	m := ComputeMetrics(attachments, []uuid.UUID{shared}, nil)
	assert.Equal(t, 2, m.TotalOutcomes)
	assert.Equal(t, 1, m.CoveredOutcomes)
	assert.Equal(t, 1, m.UncoveredOutcomes)
	assert.InDelta(t, 50.0, m.CoveragePercentage, 0.01)
}

func TestComputeMetrics_CoveredOutsideSelectionIgnored(t *testing.T) {
	subjectID := uuid.New()
	o1 := uuid.New()
	foreign := uuid.New()

	attachments := []MilestoneOutcome{
		{SubjectID: subjectID, MilestoneID: uuid.New(), OutcomeID: o1},
	}

	m := ComputeMetrics(attachments, []uuid.UUID{foreign}, nil)
	assert.Equal(t, 1, m.TotalOutcomes)
	assert.Zero(t, m.CoveredOutcomes)
	assert.Equal(t, 1, m.UncoveredOutcomes)
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil, nil, nil)
	assert.Zero(t, m.TotalOutcomes)
	assert.Zero(t, m.CoveragePercentage)
}

func TestOutcomeCoverageRecord_LastUsed(t *testing.T) {
	now := time.Now()
	r := record("FR.1", 1, false)
	r.LastUsed = &now
	assert.Equal(t, StatusNeutral, Classify(r, DefaultOverusedThreshold))
}
