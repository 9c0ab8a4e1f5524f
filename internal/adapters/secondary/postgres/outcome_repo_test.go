package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeOrderBy_WhitelistedColumn(t *testing.T) {
	assert.Equal(t, "o.grade ASC", outcomeOrderBy("grade", ""))
	assert.Equal(t, "o.created_at DESC", outcomeOrderBy("created_at", "desc"))
}

func TestOutcomeOrderBy_DefaultsWhenEmpty(t *testing.T) {
	assert.Equal(t, "o.code ASC", outcomeOrderBy("", ""))
}

func TestOutcomeOrderBy_RejectsUnknownColumn(t *testing.T) {
	injected := "(CASE WHEN (SELECT count(*) FROM student)>0 THEN code END)"
	got := outcomeOrderBy(injected, "desc")

	assert.Equal(t, "o.code ASC", got)
	assert.NotContains(t, got, "SELECT")
}

func TestOutcomeOrderBy_RejectsDirectionSmuggling(t *testing.T) {
	// order is constrained to ASC/DESC even for valid columns
	assert.Equal(t, "o.code ASC", outcomeOrderBy("code", "desc; DROP TABLE outcome"))
}
