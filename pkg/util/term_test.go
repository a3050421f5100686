package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
)

func TestValidateSourceSIS(t *testing.T) {
	id, sis, err := ValidateSourceSIS("2025-spring-BANA-310-B")
	require.NoError(t, err)

	// valid ids are returned unchanged
	assert.Equal(t, "2025-spring-BANA-310-B", id)
	assert.Equal(t, 2025, sis.Year)
	assert.Equal(t, "spring", sis.Quarter)
	assert.Equal(t, "BANA", sis.Curriculum)
	assert.Equal(t, "310-B", sis.Section)
}

func TestValidateSourceSISCurriculumWithAmpersand(t *testing.T) {
	_, sis, err := ValidateSourceSIS("2024-spring-ENGL & COM-101-A")
	require.NoError(t, err)
	assert.Equal(t, "ENGL & COM", sis.Curriculum)
}

func TestValidateSourceSISRejects(t *testing.T) {
	invalid := []string{
		"",                          // empty
		"25-spring-BANA-310-B",      // wrong year width
		"2025-fall-BANA-310-B",      // bad quarter name
		"2025-spring-BANA",          // missing trailing segment
		"2025-spring-bana-310-B",    // lowercase curriculum
		"spring-2025-BANA-310-B",    // wrong order
	}

	for _, id := range invalid {
		_, _, err := ValidateSourceSIS(id)
		require.Error(t, err, "expected {%s} to be rejected", id)

		var invalidErr *rttl.ValidationError
		assert.ErrorAs(t, err, &invalidErr)
	}
}

func TestGetTermFromString(t *testing.T) {
	for term, expected := range map[string]int{
		"1": 1, "4": 4,
		"winter": 1, "win": 1, "wi": 1,
		"spring": 2, "Spring": 2, "sp": 2,
		"summer": 3, "autumn": 4, "aut": 4,
	} {
		n, err := GetTermFromString(term)
		require.NoError(t, err)
		assert.Equal(t, expected, n, "term %s", term)
	}

	_, err := GetTermFromString("5")
	assert.Error(t, err)
	_, err = GetTermFromString("fall")
	assert.Error(t, err)
}

func TestCourseEligibility(t *testing.T) {
	now := time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)
	current := &CurrentTerm{Year: 2025, Quarter: "spring"}

	// future year is eligible without consulting the current term
	assert.True(t, CourseEligibility("2026-winter-BANA-310-B", now, nil))

	// current term is eligible
	assert.True(t, CourseEligibility("2025-spring-BANA-310-B", now, current))

	// later quarter in the current year is eligible
	assert.True(t, CourseEligibility("2025-autumn-BANA-310-B", now, current))

	// past year and past quarter are not
	assert.False(t, CourseEligibility("2024-autumn-BANA-310-B", now, current))
	assert.False(t, CourseEligibility("2025-winter-BANA-310-B", now, current))

	// invalid ids are simply ineligible
	assert.False(t, CourseEligibility("not-a-course", now, current))
}
