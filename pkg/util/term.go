package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	log "github.com/golang/glog"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
)

// Cannot find a canonical source for allowed characters in curriculum codes,
// but a review of the SIS curriculum table shows only A-Z, & and space in use.
// Non-standard ids are possible for non-canvas courses, irrelevant here.
var courseSisRegex = regexp.MustCompile(`^([0-9]{4})-(autumn|winter|spring|summer)-([A-Z& ]+)-(.*)$`)

// SourceSIS is the parsed form of a validated SIS course id.
type SourceSIS struct {
	Year       int
	Quarter    string
	Curriculum string
	Section    string
}

// ValidateSourceSIS checks a SIS course id against the required pattern and
// returns the id unchanged along with its parsed parts.
func ValidateSourceSIS(sourceSis string) (string, *SourceSIS, error) {
	if sourceSis == "" {
		return "", nil, &rttl.ValidationError{
			Field:   "sis_course_id",
			Message: "source SIS ID cannot be empty",
		}
	}

	groups := courseSisRegex.FindStringSubmatch(sourceSis)
	if groups == nil {
		return "", nil, &rttl.ValidationError{
			Field:   "sis_course_id",
			Message: fmt.Sprintf("invalid source SIS ID format: {%s}", sourceSis),
		}
	}

	year, err := strconv.Atoi(groups[1])
	if err != nil {
		return "", nil, &rttl.ValidationError{
			Field:   "sis_course_id",
			Message: fmt.Sprintf("invalid year in source SIS ID: {%s}", sourceSis),
		}
	}

	return sourceSis, &SourceSIS{
		Year:       year,
		Quarter:    groups[2],
		Curriculum: groups[3],
		Section:    groups[4],
	}, nil
}

// GetTermFromString converts a term label to its quarter number. Accepts the
// numbers 1-4 and the quarter names with their common abbreviations.
func GetTermFromString(term string) (int, error) {
	if n, err := strconv.Atoi(term); err == nil {
		if n < 1 || n > 4 {
			return 0, fmt.Errorf("term must be between 1 and 4, got %d", n)
		}
		return n, nil
	}

	switch strings.ToLower(term) {
	case "winter", "win", "wi":
		return 1, nil
	case "spring", "spr", "sp":
		return 2, nil
	case "summer", "sum", "su":
		return 3, nil
	case "autumn", "aut", "au":
		return 4, nil
	}
	return 0, fmt.Errorf("invalid term string: %s", term)
}

// CurrentTerm is the year/quarter pair the eligibility check compares
// against, usually fetched from the student web service.
type CurrentTerm struct {
	Year    int
	Quarter string
}

// CourseEligibility determines if a course can still request a hub based on
// the term and year in its SIS id. This is a naive check, it does not cover
// policy requirements like enrollments.
func CourseEligibility(courseSis string, now time.Time, current *CurrentTerm) bool {
	log.V(2).Infof("Checking course eligibility for SIS ID: %s", courseSis)

	_, sis, err := ValidateSourceSIS(courseSis)
	if err != nil {
		return false
	}
	courseTerm, err := GetTermFromString(sis.Quarter)
	if err != nil {
		return false
	}

	if sis.Year > now.Year() {
		// future year, no need to consult the current term
		return true
	}
	if current == nil {
		return false
	}
	if sis.Year < current.Year {
		return false
	}
	currentTerm, err := GetTermFromString(current.Quarter)
	if err != nil {
		return false
	}
	if sis.Year == current.Year && courseTerm < currentTerm {
		return false
	}
	return true
}
