package rttl

import "time"

// QuarterNames maps course_quarter values to display names. The numbering is
// fixed by the SIS calendar.
var QuarterNames = map[int]string{
	1: "Winter",
	2: "Spring",
	3: "Summer",
	4: "Autumn",
}

// Course is the list view of a course that may have a JupyterHub.
type Course struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	CourseYear     int           `json:"course_year"`
	CourseQuarter  int           `json:"course_quarter"`
	SisCourseID    string        `json:"sis_course_id"`
	HubURL         string        `json:"hub_url"`
	LastChanged    *time.Time    `json:"last_changed"`
	InAdminCourses bool          `json:"in_admin_courses"`
	LatestStatus   *CourseStatus `json:"latest_status"`
	HubAdmins      []string      `json:"hub_admins"`
}

// QuarterDisplayName returns the display name for the course quarter.
func (c *Course) QuarterDisplayName() string {
	if name, ok := QuarterNames[c.CourseQuarter]; ok {
		return name
	}
	return "Unknown"
}

func CourseFromAPIData(data map[string]interface{}) (*Course, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	name, err := requireString(data, "name")
	if err != nil {
		return nil, err
	}
	year, err := requireInt(data, "course_year")
	if err != nil {
		return nil, err
	}
	quarter, err := requireInt(data, "course_quarter")
	if err != nil {
		return nil, err
	}
	sisCourseID, err := requireString(data, "sis_course_id")
	if err != nil {
		return nil, err
	}
	hubURL, err := requireString(data, "hub_url")
	if err != nil {
		return nil, err
	}

	var latestStatus *CourseStatus
	if statusData := optMap(data, "latest_status"); statusData != nil {
		latestStatus, err = CourseStatusFromAPIData(statusData)
		if err != nil {
			return nil, err
		}
	}

	lastChanged, err := ParseAPIDatetime(data["last_changed"])
	if err != nil {
		return nil, err
	}

	return &Course{
		ID:             id,
		Name:           name,
		CourseYear:     year,
		CourseQuarter:  quarter,
		SisCourseID:    sisCourseID,
		HubURL:         hubURL,
		LastChanged:    lastChanged,
		InAdminCourses: optBool(data, "in_admin_courses", false),
		LatestStatus:   latestStatus,
		HubAdmins:      optStringSlice(data, "hub_admins"),
	}, nil
}

// CourseDetail is the detail view of a course, carrying the full chronological
// status history. The most recent status determines the current state.
type CourseDetail struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	CourseYear     int            `json:"course_year"`
	CourseQuarter  int            `json:"course_quarter"`
	SisCourseID    string         `json:"sis_course_id"`
	HubURL         string         `json:"hub_url"`
	LastChanged    *time.Time     `json:"last_changed"`
	InAdminCourses bool           `json:"in_admin_courses"`
	Statuses       []CourseStatus `json:"statuses"`
	HubAdmins      []string       `json:"hub_admins"`
}

func (c *CourseDetail) QuarterDisplayName() string {
	if name, ok := QuarterNames[c.CourseQuarter]; ok {
		return name
	}
	return "Unknown"
}

func CourseDetailFromAPIData(data map[string]interface{}) (*CourseDetail, error) {
	id, err := requireInt(data, "id")
	if err != nil {
		return nil, err
	}
	name, err := requireString(data, "name")
	if err != nil {
		return nil, err
	}
	year, err := requireInt(data, "course_year")
	if err != nil {
		return nil, err
	}
	quarter, err := requireInt(data, "course_quarter")
	if err != nil {
		return nil, err
	}
	sisCourseID, err := requireString(data, "sis_course_id")
	if err != nil {
		return nil, err
	}
	hubURL, err := requireString(data, "hub_url")
	if err != nil {
		return nil, err
	}

	statuses := []CourseStatus{}
	for _, statusData := range optMapSlice(data, "statuses") {
		status, err := CourseStatusFromAPIData(statusData)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, *status)
	}

	lastChanged, err := ParseAPIDatetime(data["last_changed"])
	if err != nil {
		return nil, err
	}

	return &CourseDetail{
		ID:             id,
		Name:           name,
		CourseYear:     year,
		CourseQuarter:  quarter,
		SisCourseID:    sisCourseID,
		HubURL:         hubURL,
		LastChanged:    lastChanged,
		InAdminCourses: optBool(data, "in_admin_courses", false),
		Statuses:       statuses,
		HubAdmins:      optStringSlice(data, "hub_admins"),
	}, nil
}
