package rttl

// Records in this file are the request side of the API: they are built by the
// application and serialized with ToAPIData, never parsed from responses.

// CourseCreate is the payload for creating a course.
type CourseCreate struct {
	Name          string `json:"name"`
	CourseYear    int    `json:"course_year"`
	CourseQuarter int    `json:"course_quarter"`
	SisCourseID   string `json:"sis_course_id"`
	HubURL        string `json:"hub_url"`
}

func (c *CourseCreate) ToAPIData() map[string]interface{} {
	return map[string]interface{}{
		"name":           c.Name,
		"course_year":    c.CourseYear,
		"course_quarter": c.CourseQuarter,
		"sis_course_id":  c.SisCourseID,
		"hub_url":        c.HubURL,
	}
}

// CourseStatusCreate is the payload for appending a status to an existing
// course.
type CourseStatusCreate struct {
	Course        int                  `json:"course"`
	Status        string               `json:"status"`
	HubDeployed   bool                 `json:"hub_deployed"`
	Message       string               `json:"message"`
	Configuration *CourseConfiguration `json:"configuration"`
}

func (s *CourseStatusCreate) ToAPIData() map[string]interface{} {
	data := map[string]interface{}{
		"course":       s.Course,
		"status":       s.Status,
		"hub_deployed": s.HubDeployed,
		"message":      s.Message,
	}
	if s.Configuration != nil {
		data["configuration"] = s.Configuration.ToAPIData()
	}
	return data
}

// CourseStatusUpdate is the payload for the combined upsert endpoint: it
// addresses the course by SIS id and may create it when auto_create is set.
// course_year and course_quarter are not part of the payload; the service
// derives them from the SIS id.
type CourseStatusUpdate struct {
	SisCourseID   string               `json:"sis_course_id"`
	Status        string               `json:"status"`
	AutoCreate    bool                 `json:"auto_create"`
	HubDeployed   bool                 `json:"hub_deployed"`
	Message       string               `json:"message"`
	Configuration *CourseConfiguration `json:"configuration"`
	Name          string               `json:"name"`
	HubURL        string               `json:"hub_url"`
	StatusAddedBy string               `json:"status_added_by"`
	HubAdmins     []string             `json:"hub_admins"`
}

func (u *CourseStatusUpdate) ToAPIData() map[string]interface{} {
	data := map[string]interface{}{
		"sis_course_id":   u.SisCourseID,
		"status":          u.Status,
		"auto_create":     u.AutoCreate,
		"hub_deployed":    u.HubDeployed,
		"message":         u.Message,
		"name":            u.Name,
		"hub_url":         u.HubURL,
		"status_added_by": u.StatusAddedBy,
		"hub_admins":      u.HubAdmins,
	}
	if u.Configuration != nil {
		data["configuration"] = u.Configuration.ToAPIData()
	}
	return data
}
