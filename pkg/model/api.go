package model

import (
	"strings"
	"time"

	"github.com/uw-it-aca/rttl-info-lti/pkg/model/common"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/form"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
)

type GenericResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthDatabaseResponse struct {
	GenericResponse
	Tables []string `json:"tables"`
}

type HealthRedisResponse struct {
	GenericResponse
}

// LaunchRequest binds the subset of the LTI launch POST this tool consumes.
type LaunchRequest struct {
	UserID      string `form:"user_id" json:"user_id"`
	LoginID     string `form:"custom_canvas_user_login_id" json:"custom_canvas_user_login_id"`
	Email       string `form:"lis_person_contact_email_primary" json:"lis_person_contact_email_primary"`
	FullName    string `form:"lis_person_name_full" json:"lis_person_name_full"`
	SisCourseID string `form:"lis_course_offering_sourcedid" json:"lis_course_offering_sourcedid"`
	CourseTitle string `form:"context_title" json:"context_title"`
	Roles       string `form:"roles" json:"roles"`
}

// IsInstructor reports whether the launch roles grant access to this tool.
// Roles arrive as a comma-separated list of LIS role URNs or bare names.
func (r *LaunchRequest) IsInstructor() bool {
	for _, role := range strings.Split(r.Roles, ",") {
		role = strings.TrimSpace(role)
		if strings.HasSuffix(role, "Instructor") || strings.HasSuffix(role, "TeachingAssistant") {
			return true
		}
	}
	return false
}

// LaunchSession is the launch context stored in redis between the launch POST
// and the subsequent hub-data/manage/request calls.
type LaunchSession struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	LoginID     string    `json:"login_id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	SisCourseID string    `json:"sis_course_id"`
	CourseTitle string    `json:"course_title"`
	CreatedAt   time.Time `json:"created_at"`
}

// HubStatus is the per-course summary shared by the launch and hub-data
// responses. Exists is false when the remote service has no record of the
// course yet.
type HubStatus struct {
	Exists        bool       `json:"exists"`
	SisCourseID   string     `json:"sis_course_id"`
	Status        string     `json:"status"`
	StatusName    string     `json:"status_name"`
	HubDeployed   bool       `json:"hub_deployed"`
	HubURL        string     `json:"hub_url"`
	LastChanged   *time.Time `json:"last_changed"`
	StatusMessage string     `json:"status_message"`
}

type LaunchResponse struct {
	Error       bool       `json:"error"`
	SessionID   string     `json:"session_id"`
	SisCourseID string     `json:"sis_course_id"`
	CourseTitle string     `json:"course_title"`
	Status      *HubStatus `json:"status"`
}

type HubDataResponse struct {
	Error  bool       `json:"error"`
	Status *HubStatus `json:"status"`
}

type ManageResponse struct {
	Error      bool                       `json:"error"`
	Course     *rttl.CourseDetail         `json:"course"`
	Quarter    string                     `json:"quarter"`
	Configs    []rttl.CourseConfiguration `json:"configs"`
	CanRequest bool                       `json:"can_request"`
}

type RequestFormResponse struct {
	Error          bool                          `json:"error"`
	Form           *form.CourseConfigurationForm `json:"form"`
	CPUChoices     []common.LabelValue           `json:"cpu_choices"`
	MemoryChoices  []common.LabelValue           `json:"memory_choices"`
	StorageChoices []common.LabelValue           `json:"storage_choices"`
	ImageChoices   []common.LabelValue           `json:"image_choices"`
	CanRequest     bool                          `json:"can_request"`
}

type RequestSubmitResponse struct {
	GenericResponse
	Status string `json:"status"`
}
