package lti

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/golang/glog"
	"github.com/jinzhu/gorm"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/db"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
	"github.com/uw-it-aca/rttl-info-lti/pkg/rttlapi"
	"github.com/uw-it-aca/rttl-info-lti/pkg/util"
)

// HubRepository is the slice of the course repository the handlers use.
type HubRepository interface {
	GetCourseStatus(sisCourseID string) ([]map[string]interface{}, error)
	GetCourseDetails(sisCourseID string) (map[string]interface{}, error)
	GetCourseConfigs(sisCourseID string) ([]map[string]interface{}, error)
}

// StatusSubmitter is the slice of the API client the request handler uses.
type StatusSubmitter interface {
	CreateOrUpdateCourseStatus(update *rttl.CourseStatusUpdate) (map[string]interface{}, error)
}

// CurrentTermGetter provides the current academic term for eligibility checks.
type CurrentTermGetter interface {
	GetCurrentTerm(useCache bool) (*util.CurrentTerm, error)
}

func RespondWithError(c *gin.Context, code int, format string, args ...interface{}) {
	resp := genericResponse(true, format, args...)
	c.JSON(code, resp)
	c.Abort()
}

func RespondWithOk(c *gin.Context, format string, args ...interface{}) {
	resp := genericResponse(false, format, args...)
	c.JSON(http.StatusOK, resp)
	c.Abort()
}

func genericResponse(isError bool, format string, args ...interface{}) model.GenericResponse {
	resp := model.GenericResponse{
		Error:   isError,
		Message: fmt.Sprintf(format, args...),
	}
	return resp
}

// respondAPIError maps a failed remote call to a response. Remote 400 and 404
// pass through with their status, everything else is a server error here.
func respondAPIError(c *gin.Context, err error) {
	apiErr := &rttlapi.APIError{}
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			RespondWithError(c, http.StatusNotFound, "course not found: %s", apiErr.Message)
			return
		case http.StatusBadRequest:
			RespondWithError(c, http.StatusBadRequest, "%s", apiErr.Message)
			return
		}
	}
	log.Errorf("RTTL API call fail: %s", err.Error())
	RespondWithError(c, http.StatusInternalServerError, "RTTL API call fail: %s", err.Error())
}

// hubStatusFromCourses summarizes a course list response for one SIS id,
// returning the parsed course alongside for mirroring.
func hubStatusFromCourses(sisCourseID string, courses []map[string]interface{}) (*model.HubStatus, *rttl.Course, error) {
	if len(courses) == 0 {
		return &model.HubStatus{SisCourseID: sisCourseID}, nil, nil
	}

	course, err := rttl.CourseFromAPIData(courses[0])
	if err != nil {
		return nil, nil, err
	}

	status := &model.HubStatus{
		Exists:      true,
		SisCourseID: course.SisCourseID,
		HubURL:      course.HubURL,
		LastChanged: course.LastChanged,
	}
	if course.LatestStatus != nil {
		status.Status = course.LatestStatus.Status
		status.StatusName = course.LatestStatus.StatusDisplayName()
		status.HubDeployed = course.LatestStatus.HubDeployed
		status.StatusMessage = course.LatestStatus.Message
	}
	return status, course, nil
}

// canRequestHub decides whether the request form is open for a course. A
// failed term lookup degrades to the year-only check rather than blocking.
func canRequestHub(terms CurrentTermGetter, sisCourseID string) bool {
	var current *util.CurrentTerm
	if terms != nil {
		term, err := terms.GetCurrentTerm(true)
		if err != nil {
			log.Warningf("get current term fail: %s", err.Error())
		} else {
			current = term
		}
	}
	return util.CourseEligibility(sisCourseID, time.Now(), current)
}

// mirrorCourse refreshes the local mirror tables from a course record. The
// mirror is best effort, failures are logged and never surface to the caller.
func mirrorCourse(DB *gorm.DB, course *rttl.Course) {
	if DB == nil || course == nil {
		return
	}

	row := &db.Course{
		Name:          course.Name,
		CourseYear:    course.CourseYear,
		CourseQuarter: course.CourseQuarter,
		SisCourseID:   course.SisCourseID,
		HubURL:        course.HubURL,
	}
	if course.LastChanged != nil {
		row.LastChanged = *course.LastChanged
	}
	if err := row.Upsert(DB); err != nil {
		log.Warningf("mirror course {%s} fail: %s", course.SisCourseID, err.Error())
		return
	}

	if course.LatestStatus == nil || course.LatestStatus.StatusAdded == nil {
		return
	}
	latest, err := row.LatestStatus(DB)
	if err != nil {
		log.Warningf("read mirrored status for {%s} fail: %s", course.SisCourseID, err.Error())
		return
	}
	if latest != nil && !latest.StatusAdded.Before(*course.LatestStatus.StatusAdded) {
		return
	}

	status := &db.CourseStatus{
		CourseID:    row.ID,
		Status:      course.LatestStatus.Status,
		HubDeployed: course.LatestStatus.HubDeployed,
		Message:     course.LatestStatus.Message,
		StatusAdded: *course.LatestStatus.StatusAdded,
	}
	if course.LatestStatus.Configuration != nil {
		if err := status.SetConfiguration(course.LatestStatus.Configuration.ToAPIData()); err != nil {
			log.Warningf("encode mirrored configuration for {%s} fail: %s", course.SisCourseID, err.Error())
		}
	}
	if err := DB.Create(status).Error; err != nil {
		log.Warningf("mirror status for {%s} fail: %s", course.SisCourseID, err.Error())
	}
}

// mirrorCourseDetail mirrors the detail view, folding the newest history entry
// into the latest-status slot.
func mirrorCourseDetail(DB *gorm.DB, detail *rttl.CourseDetail) {
	if DB == nil || detail == nil {
		return
	}

	course := &rttl.Course{
		ID:            detail.ID,
		Name:          detail.Name,
		CourseYear:    detail.CourseYear,
		CourseQuarter: detail.CourseQuarter,
		SisCourseID:   detail.SisCourseID,
		HubURL:        detail.HubURL,
		LastChanged:   detail.LastChanged,
	}
	if n := len(detail.Statuses); n > 0 {
		course.LatestStatus = &detail.Statuses[n-1]
	}
	mirrorCourse(DB, course)
}

func auditConfiguration(config *rttl.CourseConfiguration) string {
	if config == nil {
		return ""
	}
	data, err := json.Marshal(config.ToAPIData())
	if err != nil {
		log.Warningf("encode audit configuration fail: %s", err.Error())
		return ""
	}
	return string(data)
}
