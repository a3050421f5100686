package lti

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/golang/glog"
	"github.com/jinzhu/gorm"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model"
	"github.com/uw-it-aca/rttl-info-lti/pkg/util"
)

type Launch struct {
	DB         *gorm.DB
	Sessions   SessionStore
	Repository HubRepository
}

// @Summary Handle an LTI launch from Canvas
// @Description Validate the launch, create a session and return the current hub status for the course
// @Tags Launch
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Success 200 {object} docs.LaunchResponse
// @Failure 400 {object} docs.GenericErrorResponse
// @Failure 403 {object} docs.GenericErrorResponse
// @Failure 500 {object} docs.GenericErrorResponse
// @Router / [post]
func (l *Launch) Launch(c *gin.Context) {
	var req model.LaunchRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Errorf("Failed to parse launch request: %s", err.Error())
		RespondWithError(c, http.StatusBadRequest, "Failed to parse launch request: %s", err.Error())
		return
	}

	sisCourseID, _, err := util.ValidateSourceSIS(req.SisCourseID)
	if err != nil {
		log.Errorf("Launch with invalid SIS course id {%s}: %s", req.SisCourseID, err.Error())
		RespondWithError(c, http.StatusBadRequest, "%s", err.Error())
		return
	}

	if !req.IsInstructor() {
		RespondWithError(c, http.StatusForbidden, "this tool is limited to course instructors")
		return
	}

	session := newSession(&req)
	if err := l.Sessions.Save(session); err != nil {
		log.Errorf("Save launch session fail: %s", err.Error())
		RespondWithError(c, http.StatusInternalServerError, "Save launch session fail: %s", err.Error())
		return
	}

	courses, err := l.Repository.GetCourseStatus(sisCourseID)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	status, course, err := hubStatusFromCourses(sisCourseID, courses)
	if err != nil {
		log.Errorf("Unexpected course record for {%s}: %s", sisCourseID, err.Error())
		RespondWithError(c, http.StatusInternalServerError, "Unexpected course record: %s", err.Error())
		return
	}
	mirrorCourse(l.DB, course)

	c.JSON(http.StatusOK, model.LaunchResponse{
		Error:       false,
		SessionID:   session.ID,
		SisCourseID: sisCourseID,
		CourseTitle: req.CourseTitle,
		Status:      status,
	})
}
