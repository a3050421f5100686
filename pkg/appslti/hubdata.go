package lti

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/golang/glog"
	"github.com/jinzhu/gorm"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model"
	"github.com/uw-it-aca/rttl-info-lti/pkg/util"
)

type HubData struct {
	DB         *gorm.DB
	Sessions   SessionStore
	Repository HubRepository
}

// @Summary Current hub status for the launched course
// @Description Return the provisioning status summary the launch page polls for
// @Tags HubData
// @Produce  json
// @Param X-Session-Id header string true "launch session id"
// @Param sis_course_id query string false "override the session course id"
// @Success 200 {object} docs.HubDataResponse
// @Failure 400 {object} docs.GenericErrorResponse
// @Failure 401 {object} docs.GenericErrorResponse
// @Failure 404 {object} docs.GenericErrorResponse
// @Failure 500 {object} docs.GenericErrorResponse
// @Router /api/hub-data/ [get]
func (h *HubData) Get(c *gin.Context) {
	session, err := loadSession(h.Sessions, c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "%s", err.Error())
		return
	}

	sisCourseID := session.SisCourseID
	if override := c.Query("sis_course_id"); override != "" {
		if sisCourseID, _, err = util.ValidateSourceSIS(override); err != nil {
			RespondWithError(c, http.StatusBadRequest, "%s", err.Error())
			return
		}
	}

	courses, err := h.Repository.GetCourseStatus(sisCourseID)
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
	mirrorCourse(h.DB, course)

	c.JSON(http.StatusOK, model.HubDataResponse{
		Error:  false,
		Status: status,
	})
}
