package lti

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/golang/glog"
	"github.com/jinzhu/gorm"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
)

type Manage struct {
	DB         *gorm.DB
	Sessions   SessionStore
	Repository HubRepository
	Terms      CurrentTermGetter
}

// @Summary Course detail with status history and configurations
// @Description Return the full course record, its configuration history and whether a new request may be submitted
// @Tags Manage
// @Produce  json
// @Param X-Session-Id header string true "launch session id"
// @Success 200 {object} docs.ManageResponse
// @Failure 401 {object} docs.GenericErrorResponse
// @Failure 404 {object} docs.GenericErrorResponse
// @Failure 500 {object} docs.GenericErrorResponse
// @Router /manage/ [get]
func (m *Manage) Get(c *gin.Context) {
	session, err := loadSession(m.Sessions, c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "%s", err.Error())
		return
	}

	resp := model.ManageResponse{
		Error:      false,
		Configs:    []rttl.CourseConfiguration{},
		CanRequest: canRequestHub(m.Terms, session.SisCourseID),
	}

	detail, err := m.Repository.GetCourseDetails(session.SisCourseID)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	// no remote record yet, the manage view only offers the request form
	if detail == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	course, err := rttl.CourseDetailFromAPIData(detail)
	if err != nil {
		log.Errorf("Unexpected course detail for {%s}: %s", session.SisCourseID, err.Error())
		RespondWithError(c, http.StatusInternalServerError, "Unexpected course detail: %s", err.Error())
		return
	}
	resp.Course = course
	resp.Quarter = course.QuarterDisplayName()

	configsData, err := m.Repository.GetCourseConfigs(session.SisCourseID)
	if err != nil {
		respondAPIError(c, err)
		return
	}
	for _, data := range configsData {
		config, err := rttl.CourseConfigurationFromAPIData(data)
		if err != nil {
			log.Errorf("Unexpected configuration for {%s}: %s", session.SisCourseID, err.Error())
			RespondWithError(c, http.StatusInternalServerError, "Unexpected configuration: %s", err.Error())
			return
		}
		resp.Configs = append(resp.Configs, *config)
	}

	mirrorCourseDetail(m.DB, course)

	c.JSON(http.StatusOK, resp)
}
