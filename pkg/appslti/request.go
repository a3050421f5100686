package lti

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	log "github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/uw-it-aca/rttl-info-lti/pkg/consts"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/common"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/db"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/form"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
	"github.com/uw-it-aca/rttl-info-lti/pkg/util"
)

type Request struct {
	DB         *gorm.DB
	Sessions   SessionStore
	Client     StatusSubmitter
	Repository HubRepository
	Terms      CurrentTermGetter
}

// @Summary Hub request form
// @Description Return the request form, pre-filled from the newest configuration when one exists
// @Tags Request
// @Produce  json
// @Param X-Session-Id header string true "launch session id"
// @Success 200 {object} docs.RequestFormResponse
// @Failure 401 {object} docs.GenericErrorResponse
// @Failure 500 {object} docs.GenericErrorResponse
// @Router /request/ [get]
func (r *Request) GetForm(c *gin.Context) {
	session, err := loadSession(r.Sessions, c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "%s", err.Error())
		return
	}

	configsData, err := r.Repository.GetCourseConfigs(session.SisCourseID)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	f := &form.CourseConfigurationForm{}
	if latest := latestConfiguration(configsData); latest != nil {
		f = form.FromConfiguration(latest)
	}
	if err := f.Validate(); err != nil {
		log.Errorf("Pre-filled form for {%s} invalid: %s", session.SisCourseID, err.Error())
		RespondWithError(c, http.StatusInternalServerError, "Pre-filled form invalid: %s", err.Error())
		return
	}

	c.JSON(http.StatusOK, model.RequestFormResponse{
		Error:          false,
		Form:           f,
		CPUChoices:     resourceChoices(form.CPUChoices, "CPU"),
		MemoryChoices:  resourceChoices(form.MemoryChoices, "GB RAM"),
		StorageChoices: resourceChoices(form.StorageChoices, "GB storage"),
		ImageChoices:   imageChoices(),
		CanRequest:     canRequestHub(r.Terms, session.SisCourseID),
	})
}

// @Summary Submit a hub request
// @Description Validate the form and submit a requested status to the provisioning service
// @Tags Request
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param X-Session-Id header string true "launch session id"
// @Success 200 {object} docs.RequestSubmitResponse
// @Failure 400 {object} docs.GenericErrorResponse
// @Failure 401 {object} docs.GenericErrorResponse
// @Failure 403 {object} docs.GenericErrorResponse
// @Failure 404 {object} docs.GenericErrorResponse
// @Failure 500 {object} docs.GenericErrorResponse
// @Router /request/ [post]
func (r *Request) Submit(c *gin.Context) {
	session, err := loadSession(r.Sessions, c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "%s", err.Error())
		return
	}

	sisCourseID, _, err := util.ValidateSourceSIS(session.SisCourseID)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "%s", err.Error())
		return
	}

	if !canRequestHub(r.Terms, sisCourseID) {
		RespondWithError(c, http.StatusForbidden,
			"the term for {%s} has ended, a hub can no longer be requested", sisCourseID)
		return
	}

	var f form.CourseConfigurationForm
	if err := c.ShouldBind(&f); err != nil {
		log.Errorf("Failed to parse request form: %s", err.Error())
		RespondWithError(c, http.StatusBadRequest, "Failed to parse request form: %s", err.Error())
		return
	}

	config, err := f.ToConfiguration()
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "%s", err.Error())
		return
	}

	update := &rttl.CourseStatusUpdate{
		SisCourseID:   sisCourseID,
		Status:        rttl.StatusRequested,
		AutoCreate:    true,
		Message:       fmt.Sprintf("JupyterHub requested by %s", session.LoginID),
		Configuration: config,
		Name:          session.CourseTitle,
		StatusAddedBy: session.Email,
		HubAdmins:     append([]string{session.LoginID}, f.HubAdminsList()...),
	}

	if _, err := r.Client.CreateOrUpdateCourseStatus(update); err != nil {
		respondAPIError(c, err)
		return
	}

	r.audit(session, config, update.Message)

	c.JSON(http.StatusOK, model.RequestSubmitResponse{
		GenericResponse: model.GenericResponse{
			Error:   false,
			Message: "hub request submitted",
		},
		Status: rttl.StatusRequested,
	})
}

// audit records the submitted request locally. Best effort, a failed write
// never fails the request itself.
func (r *Request) audit(session *model.LaunchSession, config *rttl.CourseConfiguration, message string) {
	if r.DB == nil {
		return
	}
	entry := &db.HubRequestAudit{
		Model:         db.Model{ID: uuid.New().String()},
		SisCourseID:   session.SisCourseID,
		RequestedBy:   session.Email,
		Status:        rttl.StatusRequested,
		Message:       message,
		Configuration: auditConfiguration(config),
	}
	if err := entry.NewEntry(r.DB); err != nil {
		log.Warningf("audit hub request for {%s} fail: %s", session.SisCourseID, err.Error())
	}
}

// latestConfiguration picks the newest parseable configuration by create
// timestamp. Records without a timestamp never win over dated ones.
func latestConfiguration(configsData []map[string]interface{}) *rttl.CourseConfiguration {
	var latest *rttl.CourseConfiguration
	for _, data := range configsData {
		config, err := rttl.CourseConfigurationFromAPIData(data)
		if err != nil {
			log.Warningf("skip unparseable configuration: %s", err.Error())
			continue
		}
		if latest == nil {
			latest = config
			continue
		}
		if config.CreateTimestamp == nil {
			continue
		}
		if latest.CreateTimestamp == nil || latest.CreateTimestamp.Before(*config.CreateTimestamp) {
			latest = config
		}
	}
	return latest
}

func resourceChoices(values []string, unit string) []common.LabelValue {
	choices := []common.LabelValue{}
	for _, v := range values {
		choices = append(choices, common.LabelValue{
			Label: fmt.Sprintf("%s %s", v, unit),
			Value: v,
		})
	}
	return choices
}

func imageChoices() []common.LabelValue {
	names := []string{}
	for name := range consts.ImageCatalog {
		names = append(names, name)
	}
	sort.Strings(names)

	choices := []common.LabelValue{}
	for _, name := range names {
		choices = append(choices, common.LabelValue{Label: name, Value: name})
	}
	choices = append(choices, common.LabelValue{Label: "custom image", Value: "custom"})
	return choices
}
