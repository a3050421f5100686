package rttl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseData() map[string]interface{} {
	return map[string]interface{}{
		"id":             float64(42),
		"name":           "Intro to Data Science",
		"course_year":    float64(2025),
		"course_quarter": float64(2),
		"sis_course_id":  "2025-spring-BANA-310-B",
		"hub_url":        "https://jupyter.rttl.uw.edu/2025-spring-BANA-310-B",
		"last_changed":   "2025-04-01T10:30:00Z",
		"latest_status": map[string]interface{}{
			"id":           float64(7),
			"status":       "deployed",
			"hub_deployed": true,
			"message":      "hub is up",
			"course":       float64(42),
		},
		"hub_admins": []interface{}{"javerage", "jbothell"},
	}
}

func TestCourseFromAPIData(t *testing.T) {
	course, err := CourseFromAPIData(courseData())
	require.NoError(t, err)

	assert.Equal(t, 42, course.ID)
	assert.Equal(t, "2025-spring-BANA-310-B", course.SisCourseID)
	assert.Equal(t, "Spring", course.QuarterDisplayName())
	assert.Equal(t, []string{"javerage", "jbothell"}, course.HubAdmins)

	// last_changed has a trailing Z, normalized to an explicit UTC offset
	require.NotNil(t, course.LastChanged)
	assert.Equal(t, time.UTC, course.LastChanged.Location())

	require.NotNil(t, course.LatestStatus)
	assert.Equal(t, "Deployed", course.LatestStatus.StatusDisplayName())
	assert.True(t, course.LatestStatus.HubDeployed)
}

func TestCourseMissingRequiredField(t *testing.T) {
	data := courseData()
	delete(data, "sis_course_id")

	_, err := CourseFromAPIData(data)
	require.Error(t, err)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "sis_course_id", missing.Field)
}

func TestCourseOptionalDefaults(t *testing.T) {
	data := courseData()
	delete(data, "latest_status")
	delete(data, "hub_admins")
	delete(data, "last_changed")

	course, err := CourseFromAPIData(data)
	require.NoError(t, err)

	assert.Nil(t, course.LatestStatus)
	assert.Nil(t, course.HubAdmins)
	assert.Nil(t, course.LastChanged)
	assert.False(t, course.InAdminCourses)
}

func TestCourseStatusInvalidEmail(t *testing.T) {
	_, err := CourseStatusFromAPIData(map[string]interface{}{
		"id":              float64(1),
		"status":          "requested",
		"status_added_by": "not-an-email",
	})
	require.Error(t, err)

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "status_added_by", invalid.Field)
}

func TestCourseStatusValidEmail(t *testing.T) {
	status, err := CourseStatusFromAPIData(map[string]interface{}{
		"id":              float64(1),
		"status":          "requested",
		"status_added_by": "javerage@uw.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, "javerage@uw.edu", status.StatusAddedBy)

	// absent optional fields take the documented defaults
	assert.False(t, status.HubDeployed)
	assert.Equal(t, "", status.Message)
	assert.Equal(t, 0, status.Course)
	assert.Nil(t, status.Configuration)
}

func TestLegacyStatusDisplaysAsIs(t *testing.T) {
	status, err := CourseStatusFromAPIData(map[string]interface{}{
		"id":     float64(1),
		"status": "provisioning",
	})
	require.NoError(t, err)
	assert.Equal(t, "provisioning", status.StatusDisplayName())
}

func TestCourseDetailStatuses(t *testing.T) {
	detail, err := CourseDetailFromAPIData(map[string]interface{}{
		"id":             float64(42),
		"name":           "Intro to Data Science",
		"course_year":    float64(2025),
		"course_quarter": float64(4),
		"sis_course_id":  "2025-autumn-BANA-310-B",
		"hub_url":        "",
		"statuses": []interface{}{
			map[string]interface{}{"id": float64(1), "status": "requested"},
			map[string]interface{}{"id": float64(2), "status": "deployed"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Autumn", detail.QuarterDisplayName())
	require.Len(t, detail.Statuses, 2)
	assert.Equal(t, "deployed", detail.Statuses[1].Status)
}

func TestConfigurationRoundTrip(t *testing.T) {
	cpu, mem, storage := 2, 4, 10
	cfg := &CourseConfiguration{
		ConfigurationApplied: false,
		CPURequest:           &cpu,
		MemoryRequest:        &mem,
		StorageRequest:       &storage,
		ImageURI:             "jupyter/minimal-notebook",
		ImageTag:             "latest",
		GitpullerTargets: []GitpullerTarget{
			{
				GitpullerURI:     "https://github.com/uw-it-aca/course-materials.git",
				GitpullerTag:     "main",
				GitpullerSyncDir: "COURSE_MATERIALS",
			},
		},
		ConfigurationComments: "please enable shared storage",
	}
	cfg.SetFeaturesList([]string{"nfs", "binderhub"})

	rebuilt, err := CourseConfigurationFromAPIData(cfg.ToAPIData())
	require.NoError(t, err)

	// field-for-field equal, ignoring the server-only create_timestamp
	assert.Equal(t, cfg, rebuilt)
	assert.Equal(t, []string{"nfs", "binderhub"}, rebuilt.FeaturesList())

	// gitpuller targets survive the round trip intact
	require.Len(t, rebuilt.GitpullerTargets, 1)
	assert.Equal(t, "main", rebuilt.GitpullerTargets[0].GitpullerTag)
}

func TestFromAPIDataTypedSlices(t *testing.T) {
	// ToAPIData emits typed slices rather than the []interface{} form a JSON
	// decoder produces; both spellings parse identically
	cfg, err := CourseConfigurationFromAPIData(map[string]interface{}{
		"gitpuller_targets": []map[string]interface{}{
			{
				"gitpuller_uri":      "https://github.com/uw-it-aca/course-materials.git",
				"gitpuller_tag":      "main",
				"gitpuller_sync_dir": "COURSE_MATERIALS",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, cfg.GitpullerTargets, 1)
	assert.Equal(t, "COURSE_MATERIALS", cfg.GitpullerTargets[0].GitpullerSyncDir)

	data := courseData()
	data["hub_admins"] = []string{"javerage", "jbothell"}
	course, err := CourseFromAPIData(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"javerage", "jbothell"}, course.HubAdmins)
}

func TestConfigurationDefaults(t *testing.T) {
	cfg, err := CourseConfigurationFromAPIData(map[string]interface{}{})
	require.NoError(t, err)

	assert.False(t, cfg.ConfigurationApplied)
	assert.Nil(t, cfg.CPURequest)
	assert.Nil(t, cfg.MemoryRequest)
	assert.Nil(t, cfg.StorageRequest)
	assert.Equal(t, "", cfg.ImageURI)
	assert.Empty(t, cfg.GitpullerTargets)
	assert.Empty(t, cfg.FeaturesList())
}

func TestAdminCourseSettingsDefaults(t *testing.T) {
	settings, err := AdminCourseSettingsFromAPIData(map[string]interface{}{
		"id":     float64(3),
		"course": float64(42),
	})
	require.NoError(t, err)

	assert.Equal(t, "1Gi", settings.StorageCapacity)
	assert.Equal(t, "0.5", settings.CPURequest)
	assert.Equal(t, "512Mi", settings.MemoryRequest)
	assert.Equal(t, 3600, settings.CullTime)
	assert.Equal(t, "kubespawner", settings.Spawner)
	assert.True(t, settings.LabUI)
	assert.True(t, settings.ImagePullerEnabled)
	assert.Empty(t, settings.ExtraEnvs)
	assert.Empty(t, settings.GitPullerTargets)
}

func TestAdminCourseDetailInvalidContactEmail(t *testing.T) {
	_, err := AdminCourseDetailFromAPIData(map[string]interface{}{
		"id":   float64(1),
		"key":  "abc123",
		"name": "BANA 310 B",
		"settings": map[string]interface{}{
			"id":     float64(3),
			"course": float64(1),
		},
		"code":               "BANA 310",
		"sis_course_id":      "2025-spring-BANA-310-B",
		"contact_name":       "J Average",
		"contact_email":      "not an email at all",
		"hub_url":            "",
		"hub_status":         "deployed",
		"hub_token":          "",
		"last_changed":       "2025-04-01T10:30:00Z",
		"welcome_email_sent": true,
	})
	require.Error(t, err)

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "contact_email", invalid.Field)
}

func TestParseAPIDatetime(t *testing.T) {
	// trailing Z form
	parsed, err := ParseAPIDatetime("2025-04-01T10:30:00Z")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, 2025, parsed.Year())

	// explicit offset form
	parsed, err = ParseAPIDatetime("2025-04-01T10:30:00+00:00")
	require.NoError(t, err)
	require.NotNil(t, parsed)

	// already parsed values pass through unchanged
	now := time.Now()
	parsed, err = ParseAPIDatetime(now)
	require.NoError(t, err)
	assert.Equal(t, now, *parsed)

	// nil and empty input yield nil
	parsed, err = ParseAPIDatetime(nil)
	require.NoError(t, err)
	assert.Nil(t, parsed)

	parsed, err = ParseAPIDatetime("")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	// garbage is a validation error
	_, err = ParseAPIDatetime("first of april")
	assert.Error(t, err)
}

func TestCourseStatusUpdateToAPIData(t *testing.T) {
	update := &CourseStatusUpdate{
		SisCourseID: "2025-spring-BANA-310-B",
		Status:      StatusRequested,
		AutoCreate:  true,
		Message:     "JupyterHub configuration requested via web form",
		Name:        "BANA 310 B: Business Analytics",
		HubAdmins:   []string{"javerage"},
	}

	data := update.ToAPIData()
	assert.Equal(t, "2025-spring-BANA-310-B", data["sis_course_id"])
	assert.Equal(t, true, data["auto_create"])

	// course_year / course_quarter are not part of the payload
	_, hasYear := data["course_year"]
	assert.False(t, hasYear)

	// no configuration attached, key absent rather than null
	_, hasConfig := data["configuration"]
	assert.False(t, hasConfig)
}
