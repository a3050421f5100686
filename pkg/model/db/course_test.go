package db

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var Sqlite *gorm.DB

func TestMain(m *testing.M) {

	// Setup testing
	db, err := gorm.Open("sqlite3", "test.db")
	if err != nil {
		return
	}
	Sqlite = db
	Sqlite.AutoMigrate(&Course{}, &CourseStatus{}, &AdminImage{}, &AdminCourse{}, &HubRequestAudit{})

	// Start Testing
	m.Run()

	// Teardown testing
	defer Sqlite.Close()
	os.Remove("test.db")
}

func TestCourseUpsert(t *testing.T) {
	course := &Course{
		Name:          "BANA 310 B",
		CourseYear:    2025,
		CourseQuarter: 2,
		SisCourseID:   "2025-spring-BANA-310-B",
		LastChanged:   time.Now(),
	}
	require.NoError(t, course.Upsert(Sqlite))
	require.NotZero(t, course.ID)

	// second upsert updates in place instead of inserting
	updated := &Course{
		Name:          "BANA 310 B: Business Analytics",
		CourseYear:    2025,
		CourseQuarter: 2,
		SisCourseID:   "2025-spring-BANA-310-B",
		HubURL:        "https://jupyter.rttl.uw.edu/2025-spring-BANA-310-B",
		LastChanged:   time.Now(),
	}
	require.NoError(t, updated.Upsert(Sqlite))
	assert.Equal(t, course.ID, updated.ID)

	count := 0
	Sqlite.Model(&Course{}).Where("sis_course_id = ?", "2025-spring-BANA-310-B").Count(&count)
	assert.Equal(t, 1, count)
}

func TestLatestStatus(t *testing.T) {
	course := &Course{
		Name:        "CSE 160 A",
		SisCourseID: "2025-spring-CSE-160-A",
		LastChanged: time.Now(),
	}
	require.NoError(t, course.Upsert(Sqlite))

	// no history yet
	latest, err := course.LatestStatus(Sqlite)
	require.NoError(t, err)
	assert.Nil(t, latest)

	older := &CourseStatus{
		CourseID:    course.ID,
		Status:      "requested",
		StatusAdded: time.Now().Add(-time.Hour),
	}
	newer := &CourseStatus{
		CourseID:    course.ID,
		Status:      "deployed",
		HubDeployed: true,
		StatusAdded: time.Now(),
	}
	require.NoError(t, Sqlite.Create(older).Error)
	require.NoError(t, Sqlite.Create(newer).Error)

	latest, err = course.LatestStatus(Sqlite)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "deployed", latest.Status)
}

func TestStatusConfigurationRoundTrip(t *testing.T) {
	status := &CourseStatus{Status: "requested"}

	config := map[string]interface{}{
		"image_uri":        "jupyter/minimal-notebook",
		"features_request": "nfs",
	}
	require.NoError(t, status.SetConfiguration(config))

	loaded, err := status.GetConfiguration()
	require.NoError(t, err)
	assert.Equal(t, config, loaded)

	// empty column reads as an empty configuration
	empty := &CourseStatus{}
	loaded, err = empty.GetConfiguration()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestHubRequestAuditNewEntry(t *testing.T) {
	audit := &HubRequestAudit{
		Model:       Model{ID: uuid.New().String()},
		SisCourseID: "2025-spring-BANA-310-B",
		RequestedBy: "javerage@uw.edu",
		Status:      "requested",
		Message:     "JupyterHub configuration requested via web form",
	}
	require.NoError(t, audit.NewEntry(Sqlite))

	count := 0
	Sqlite.Model(&HubRequestAudit{}).Where("sis_course_id = ?", "2025-spring-BANA-310-B").Count(&count)
	assert.Equal(t, 1, count)
}
