package db

import (
	"encoding/json"
	"time"

	"github.com/jinzhu/gorm"
)

// Local read-only mirror of the remote course catalog. Rows are refreshed
// from API responses, never edited here; they back reporting and keep the
// last known hub state visible when the remote service is down.
type Course struct {
	ID            uint      `gorm:"primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	CourseYear    int       `json:"course_year"`
	CourseQuarter int       `json:"course_quarter"`
	SisCourseID   string    `gorm:"size:255;unique_index;not null" json:"sis_course_id"`
	HubURL        string    `gorm:"size:500" json:"hub_url"`
	LastChanged   time.Time `json:"last_changed"`
}

func (Course) TableName() string {
	return "rttlCourses"
}

// Upsert refreshes the mirror row addressed by sis_course_id.
func (c *Course) Upsert(DB *gorm.DB) error {
	existing := Course{}
	result := DB.Where(Course{SisCourseID: c.SisCourseID}).First(&existing)
	if result.Error != nil {
		if result.RecordNotFound() {
			return DB.Create(c).Error
		}
		return result.Error
	}
	c.ID = existing.ID
	return DB.Save(c).Error
}

// LatestStatus returns the most recent mirrored status for the course, or
// nil when none has been recorded yet.
func (c *Course) LatestStatus(DB *gorm.DB) (*CourseStatus, error) {
	status := CourseStatus{}
	result := DB.Where(CourseStatus{CourseID: c.ID}).
		Order("status_added desc").
		First(&status)
	if result.Error != nil {
		if result.RecordNotFound() {
			return nil, nil
		}
		return nil, result.Error
	}
	return &status, nil
}

// Mirror of the remote status history. Configuration is stored as JSON text.
type CourseStatus struct {
	ID            uint      `gorm:"primary_key" json:"id"`
	CourseID      uint      `gorm:"index;not null" json:"course_id"`
	Status        string    `gorm:"size:32;not null" json:"status"`
	HubDeployed   bool      `json:"hub_deployed"`
	Message       string    `gorm:"size:3000" json:"message"`
	Configuration string    `gorm:"type:text" json:"-"`
	StatusAdded   time.Time `json:"status_added"`
}

func (CourseStatus) TableName() string {
	return "rttlCourseStatus"
}

func (s *CourseStatus) GetConfiguration() (map[string]interface{}, error) {
	if s.Configuration == "" {
		return map[string]interface{}{}, nil
	}
	config := map[string]interface{}{}
	if err := json.Unmarshal([]byte(s.Configuration), &config); err != nil {
		return nil, err
	}
	return config, nil
}

func (s *CourseStatus) SetConfiguration(config map[string]interface{}) error {
	data, err := json.Marshal(config)
	if err != nil {
		return err
	}
	s.Configuration = string(data)
	return nil
}

// AdminImage mirrors the Docker image list from the admin API.
type AdminImage struct {
	ID          uint   `gorm:"primary_key" json:"id"`
	Repo        string `gorm:"size:255;not null" json:"repo"`
	Tag         string `gorm:"size:255;not null" json:"tag"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:3000" json:"description"`
}

func (AdminImage) TableName() string {
	return "rttlAdminImages"
}

// AdminCourse mirrors the admin course list view.
type AdminCourse struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	Key         string    `gorm:"size:255" json:"key"`
	Name        string    `gorm:"size:255" json:"name"`
	SisCourseID string    `gorm:"size:255;unique_index" json:"sis_course_id"`
	HubStatus   string    `gorm:"size:32" json:"hub_status"`
	HubURL      string    `gorm:"size:500" json:"hub_url"`
	LastChanged time.Time `json:"last_changed"`
}

func (AdminCourse) TableName() string {
	return "rttlAdminCourses"
}
