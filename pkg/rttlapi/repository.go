package rttlapi

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html"
	"time"

	log "github.com/golang/glog"
	"github.com/uw-it-aca/rttl-info-lti/pkg/consts"
)

// CourseAPI is the slice of the client the repository composes over.
type CourseAPI interface {
	ListCourses(sisID string) ([]map[string]interface{}, error)
	GetCourse(id int) (map[string]interface{}, error)
	ListCourseConfigs(courseID int, applied *bool) ([]map[string]interface{}, error)
}

// Repository layers a second, coarser cache keyed by hashed SIS course id on
// top of the client, and composes the status -> id -> details/configs
// lookups. Client errors propagate untouched; an empty upstream result is
// cached and returned as an empty value, not an error.
type Repository struct {
	client  CourseAPI
	cache   Cache
	timeout time.Duration
}

func NewRepository(client CourseAPI, cache Cache) *Repository {
	return &Repository{
		client:  client,
		cache:   cache,
		timeout: consts.RepositoryCacheTimeout,
	}
}

// repositoryKey derives a fixed-width cache key from the operation name and
// SIS course id. HTML character entities are decoded first ("&amp;" -> "&")
// so both spellings of a curriculum code land on the same entry, and the
// hash keeps the key safe for backends with restricted key character sets.
func repositoryKey(operation, sisCourseID string) string {
	normalized := html.UnescapeString(sisCourseID)
	sum := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%s:%s", operation, hex.EncodeToString(sum[:]))
}

// GetCourseStatus returns the course list response for a SIS course id. An
// empty list means the course does not exist upstream yet.
func (r *Repository) GetCourseStatus(sisCourseID string) ([]map[string]interface{}, error) {
	key := repositoryKey(consts.RepositoryKeyCourseStatus, sisCourseID)
	if cached, ok := r.cache.Get(key); ok {
		courses := []map[string]interface{}{}
		if json.Unmarshal(cached, &courses) == nil {
			return courses, nil
		}
	}

	courses, err := r.client.ListCourses(sisCourseID)
	if err != nil {
		return nil, err
	}

	r.store(key, courses)
	return courses, nil
}

// GetCourseDetails resolves the internal course id from the status lookup and
// fetches the full detail record. A nil result means the course does not
// exist upstream.
func (r *Repository) GetCourseDetails(sisCourseID string) (map[string]interface{}, error) {
	key := repositoryKey(consts.RepositoryKeyCourseDetails, sisCourseID)
	if cached, ok := r.cache.Get(key); ok {
		var detail map[string]interface{}
		if json.Unmarshal(cached, &detail) == nil {
			return detail, nil
		}
	}

	id, err := r.resolveCourseID(sisCourseID)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		// absence is cached like any other result, as a null entry
		r.store(key, nil)
		return nil, nil
	}

	detail, err := r.client.GetCourse(id)
	if err != nil {
		return nil, err
	}

	r.store(key, detail)
	return detail, nil
}

// GetCourseConfigs resolves the internal course id and fetches the
// configuration list.
func (r *Repository) GetCourseConfigs(sisCourseID string) ([]map[string]interface{}, error) {
	key := repositoryKey(consts.RepositoryKeyCourseConfigs, sisCourseID)
	if cached, ok := r.cache.Get(key); ok {
		configs := []map[string]interface{}{}
		if json.Unmarshal(cached, &configs) == nil {
			return configs, nil
		}
	}

	id, err := r.resolveCourseID(sisCourseID)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		configs := []map[string]interface{}{}
		r.store(key, configs)
		return configs, nil
	}

	configs, err := r.client.ListCourseConfigs(id, nil)
	if err != nil {
		return nil, err
	}

	r.store(key, configs)
	return configs, nil
}

func (r *Repository) resolveCourseID(sisCourseID string) (int, error) {
	courses, err := r.GetCourseStatus(sisCourseID)
	if err != nil {
		return 0, err
	}
	if len(courses) == 0 {
		return 0, nil
	}
	if id, ok := courses[0]["id"].(float64); ok {
		return int(id), nil
	}
	return 0, nil
}

func (r *Repository) store(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warningf("Marshal cache value for key {%s} fail: %s", key, err.Error())
		return
	}
	r.cache.Set(key, data, r.timeout)
}
