package rttlapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourseAPI struct {
	courses     []map[string]interface{}
	detail      map[string]interface{}
	configs     []map[string]interface{}
	err         error
	listCalls   int
	getCalls    int
	configCalls int
}

func (f *fakeCourseAPI) ListCourses(sisID string) ([]map[string]interface{}, error) {
	f.listCalls++
	return f.courses, f.err
}

func (f *fakeCourseAPI) GetCourse(id int) (map[string]interface{}, error) {
	f.getCalls++
	return f.detail, f.err
}

func (f *fakeCourseAPI) ListCourseConfigs(courseID int, applied *bool) ([]map[string]interface{}, error) {
	f.configCalls++
	return f.configs, f.err
}

func TestGetCourseStatusReadThrough(t *testing.T) {
	api := &fakeCourseAPI{
		courses: []map[string]interface{}{{"id": float64(42), "hub_url": "https://hub"}},
	}
	repo := NewRepository(api, newMemCache())

	first, err := repo.GetCourseStatus("2025-spring-BANA-310-B")
	require.NoError(t, err)
	second, err := repo.GetCourseStatus("2025-spring-BANA-310-B")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// cache hit on the second call, exactly one remote call
	assert.Equal(t, 1, api.listCalls)
}

func TestGetCourseStatusEmptyUpstreamCached(t *testing.T) {
	api := &fakeCourseAPI{courses: []map[string]interface{}{}}
	repo := NewRepository(api, newMemCache())

	first, err := repo.GetCourseStatus("2025-spring-BANA-310-B")
	require.NoError(t, err)
	assert.Empty(t, first)

	second, err := repo.GetCourseStatus("2025-spring-BANA-310-B")
	require.NoError(t, err)
	assert.Empty(t, second)

	// "does not exist yet" is cached like any other result
	assert.Equal(t, 1, api.listCalls)
}

func TestGetCourseDetailsComposition(t *testing.T) {
	api := &fakeCourseAPI{
		courses: []map[string]interface{}{{"id": float64(42)}},
		detail:  map[string]interface{}{"id": float64(42), "name": "BANA 310 B"},
	}
	repo := NewRepository(api, newMemCache())

	detail, err := repo.GetCourseDetails("2025-spring-BANA-310-B")
	require.NoError(t, err)
	assert.Equal(t, "BANA 310 B", detail["name"])

	// status lookup resolved the id, then one detail fetch
	assert.Equal(t, 1, api.listCalls)
	assert.Equal(t, 1, api.getCalls)

	_, err = repo.GetCourseDetails("2025-spring-BANA-310-B")
	require.NoError(t, err)
	assert.Equal(t, 1, api.getCalls)
}

func TestGetCourseDetailsAbsentCourse(t *testing.T) {
	api := &fakeCourseAPI{courses: []map[string]interface{}{}}
	cache := newMemCache()
	repo := NewRepository(api, cache)

	detail, err := repo.GetCourseDetails("2025-spring-NONE-000-Z")
	require.NoError(t, err)
	assert.Nil(t, detail)
	assert.Equal(t, 0, api.getCalls)

	// the empty status list and the absent detail are both cached
	assert.Equal(t, 2, cache.sets)

	// a later lookup is served entirely from cache, even when the
	// upstream has become unreachable
	broken := NewRepository(&fakeCourseAPI{err: &APIError{Message: "down", StatusCode: 500}}, cache)
	detail, err = broken.GetCourseDetails("2025-spring-NONE-000-Z")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestGetCourseConfigs(t *testing.T) {
	api := &fakeCourseAPI{
		courses: []map[string]interface{}{{"id": float64(42)}},
		configs: []map[string]interface{}{{"configuration_applied": true}},
	}
	repo := NewRepository(api, newMemCache())

	configs, err := repo.GetCourseConfigs("2025-spring-BANA-310-B")
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, 1, api.configCalls)

	_, err = repo.GetCourseConfigs("2025-spring-BANA-310-B")
	require.NoError(t, err)
	assert.Equal(t, 1, api.configCalls)
}

func TestClientErrorPropagates(t *testing.T) {
	api := &fakeCourseAPI{err: &APIError{Message: "boom", StatusCode: 500}}
	repo := NewRepository(api, newMemCache())

	_, err := repo.GetCourseStatus("2025-spring-BANA-310-B")
	require.Error(t, err)

	// repository does not catch or rewrap client errors
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestRepositoryKeyNormalizesEntities(t *testing.T) {
	escaped := repositoryKey("course_status", "2024-spring-ENGL &amp; COM-101-A")
	plain := repositoryKey("course_status", "2024-spring-ENGL & COM-101-A")
	assert.Equal(t, escaped, plain)

	// operation name namespaces the key
	details := repositoryKey("course_details", "2024-spring-ENGL & COM-101-A")
	assert.NotEqual(t, plain, details)
}
