package rttlapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/config"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
)

const testBase = "https://jupyter.eval.rttl.uw.edu"

type memCache struct {
	entries map[string][]byte
	sets    int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(key string) ([]byte, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *memCache) Set(key string, value []byte, _ time.Duration) {
	c.entries[key] = value
	c.sets++
}

func testClient(t *testing.T, cache Cache) *Client {
	client, err := NewClient(&config.RttlConfig{
		Url:     testBase,
		Version: "v1",
		Key:     "secret-key",
	}, cache)
	require.NoError(t, err)

	httpmock.ActivateNonDefault(client.hc)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestNewClientMissingKey(t *testing.T) {
	// missing credential fails fast, before any network call
	_, err := NewClient(&config.RttlConfig{Url: testBase}, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewClient(nil, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestListCoursesAuthHeader(t *testing.T) {
	client := testClient(t, nil)

	httpmock.RegisterResponder("GET", testBase+"/api/v1/courses/",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer Api-Key secret-key", req.Header.Get("Authorization"))
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			assert.Equal(t, "2025-spring-BANA-310-B", req.URL.Query().Get("sis_id"))
			return httpmock.NewStringResponse(200, `[{"id": 42, "sis_course_id": "2025-spring-BANA-310-B"}]`), nil
		})

	courses, err := client.ListCourses("2025-spring-BANA-310-B")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, float64(42), courses[0]["id"])
}

func TestGetCourseNotFound(t *testing.T) {
	client := testClient(t, nil)

	httpmock.RegisterResponder("GET", testBase+"/api/v1/courses/42/",
		httpmock.NewStringResponder(404, `{"detail": "Not found."}`))

	_, err := client.GetCourse(42)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	// structured error body is carried on the typed error
	assert.Equal(t, "Not found.", apiErr.Body["detail"])
}

func TestGetCourseBadJSON(t *testing.T) {
	client := testClient(t, nil)

	httpmock.RegisterResponder("GET", testBase+"/api/v1/courses/42/",
		httpmock.NewStringResponder(200, `<html>gateway error</html>`))

	_, err := client.GetCourse(42)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 200, apiErr.StatusCode)
}

func TestCachedGetSingleNetworkCall(t *testing.T) {
	cache := newMemCache()
	client := testClient(t, cache)

	httpmock.RegisterResponder("GET", testBase+"/api/v1/courses/",
		httpmock.NewStringResponder(200, `[{"id": 42}]`))

	first, err := client.ListCourses("2025-spring-BANA-310-B")
	require.NoError(t, err)
	second, err := client.ListCourses("2025-spring-BANA-310-B")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// second call is served from cache without network I/O
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.Equal(t, 1, cache.sets)
}

func TestMutatingCallBypassesCache(t *testing.T) {
	cache := newMemCache()
	client := testClient(t, cache)

	httpmock.RegisterResponder("POST", testBase+"/api/v1/coursestatus/",
		httpmock.NewStringResponder(200, `{"id": 7}`))

	update := &rttl.CourseStatusUpdate{
		SisCourseID: "2025-spring-BANA-310-B",
		Status:      rttl.StatusRequested,
		AutoCreate:  true,
	}

	for i := 0; i < 2; i++ {
		_, err := client.CreateOrUpdateCourseStatus(update)
		require.NoError(t, err)
	}

	// POST never reads or populates the cache
	assert.Equal(t, 2, httpmock.GetTotalCallCount())
	assert.Equal(t, 0, cache.sets)
}

func TestDeleteCourseNoContent(t *testing.T) {
	client := testClient(t, nil)

	httpmock.RegisterResponder("DELETE", testBase+"/api/v1/courses/42/",
		httpmock.NewStringResponder(204, ""))

	deleted, err := client.DeleteCourse(42)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestGetCourseBySisID(t *testing.T) {
	client := testClient(t, nil)

	httpmock.RegisterResponder("GET", testBase+"/api/v1/courses/",
		httpmock.NewStringResponder(200, `[{"id": 42}, {"id": 43}]`))

	course, err := client.GetCourseBySisID("2025-spring-BANA-310-B")
	require.NoError(t, err)
	assert.Equal(t, float64(42), course["id"])
}

func TestGetCourseBySisIDAbsent(t *testing.T) {
	client := testClient(t, nil)

	httpmock.RegisterResponder("GET", testBase+"/api/v1/courses/",
		httpmock.NewStringResponder(200, `[]`))

	course, err := client.GetCourseBySisID("2025-spring-NONE-000-Z")
	// absence is a soft result, not an error
	require.NoError(t, err)
	assert.Nil(t, course)
}

func TestListCourseConfigsAppliedFilter(t *testing.T) {
	client := testClient(t, nil)

	httpmock.RegisterResponder("GET", testBase+"/api/v1/courses/42/configs/",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "true", req.URL.Query().Get("applied"))
			return httpmock.NewStringResponse(200, `[{"configuration_applied": true}]`), nil
		})

	applied := true
	configs, err := client.ListCourseConfigs(42, &applied)
	require.NoError(t, err)
	require.Len(t, configs, 1)
}

func TestCacheKeyParamOrderIndependent(t *testing.T) {
	reqA, err := http.NewRequest("GET", testBase+"/api/v1/courses/?a=1&b=2", nil)
	require.NoError(t, err)
	reqB, err := http.NewRequest("GET", testBase+"/api/v1/courses/?b=2&a=1", nil)
	require.NoError(t, err)

	assert.Equal(t, cacheKey(reqA), cacheKey(reqB))

	reqC, err := http.NewRequest("GET", testBase+"/api/v1/courses/?a=1&b=3", nil)
	require.NoError(t, err)
	assert.NotEqual(t, cacheKey(reqA), cacheKey(reqC))
}
