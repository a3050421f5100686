package rttlapi

import (
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/sling"
	log "github.com/golang/glog"
	"github.com/uw-it-aca/rttl-info-lti/pkg/consts"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/config"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/rttl"
)

// Client performs authenticated calls against the remote RTTL REST service.
// GET responses may be served from a short-TTL cache; mutating calls always
// bypass it. Failures of any kind surface as *APIError.
type Client struct {
	base         *sling.Sling
	hc           *http.Client
	cache        Cache
	cacheTimeout time.Duration
}

func NewClient(conf *config.RttlConfig, cache Cache) (*Client, error) {
	if conf == nil || conf.Key == "" {
		return nil, ErrMissingAPIKey
	}

	version := conf.Version
	if version == "" {
		version = consts.DefaultRttlVersion
	}

	timeout := consts.DefaultRequestTimeout
	if conf.RequestTimeout > 0 {
		timeout = time.Duration(conf.RequestTimeout) * time.Second
	}

	hc := &http.Client{Timeout: timeout}
	if conf.CaBundle != "" {
		pem, err := ioutil.ReadFile(conf.CaBundle)
		if err != nil {
			return nil, fmt.Errorf("read CA bundle {%s} fail: %s", conf.CaBundle, err.Error())
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in CA bundle {%s}", conf.CaBundle)
		}
		hc.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{RootCAs: pool},
		}
	}

	cacheTimeout := consts.DefaultClientCacheTimeout
	if conf.CacheTimeout > 0 {
		cacheTimeout = time.Duration(conf.CacheTimeout) * time.Second
	} else if conf.CacheTimeout < 0 {
		cacheTimeout = 0
	}

	base := sling.New().
		Client(hc).
		Base(fmt.Sprintf("%s/api/%s/", strings.TrimRight(conf.Url, "/"), version)).
		Set("Authorization", fmt.Sprintf("Bearer Api-Key %s", conf.Key)).
		Set("Accept", "application/json").
		Set("Content-Type", "application/json")

	return &Client{
		base:         base,
		hc:           hc,
		cache:        cache,
		cacheTimeout: cacheTimeout,
	}, nil
}

// result is the internal outcome shared by the cache-hit and live-request
// paths: a status code plus the raw response body.
type result struct {
	statusCode int
	body       []byte
}

func (r *result) decodeMap() (map[string]interface{}, error) {
	if len(r.body) == 0 {
		return nil, nil
	}
	data := map[string]interface{}{}
	if err := json.Unmarshal(r.body, &data); err != nil {
		return nil, &APIError{
			Message:    fmt.Sprintf("response body is not a JSON object: %s", err.Error()),
			StatusCode: r.statusCode,
		}
	}
	return data, nil
}

func (r *result) decodeList() ([]map[string]interface{}, error) {
	items := []interface{}{}
	if err := json.Unmarshal(r.body, &items); err != nil {
		return nil, &APIError{
			Message:    fmt.Sprintf("response body is not a JSON list: %s", err.Error()),
			StatusCode: r.statusCode,
		}
	}
	list := []map[string]interface{}{}
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			list = append(list, m)
		}
	}
	return list, nil
}

// cacheKey hashes method + endpoint + encoded query into a fixed-width key.
// url.Values.Encode sorts by key, so parameter insertion order is irrelevant.
func cacheKey(req *http.Request) string {
	composite := fmt.Sprintf("%s %s?%s", req.Method, req.URL.Path, req.URL.Query().Encode())
	sum := sha256.Sum256([]byte(composite))
	return fmt.Sprintf("%s:%s", consts.ClientCachePrefix, hex.EncodeToString(sum[:]))
}

func (c *Client) do(method, endpoint string, query, body interface{}) (*result, error) {
	s := c.base.New()
	switch method {
	case http.MethodGet:
		s = s.Get(endpoint)
	case http.MethodPost:
		s = s.Post(endpoint)
	case http.MethodPut:
		s = s.Put(endpoint)
	case http.MethodDelete:
		s = s.Delete(endpoint)
	default:
		return nil, &APIError{Message: fmt.Sprintf("unsupported method {%s}", method)}
	}
	if query != nil {
		s = s.QueryStruct(query)
	}
	if body != nil {
		s = s.BodyJSON(body)
	}

	req, err := s.Request()
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("build request fail: %s", err.Error())}
	}

	cacheable := method == http.MethodGet && c.cache != nil && c.cacheTimeout > 0
	key := ""
	if cacheable {
		key = cacheKey(req)
		if cached, ok := c.cache.Get(key); ok {
			return &result{statusCode: http.StatusOK, body: cached}, nil
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Errorf("%s %s fail: %s", method, req.URL.String(), err.Error())
		return nil, &APIError{Message: fmt.Sprintf("request fail: %s", err.Error())}
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("%s %s read body fail: %s", method, req.URL.String(), err.Error())
		return nil, &APIError{
			Message:    fmt.Sprintf("read response body fail: %s", err.Error()),
			StatusCode: resp.StatusCode,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Message:    fmt.Sprintf("%s %s returned HTTP %d", method, req.URL.Path, resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
		errBody := map[string]interface{}{}
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Body = errBody
		}
		log.Errorf("%s %s status {%d}: %s", method, req.URL.String(), resp.StatusCode, string(data))
		return nil, apiErr
	}

	if cacheable && resp.StatusCode == http.StatusOK {
		c.cache.Set(key, data, c.cacheTimeout)
	}

	return &result{statusCode: resp.StatusCode, body: data}, nil
}

type listCoursesParams struct {
	SisID string `url:"sis_id,omitempty"`
}

type listConfigsParams struct {
	Applied *bool `url:"applied,omitempty"`
}

// ListCourses lists courses, optionally filtered to one SIS course id.
func (c *Client) ListCourses(sisID string) ([]map[string]interface{}, error) {
	res, err := c.do(http.MethodGet, "courses/", &listCoursesParams{SisID: sisID}, nil)
	if err != nil {
		return nil, err
	}
	return res.decodeList()
}

func (c *Client) GetCourse(id int) (map[string]interface{}, error) {
	res, err := c.do(http.MethodGet, fmt.Sprintf("courses/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return res.decodeMap()
}

func (c *Client) CreateCourse(course *rttl.CourseCreate) (map[string]interface{}, error) {
	res, err := c.do(http.MethodPost, "courses/", nil, course.ToAPIData())
	if err != nil {
		return nil, err
	}
	return res.decodeMap()
}

func (c *Client) UpdateCourse(id int, data map[string]interface{}) (map[string]interface{}, error) {
	res, err := c.do(http.MethodPut, fmt.Sprintf("courses/%d/", id), nil, data)
	if err != nil {
		return nil, err
	}
	return res.decodeMap()
}

// DeleteCourse reports success as the HTTP no-content status. Non-2xx results
// have already surfaced as *APIError.
func (c *Client) DeleteCourse(id int) (bool, error) {
	res, err := c.do(http.MethodDelete, fmt.Sprintf("courses/%d/", id), nil, nil)
	if err != nil {
		return false, err
	}
	return res.statusCode == http.StatusNoContent, nil
}

func (c *Client) ListCourseStatuses(courseID int) ([]map[string]interface{}, error) {
	res, err := c.do(http.MethodGet, fmt.Sprintf("courses/%d/status/", courseID), nil, nil)
	if err != nil {
		return nil, err
	}
	return res.decodeList()
}

func (c *Client) GetCourseStatus(courseID, statusID int) (map[string]interface{}, error) {
	res, err := c.do(http.MethodGet, fmt.Sprintf("courses/%d/status/%d/", courseID, statusID), nil, nil)
	if err != nil {
		return nil, err
	}
	return res.decodeMap()
}

func (c *Client) CreateCourseStatus(courseID int, status *rttl.CourseStatusCreate) (map[string]interface{}, error) {
	res, err := c.do(http.MethodPost, fmt.Sprintf("courses/%d/status/", courseID), nil, status.ToAPIData())
	if err != nil {
		return nil, err
	}
	return res.decodeMap()
}

func (c *Client) UpdateCourseStatus(courseID, statusID int, data map[string]interface{}) (map[string]interface{}, error) {
	res, err := c.do(http.MethodPut, fmt.Sprintf("courses/%d/status/%d/", courseID, statusID), nil, data)
	if err != nil {
		return nil, err
	}
	return res.decodeMap()
}

func (c *Client) DeleteCourseStatus(courseID, statusID int) (bool, error) {
	res, err := c.do(http.MethodDelete, fmt.Sprintf("courses/%d/status/%d/", courseID, statusID), nil, nil)
	if err != nil {
		return false, err
	}
	return res.statusCode == http.StatusNoContent, nil
}

// CreateOrUpdateCourseStatus submits the combined upsert addressed by SIS
// course id. The remote side creates the course first when auto_create is set.
func (c *Client) CreateOrUpdateCourseStatus(update *rttl.CourseStatusUpdate) (map[string]interface{}, error) {
	res, err := c.do(http.MethodPost, "coursestatus/", nil, update.ToAPIData())
	if err != nil {
		return nil, err
	}
	return res.decodeMap()
}

// ListCourseConfigs lists configurations for a course; applied filters to
// applied/unapplied configurations when non-nil.
func (c *Client) ListCourseConfigs(courseID int, applied *bool) ([]map[string]interface{}, error) {
	res, err := c.do(http.MethodGet, fmt.Sprintf("courses/%d/configs/", courseID), &listConfigsParams{Applied: applied}, nil)
	if err != nil {
		return nil, err
	}
	return res.decodeList()
}

func (c *Client) ListAdminCourses() ([]map[string]interface{}, error) {
	res, err := c.do(http.MethodGet, "admincourses/", nil, nil)
	if err != nil {
		return nil, err
	}
	return res.decodeList()
}

func (c *Client) GetAdminCourse(id int) (map[string]interface{}, error) {
	res, err := c.do(http.MethodGet, fmt.Sprintf("admincourses/%d/", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return res.decodeMap()
}

// GetCourseBySisID resolves a course by its SIS id, returning nil when no
// course matches. Absence is not an error, callers branch on it.
func (c *Client) GetCourseBySisID(sisID string) (map[string]interface{}, error) {
	courses, err := c.ListCourses(sisID)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}
	return courses[0], nil
}
