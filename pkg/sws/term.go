package sws

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dghubble/sling"
	log "github.com/golang/glog"
	"github.com/uw-it-aca/rttl-info-lti/pkg/consts"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/config"
	"github.com/uw-it-aca/rttl-info-lti/pkg/rttlapi"
	"github.com/uw-it-aca/rttl-info-lti/pkg/util"
)

// TermClient fetches the current academic term from the student web service.
// Terms only roll over at day boundaries, so results are cached until
// 23:59:59 of the current day.
type TermClient struct {
	base  *sling.Sling
	cache rttlapi.Cache
	now   func() time.Time
}

type termResponse struct {
	Year    int    `json:"Year"`
	Quarter string `json:"Quarter"`
}

func NewTermClient(conf *config.SWSConfig, cache rttlapi.Cache) *TermClient {
	return &TermClient{
		base:  sling.New().Base(conf.Url).Set("Accept", "application/json"),
		cache: cache,
		now:   time.Now,
	}
}

// GetCurrentTerm returns the current term, from cache when available.
func (t *TermClient) GetCurrentTerm(useCache bool) (*util.CurrentTerm, error) {
	if useCache && t.cache != nil {
		if cached, ok := t.cache.Get(consts.CurrentTermCacheKey); ok {
			term := util.CurrentTerm{}
			if json.Unmarshal(cached, &term) == nil {
				return &term, nil
			}
		}
	}

	resp := termResponse{}
	httpResp, err := t.base.New().Get("student/v5/term/current.json").ReceiveSuccess(&resp)
	if err != nil {
		return nil, fmt.Errorf("get current term fail: %s", err.Error())
	}
	if httpResp.StatusCode != 200 {
		return nil, fmt.Errorf("get current term returned HTTP %d", httpResp.StatusCode)
	}

	term := &util.CurrentTerm{Year: resp.Year, Quarter: resp.Quarter}

	if useCache && t.cache != nil {
		if data, err := json.Marshal(term); err == nil {
			t.cache.Set(consts.CurrentTermCacheKey, data, t.cacheTimeout())
		} else {
			log.Warningf("Marshal current term fail: %s", err.Error())
		}
	}

	return term, nil
}

// cacheTimeout is the time remaining until 23:59:59 today, or tomorrow when
// that moment has already passed.
func (t *TermClient) cacheTimeout() time.Duration {
	now := t.now()
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	if !now.Before(endOfDay) {
		endOfDay = endOfDay.AddDate(0, 0, 1)
	}
	return endOfDay.Sub(now)
}
