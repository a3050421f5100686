package lti

import (
	goredis "github.com/go-redis/redis/v8"
	"github.com/jinzhu/gorm"
	"github.com/nitishm/go-rejson/v4"
	"github.com/uw-it-aca/rttl-info-lti/pkg/apps"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/config"
	"github.com/uw-it-aca/rttl-info-lti/pkg/rttlapi"
	"github.com/uw-it-aca/rttl-info-lti/pkg/sws"
)

type LTIClient struct {
	launch  apps.LaunchInterface
	hubData apps.HubDataInterface
	manage  apps.ManageInterface
	request apps.RequestInterface
	health  apps.HealthInterface
}

func NewClient(conf *config.Config, DB *gorm.DB, rh *rejson.Handler, redis *goredis.Client,
	client *rttlapi.Client, repository *rttlapi.Repository, terms *sws.TermClient) *LTIClient {

	sessions := NewRedisSessionStore(rh)

	var termGetter CurrentTermGetter
	if conf.SWSConfig != nil && conf.SWSConfig.Enable {
		termGetter = terms
	}

	return &LTIClient{
		launch: &Launch{
			DB:         DB,
			Sessions:   sessions,
			Repository: repository,
		},

		hubData: &HubData{
			DB:         DB,
			Sessions:   sessions,
			Repository: repository,
		},

		manage: &Manage{
			DB:         DB,
			Sessions:   sessions,
			Repository: repository,
			Terms:      termGetter,
		},

		request: &Request{
			DB:         DB,
			Sessions:   sessions,
			Client:     client,
			Repository: repository,
			Terms:      termGetter,
		},

		health: &Health{
			DB:    DB,
			Redis: redis,
		},
	}
}

func (c *LTIClient) Launch() apps.LaunchInterface {
	return c.launch
}

func (c *LTIClient) HubData() apps.HubDataInterface {
	return c.hubData
}

func (c *LTIClient) Manage() apps.ManageInterface {
	return c.manage
}

func (c *LTIClient) Request() apps.RequestInterface {
	return c.request
}

func (c *LTIClient) Health() apps.HealthInterface {
	return c.health
}
