package api

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	goredis "github.com/go-redis/redis/v8"
	log "github.com/golang/glog"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	"github.com/nitishm/go-rejson/v4"

	lti "github.com/uw-it-aca/rttl-info-lti/pkg/appslti"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/config"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/db"
	"github.com/uw-it-aca/rttl-info-lti/pkg/rttlapi"
	"github.com/uw-it-aca/rttl-info-lti/pkg/sws"
)

type ClientSet struct {
	*lti.LTIClient
}

func (c *ClientSet) LTI() *lti.LTIClient {
	return c.LTIClient
}

func NewClientset(conf *config.Config, DB *gorm.DB, rh *rejson.Handler,
	redis *goredis.Client) (*ClientSet, error) {

	cache := rttlapi.NewRedisCache(redis)

	client, err := rttlapi.NewClient(conf.RttlConfig, cache)
	if err != nil {
		return nil, err
	}
	repository := rttlapi.NewRepository(client, cache)

	var terms *sws.TermClient
	if conf.SWSConfig != nil && conf.SWSConfig.Enable {
		terms = sws.NewTermClient(conf.SWSConfig, cache)
	}

	return &ClientSet{
		LTIClient: lti.NewClient(conf, DB, rh, redis, client, repository, terms),
	}, nil
}

// NewDBClient opens the mirror/audit database and migrates its tables. The
// database may come up after this service in a fresh deploy, so the initial
// connect retries with exponential backoff before giving up.
func NewDBClient(config *config.Config) (*gorm.DB, error) {

	dbArgs := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8&parseTime=True",
		config.DBConfig.Username,
		config.DBConfig.Password,
		config.DBConfig.Host,
		config.DBConfig.Port,
		config.DBConfig.Database,
	)

	var DB *gorm.DB
	connect := func() error {
		var err error
		DB, err = gorm.Open("mysql", dbArgs)
		if err != nil {
			log.Warningf("connect database fail, retrying: %s", err.Error())
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 2 * time.Minute
	if err := backoff.Retry(connect, policy); err != nil {
		log.Errorf("create database client fail: %s", err.Error())
		return nil, err
	}

	DB.AutoMigrate(
		&db.Course{},
		&db.CourseStatus{},
		&db.AdminImage{},
		&db.AdminCourse{},
		&db.HubRequestAudit{},
	)

	return DB, nil
}
