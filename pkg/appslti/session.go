package lti

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gomodule/redigo/redis"
	"github.com/nitishm/go-rejson/v4"
	"github.com/uw-it-aca/rttl-info-lti/pkg/consts"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model"
)

// SessionStore keeps launch sessions between the LTI launch POST and the
// follow-up data calls.
type SessionStore interface {
	Save(session *model.LaunchSession) error
	Load(id string) (*model.LaunchSession, error)
}

type redisSessionStore struct {
	rh *rejson.Handler
}

func NewRedisSessionStore(rh *rejson.Handler) SessionStore {
	return &redisSessionStore{rh: rh}
}

func sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", consts.SessionKeyPrefix, id)
}

func (s *redisSessionStore) Save(session *model.LaunchSession) error {
	if _, err := s.rh.JSONSet(sessionKey(session.ID), ".", session); err != nil {
		return err
	}
	return nil
}

func (s *redisSessionStore) Load(id string) (*model.LaunchSession, error) {
	data, err := redis.Bytes(s.rh.JSONGet(sessionKey(id), "."))
	if err != nil {
		return nil, fmt.Errorf("session {%s} not found", id)
	}

	session := model.LaunchSession{}
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}

	// rejson documents carry no TTL, expiry is enforced on read
	if time.Since(session.CreatedAt) > consts.SessionTimeout {
		return nil, fmt.Errorf("session {%s} expired", id)
	}
	return &session, nil
}

// loadSession resolves the caller's session from the X-Session-Id header,
// falling back to the session query parameter.
func loadSession(store SessionStore, c *gin.Context) (*model.LaunchSession, error) {
	id := c.GetHeader("X-Session-Id")
	if id == "" {
		id = c.Query("session")
	}
	if id == "" {
		return nil, errors.New("missing session id")
	}
	return store.Load(id)
}

func newSession(req *model.LaunchRequest) *model.LaunchSession {
	return &model.LaunchSession{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		LoginID:     req.LoginID,
		Email:       req.Email,
		FullName:    req.FullName,
		SisCourseID: req.SisCourseID,
		CourseTitle: req.CourseTitle,
		CreatedAt:   time.Now(),
	}
}
