package lti

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	log "github.com/golang/glog"
	"github.com/jinzhu/gorm"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model"
)

type Health struct {
	DB    *gorm.DB
	Redis *goredis.Client
}

// @Summary check backend database is running
// @Description check backend database is running
// @Tags HealthCheck
// @Produce  json
// @Success 200 {object} docs.HealthDatabaseResponse
// @Failure 500 {object} docs.GenericErrorResponse
// @Router /api/health/database [get]
func (h *Health) CheckDatabase(c *gin.Context) {
	tNameList := []string{}

	rows, err := h.DB.Raw("show tables").Rows()
	if err != nil {
		log.Errorf("Show all table name fail: %s", err.Error())
		RespondWithError(c, http.StatusInternalServerError, "Query all table name fail: %s", err.Error())
		return
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Errorf("Scan table name fail: %s", err.Error())
			RespondWithError(c, http.StatusInternalServerError, "Scan table name fail: %s", err.Error())
			return
		}
		tNameList = append(tNameList, name)
	}

	c.JSON(http.StatusOK, model.HealthDatabaseResponse{
		GenericResponse: model.GenericResponse{
			Error:   false,
			Message: "database is alive",
		},
		Tables: tNameList,
	})
}

// @Summary check backend redis is running
// @Description check backend redis is running
// @Tags HealthCheck
// @Produce  json
// @Success 200 {object} docs.HealthRedisResponse
// @Failure 500 {object} docs.GenericErrorResponse
// @Router /api/health/redis [get]
func (h *Health) CheckRedis(c *gin.Context) {
	if err := h.Redis.Ping(context.Background()).Err(); err != nil {
		log.Errorf("Ping redis fail: %s", err.Error())
		RespondWithError(c, http.StatusInternalServerError, "Ping redis fail: %s", err.Error())
		return
	}

	c.JSON(http.StatusOK, model.HealthRedisResponse{
		GenericResponse: model.GenericResponse{
			Error:   false,
			Message: "redis is alive",
		},
	})
}
