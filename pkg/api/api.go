package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	log "github.com/golang/glog"
	"github.com/jinzhu/gorm"
	"github.com/nitishm/go-rejson/v4"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"

	lti "github.com/uw-it-aca/rttl-info-lti/pkg/appslti"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/config"
)

type APIServer struct {
	router         *gin.Engine
	clientSet      *ClientSet
	db             *gorm.DB
	redis          *rejson.Handler
	corsMiddleware gin.HandlerFunc
}

func NewAPIServer(config *config.Config) *APIServer {
	dbclient, err := NewDBClient(config)
	if err != nil {
		log.Fatalf("Create database client fail, Stop...: %s", err.Error())
		return nil
	}
	log.Info("Create Database Client")

	redisAddr := fmt.Sprintf("%s:%d", config.RedisConfig.Host, config.RedisConfig.Port)
	rh := rejson.NewReJSONHandler()
	cli := goredis.NewClient(&goredis.Options{Addr: redisAddr})
	rh.SetGoRedisClient(cli)

	clientSet, err := NewClientset(config, dbclient, rh, cli)
	if err != nil {
		log.Fatalf("Create RTTL client fail, Stop...: %s", err.Error())
		return nil
	}
	log.Info("Create RTTL Client")

	server := &APIServer{
		db:        dbclient,
		redis:     rh,
		clientSet: clientSet,
		router:    gin.Default(),

		corsMiddleware: func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Next()
		},
	}

	return server
}

func (s *APIServer) RunServer(port int) error {

	defer s.db.Close()

	// add middleware
	s.router.Use(s.corsMiddleware)

	// add route
	s.addAPIRoute()
	s.addSwaggerRoute()

	err := s.router.Run(":" + strconv.Itoa(port))
	if err != nil {
		return err
	}
	return nil
}

func (s *APIServer) addAPIRoute() {
	s.launchRoute()
	s.hubDataRoute()
	s.manageRoute()
	s.requestRoute()
	s.healthRoute()
}

func (s *APIServer) launchRoute() {
	s.router.POST("/", s.LTI().Launch().Launch)
	s.router.OPTIONS("/", handleOption)
}

func (s *APIServer) hubDataRoute() {
	hubData := s.router.Group("/api").Group("/hub-data")
	{
		hubData.GET("/", s.LTI().HubData().Get)
		hubData.OPTIONS("/", handleOption)
	}
}

func (s *APIServer) manageRoute() {
	manage := s.router.Group("/manage")
	{
		manage.GET("/", s.LTI().Manage().Get)
		manage.OPTIONS("/", handleOption)
	}
}

func (s *APIServer) requestRoute() {
	request := s.router.Group("/request")
	{
		request.GET("/", s.LTI().Request().GetForm)
		request.POST("/", s.LTI().Request().Submit)
		request.OPTIONS("/", handleOption)
	}
}

func (s *APIServer) healthRoute() {
	health := s.router.Group("/api").Group("/health")
	{
		health.GET("/database", s.LTI().Health().CheckDatabase)
		health.GET("/redis", s.LTI().Health().CheckRedis)
		health.OPTIONS("/database", handleOption)
		health.OPTIONS("/redis", handleOption)
	}
}

func (s *APIServer) addSwaggerRoute() {
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *APIServer) LTI() *lti.LTIClient {
	return s.clientSet.LTIClient
}

func handleOption(c *gin.Context) {
	//	setup headers
	c.Header("Access-Control-Allow-Headers", "X-Session-Id, Content-Type, Access-Control-Allow-Origin, Access-Control-Allow-Credentials")
	c.Status(http.StatusOK)
}
