package main

import (
	"flag"

	log "github.com/golang/glog"
	"github.com/spf13/viper"
	_ "github.com/uw-it-aca/rttl-info-lti/docs"
	"github.com/uw-it-aca/rttl-info-lti/pkg/api"
	cm "github.com/uw-it-aca/rttl-info-lti/pkg/model/config"
)

// @title RTTL Course Info API
// @version 1.0
// @description LTI tool backend for viewing and requesting JupyterHub provisioning for Canvas courses.

// @host localhost:38080
// @BasePath /

func main() {

	configPath := flag.String("conf", "", "The file path to a config file")
	flag.Parse()

	config, err := ReadConfig(*configPath)
	if err != nil {
		log.Fatalf("Unable to read configure file: %s", err.Error())
	}

	conf, err := cm.UnmarshConfig(config)
	if err != nil {
		log.Fatalf("Unable to unmarshal configure file: %s", err.Error())
	}

	server := api.NewAPIServer(conf)
	if server == nil {
		log.Fatalf("Create api server fail, Stop!!")
		return
	}

	log.Info("Start API Server")
	err = server.RunServer(conf.APIConfig.Port)
	if err != nil {
		log.Fatalf("start api server error: %s", err.Error())
	}

}

func ReadConfig(fileConfig string) (*viper.Viper, error) {
	viper := viper.New()
	viper.SetConfigType("json")

	if fileConfig == "" {
		viper.SetConfigName("api-config")
		viper.AddConfigPath("/etc/rttl-info-lti")
	} else {
		viper.SetConfigFile(fileConfig)
	}

	// overwrite by file
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	return viper, nil
}
