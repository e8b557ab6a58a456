package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/restaurant-reservation/pkg/kafka"
	"github.com/Astemirdum/restaurant-reservation/pkg/lock"
	"github.com/Astemirdum/restaurant-reservation/pkg/logger"
	"github.com/Astemirdum/restaurant-reservation/pkg/mongodb"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host          string        `yaml:"host" envconfig:"HTTP_HOST"`
	Port          string        `yaml:"port" envconfig:"PORT" default:"8888"`
	ReadTimeout   time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout  time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
	AllowedOrigin string        `yaml:"allowedOrigin" envconfig:"CROSS_ORIGIN_ALLOWED_URL"`
}

type Config struct {
	Server          HTTPServer `yaml:"server"`
	Database        mongodb.DB `yaml:"db"`
	Kafka           kafka.Config
	Lock            lock.Config
	BlacklistPolicy string     `yaml:"blacklistPolicy" envconfig:"BLACKLIST_POLICY" default:"any"`
	Log             logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	cfg.Lock.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
