package configuration

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"vidtube/infrastructure/logger"
)

type Config struct {
	App      App      `json:"app"`
	Database Database `json:"database"`
	Storage  Storage  `json:"storage"`
	Pubsub   Pubsub   `json:"pubsub"`
	Logger   Logger   `json:"logger"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

type Database struct {
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Storage holds the media store (S3 or MinIO-compatible) settings.
type Storage struct {
	Region          string `json:"region"`
	Bucket          string `json:"bucket"`
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	Endpoint        string `json:"endpoint"` // set for MinIO; empty for AWS
	DisableSSL      bool   `json:"disableSSL"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

type Logger struct {
	Format string `json:"format"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initStorage(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = os.Getenv("MONGO_DB_NAME")
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = "vidtube"
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = "localhost"
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = "27017"
	}
}

func initApp(C *Config) {
	if C.App.SecretKey == "" {
		C.App.SecretKey = os.Getenv("SECRET_KEY")
	}
	if C.App.Port == 0 {
		C.App.Port = 8080
	}
}

func initStorage(C *Config) {
	if C.Storage.Region == "" {
		C.Storage.Region = os.Getenv("AWS_REGION")
	}
	if C.Storage.Bucket == "" {
		C.Storage.Bucket = os.Getenv("S3_BUCKET")
	}
	if C.Storage.AccessKeyID == "" {
		C.Storage.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	}
	if C.Storage.SecretAccessKey == "" {
		C.Storage.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
	if C.Storage.Endpoint == "" {
		C.Storage.Endpoint = os.Getenv("S3_ENDPOINT")
	}
}
