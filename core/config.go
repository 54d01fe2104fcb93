package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (local; default), TEST, QA, PROD
		Build    string
		AppName  string

		RollbarToken string

		Server  ServerConfig
		Housing HousingConfig
	}

	ServerConfig struct {
		Host            string
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	HousingConfig struct {
		CorpusPath string
		MaxPros    int
		MaxCons    int
		MaxPosts   int
	}
)

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("build", "dev")
	v.SetDefault("appName", "CampusHub")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.debugHost", ":9000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("housing.corpusPath", filepath.Join(Getwd(), "config", "reddit_corpus.json"))
	v.SetDefault("housing.maxPros", 3)
	v.SetDefault("housing.maxCons", 3)
	v.SetDefault("housing.maxPosts", 3)

	env := os.Getenv("ENV")
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     testMode,
		Env:          env,
		Build:        v.GetString("build"),
		AppName:      v.GetString("appName"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Addr:            v.GetString("server.addr"),
			DebugHost:       v.GetString("server.debugHost"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
		},
		Housing: HousingConfig{
			CorpusPath: v.GetString("housing.corpusPath"),
			MaxPros:    v.GetInt("housing.maxPros"),
			MaxCons:    v.GetInt("housing.maxCons"),
			MaxPosts:   v.GetInt("housing.maxPosts"),
		},
	}
}
