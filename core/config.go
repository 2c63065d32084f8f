package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	apiConfig struct {
		BaseURL string
	}

	storageConfig struct {
		Driver      string // file (default), redis, memory
		Path        string
		RedisAddr   string
		RedisPrefix string
	}

	Config struct {
		AppName         string
		Env             string
		Debug           bool
		TestMode        bool
		Build           string
		RollbarToken    string
		WorkDir         string
		DefaultLanguage string
		API             apiConfig
		Storage         storageConfig
	}
)

// NewConfig loads the configuration from the environment.
// Variables are read with the ENV prefix, ie. DEV_API_BASEURL, PROD_STORAGE_DRIVER...
// `config/.env.<env>` is loaded first when it exists.
func NewConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting working directory")
	}

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// defaults
	v.SetDefault("debug", env == "DEV")
	v.SetDefault("testMode", env == "TEST")
	v.SetDefault("appName", "Pathshala Admin")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("defaultLanguage", "hi")
	v.SetDefault("api.baseURL", "http://127.0.0.1:5003")
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", defaultStoragePath())
	v.SetDefault("storage.redisAddr", "localhost:6379")
	v.SetDefault("storage.redisPrefix", "pathshala:")
	v.AutomaticEnv()

	conf := &Config{
		AppName:         v.GetString("appName"),
		Env:             env,
		Debug:           v.GetBool("debug"),
		TestMode:        v.GetBool("testMode"),
		Build:           v.GetString("build"),
		RollbarToken:    v.GetString("rollbarToken"),
		WorkDir:         wd,
		DefaultLanguage: v.GetString("defaultLanguage"),
		API: apiConfig{
			BaseURL: strings.TrimRight(v.GetString("api.baseURL"), "/"),
		},
		Storage: storageConfig{
			Driver:      strings.ToLower(v.GetString("storage.driver")),
			Path:        v.GetString("storage.path"),
			RedisAddr:   v.GetString("storage.redisAddr"),
			RedisPrefix: v.GetString("storage.redisPrefix"),
		},
	}
	return conf, nil
}

func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pathshala", "storage.json")
}
