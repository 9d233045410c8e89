package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	SearchModeLocalSubstring = "local-substring"
	SearchModeRemoteDelegate = "remote-delegate"
)

type AppConfig struct {
	Logging       LoggingConfig       `yaml:"logging"`
	Server        ServerConfig        `yaml:"server"`
	LookupService LookupServiceConfig `yaml:"lookup_service"`
	Search        SearchConfig        `yaml:"search"`
	Dishes        DishesConfig        `yaml:"dishes"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// AllowedOrigins 는 /api 그룹의 CORS 허용 origin 목록이다. 비어 있으면 모든 origin 을 허용한다.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LookupServiceConfig 는 요리 데이터를 제공하는 외부 HTTP API 설정이다.
type LookupServiceConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout 은 아웃바운드 호출 하나에 대한 제한 시간이다. 0 이면 httpclient 기본값(10초)을 사용한다.
	Timeout time.Duration `yaml:"timeout"`
}

// SearchConfig 는 헤더 검색창의 매칭 방식을 결정한다.
//
// - local-substring: Candidates 목록에서 대소문자 무시 부분 문자열 매칭
// - remote-delegate: lookup service 의 GET /search 결과를 그대로 사용
type SearchConfig struct {
	Mode       string   `yaml:"mode"`
	Candidates []string `yaml:"candidates"`
}

type DishesConfig struct {
	PageSize int `yaml:"page_size"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	config = &c
}

// Parse 는 config.yaml 내용을 해석하고 환경변수 오버라이드와 기본값을 적용한 뒤 검증한다.
func Parse(data []byte) (AppConfig, error) {
	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return AppConfig{}, err
	}
	c.applyEnv()
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return AppConfig{}, err
	}
	return c, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("LOOKUP_SERVICE_BASE_URL"); v != "" {
		c.LookupService.BaseURL = v
	}
	if v := os.Getenv("WEB_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SEARCH_MODE"); v != "" {
		c.Search.Mode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.LookupService.BaseURL == "" {
		c.LookupService.BaseURL = "http://localhost:4000/api"
	}
	c.Search.Mode = strings.ToLower(strings.TrimSpace(c.Search.Mode))
	if c.Search.Mode == "" {
		c.Search.Mode = SearchModeLocalSubstring
	}
	if c.Dishes.PageSize <= 0 {
		c.Dishes.PageSize = 10
	}
}

// Validate 는 기동 시점에 잡아야 하는 설정 오류를 검사한다.
func (c AppConfig) Validate() error {
	switch c.Search.Mode {
	case SearchModeLocalSubstring, SearchModeRemoteDelegate:
	default:
		return fmt.Errorf("config: unknown search.mode %q", c.Search.Mode)
	}
	if c.LookupService.Timeout < 0 {
		return fmt.Errorf("config: lookup_service.timeout must not be negative")
	}
	return nil
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
