package config

import (
	"os"
	"strconv"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type OAuthClient struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type Config struct {
	Port              string
	PostgresURI       string
	RedisURI          string
	FrontendURL       string
	R2                R2
	SecretKey         string
	CookieName        string
	StoreContainer    string
	SupportEmail      string
	SchedulerInterval time.Duration
	PostLease         time.Duration
	CatalogCacheTTL   time.Duration
	ProProductID      string
	AgencyProductID   string
	StorefrontKey     string
	AllowPlanOverride bool
	Instagram         OAuthClient
	Facebook          OAuthClient
	LinkedIn          OAuthClient
	Twitter           OAuthClient
	Tiktok            OAuthClient
	Pinterest         OAuthClient
}

func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", "localhost:6379"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:         getEnv("SECRET_KEY", ""),
		CookieName:        getEnv("COOKIE_NAME", "dmhub_session"),
		StoreContainer:    getEnv("STORE_CONTAINER", "iCloud.com.example.BradleyDigitalMarketingHub"),
		SupportEmail:      getEnv("SUPPORT_EMAIL", "support@bradleyvirtualsolutions.com"),
		SchedulerInterval: getDuration("SCHEDULER_INTERVAL", 5*time.Minute),
		PostLease:         getDuration("POST_LEASE", 10*time.Minute),
		CatalogCacheTTL:   getDuration("CATALOG_CACHE_TTL", 15*time.Minute),
		ProProductID:      getEnv("PRO_PRODUCT_ID", "dmhub.pro.monthly"),
		AgencyProductID:   getEnv("AGENCY_PRODUCT_ID", "dmhub.agency.monthly"),
		StorefrontKey:     getEnv("STOREFRONT_SIGNING_KEY", ""),
		AllowPlanOverride: getBool("ALLOW_PLAN_OVERRIDE", false),
		Instagram:         oauthClient("INSTAGRAM"),
		Facebook:          oauthClient("FACEBOOK"),
		LinkedIn:          oauthClient("LINKEDIN"),
		Twitter:           oauthClient("TWITTER"),
		Tiktok:            oauthClient("TIKTOK"),
		Pinterest:         oauthClient("PINTEREST"),
	}
}

func oauthClient(prefix string) OAuthClient {
	return OAuthClient{
		ClientID:     getEnv(prefix+"_CLIENT_ID", ""),
		ClientSecret: getEnv(prefix+"_CLIENT_SECRET", ""),
		RedirectURI:  getEnv(prefix+"_REDIRECT_URI", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
