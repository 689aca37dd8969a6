package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config 应用配置结构
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Upload   UploadConfig
	Analysis AnalysisConfig
	Cache    CacheConfig
	// UseStaticData 为true时使用内置演示品牌数据，不连接数据库
	UseStaticData bool
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string
	Mode string
}

// UploadConfig 上传文件配置
type UploadConfig struct {
	BaseDir     string // 上传根目录
	ResearchDir string // 调研文件目录
	AssetDir    string // 内容素材目录
	MaxSizeMB   int64  // 单文件大小上限(MB)
}

// AnalysisConfig 内容分析配置
type AnalysisConfig struct {
	MaxConcurrentJobs int32 // 最大并发分析任务数
	StepDelayMs       int   // 每个分析阶段的耗时(毫秒)，控制进度推送节奏
}

// CacheConfig 查询缓存配置
type CacheConfig struct {
	DashboardTTLSeconds int // 仪表盘聚合结果缓存时间(秒)
}

// Load 加载配置
func Load() *Config {
	uploadBase := getEnv("UPLOAD_DIR", "/opt/brand-dashboard/uploads")

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "brand_dashboard"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		Upload: UploadConfig{
			BaseDir:     uploadBase,
			ResearchDir: filepath.Join(uploadBase, "research"),
			AssetDir:    filepath.Join(uploadBase, "assets"),
			MaxSizeMB:   int64(getEnvInt("UPLOAD_MAX_SIZE_MB", 50)),
		},
		Analysis: AnalysisConfig{
			MaxConcurrentJobs: int32(getEnvInt("ANALYSIS_MAX_JOBS", 5)),
			StepDelayMs:       getEnvInt("ANALYSIS_STEP_DELAY_MS", 800),
		},
		Cache: CacheConfig{
			DashboardTTLSeconds: getEnvInt("DASHBOARD_CACHE_TTL", 60),
		},
		UseStaticData: getEnvBool("USE_STATIC_DATA", false),
	}
}

// GetResearchFilePath 获取调研文件的存储路径
func (c *Config) GetResearchFilePath(storedName string) string {
	return filepath.Join(c.Upload.ResearchDir, storedName)
}

// GetAssetFilePath 获取内容素材的存储路径
func (c *Config) GetAssetFilePath(storedName string) string {
	return filepath.Join(c.Upload.AssetDir, storedName)
}

// getEnv 读取环境变量，不存在时返回默认值
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 读取整型环境变量
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool 读取布尔环境变量
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
