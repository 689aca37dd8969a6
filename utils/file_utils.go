package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileUtils 上传文件操作工具类
type FileUtils struct{}

// NewFileUtils 创建文件工具类实例
func NewFileUtils() *FileUtils {
	return &FileUtils{}
}

// SafeStoredName 为上传文件生成安全的存储文件名
// 去掉路径成分、保留扩展名，前缀UUID避免同名覆盖。
func (fu *FileUtils) SafeStoredName(originalName string) string {
	base := filepath.Base(originalName)
	base = strings.ReplaceAll(base, "..", "")
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s%s", uuid.NewString(), ext)
}

// EnsureDir 确保目录存在
func (fu *FileUtils) EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// RemoveFileIfExists 删除文件，文件不存在时不报错
func (fu *FileUtils) RemoveFileIfExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}
