package utils

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// QueryCache 读查询缓存
// 缓存键带品牌前缀，任一品牌数据变更时按前缀整体失效，
// 宁可多取一次也不留下陈旧数据。
type QueryCache struct {
	store *cache.Cache
	ttl   time.Duration
}

// NewQueryCache 创建查询缓存实例
func NewQueryCache(ttl time.Duration) *QueryCache {
	return &QueryCache{
		store: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// BrandKey 构造品牌作用域的缓存键
func BrandKey(brandID, suffix string) string {
	return fmt.Sprintf("brand:%s:%s", brandID, suffix)
}

// Get 读取缓存值
func (qc *QueryCache) Get(key string) (interface{}, bool) {
	return qc.store.Get(key)
}

// Set 写入缓存值（使用默认TTL）
func (qc *QueryCache) Set(key string, value interface{}) {
	qc.store.Set(key, value, cache.DefaultExpiration)
}

// InvalidatePrefix 按前缀失效缓存键
func (qc *QueryCache) InvalidatePrefix(prefix string) {
	for key := range qc.store.Items() {
		if strings.HasPrefix(key, prefix) {
			qc.store.Delete(key)
		}
	}
}

// InvalidateBrand 失效某品牌的全部缓存项和品牌列表缓存
func (qc *QueryCache) InvalidateBrand(brandID string) {
	qc.InvalidatePrefix("brand:" + brandID + ":")
	qc.store.Delete("brands:list")
	log.Printf("缓存已失效: brand=%s", brandID)
}

// ItemCount 当前缓存条目数
func (qc *QueryCache) ItemCount() int {
	return qc.store.ItemCount()
}
