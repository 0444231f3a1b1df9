// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired entries every 5 minutes
	detailCacheCleanup = 5 * time.Minute
)

// NewDetailCache creates a cache for rendered room details
func NewDetailCache(minutes int) *cache.Cache {
	if minutes <= 0 {
		minutes = defaultConfig.Browse.DetailCacheMinutes
	}
	return cache.New(time.Duration(minutes)*time.Minute, detailCacheCleanup)
}

func CacheRoomDetail(c *cache.Cache, key string, detail string) {
	// Use Set instead of Add to allow overwriting
	c.Set(key, detail, cache.DefaultExpiration)
}

func GetRoomDetail(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillDetail returns the cached detail for key, rendering and
// caching it first if needed.
func GetOrFillDetail(c *cache.Cache, key string, render func() string) string {
	if detail := GetRoomDetail(c, key); detail != "" {
		return detail
	}
	detail := render()
	CacheRoomDetail(c, key, detail)
	return detail
}
