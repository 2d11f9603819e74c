package timegrid

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// matrixCacheSize bounds each per-shape cache. Anchors are
// human-paced (navigation clicks), so a small LRU is plenty.
const matrixCacheSize = 64

// Cache memoizes matrix builds keyed by anchor. Safe because the
// builders are pure; cached slices must be treated as read-only.
type Cache struct {
	day   *lru.Cache[string, []time.Time]
	week  *lru.Cache[string, [][]time.Time]
	month *lru.Cache[string, []time.Time]
}

// NewCache creates an empty matrix cache.
func NewCache() *Cache {
	day, _ := lru.New[string, []time.Time](matrixCacheSize)
	week, _ := lru.New[string, [][]time.Time](matrixCacheSize)
	month, _ := lru.New[string, []time.Time](matrixCacheSize)
	return &Cache{day: day, week: week, month: month}
}

// DayMatrix is a memoized DayMatrix.
func (c *Cache) DayMatrix(day time.Time) []time.Time {
	key := anchorKey(day)
	if m, ok := c.day.Get(key); ok {
		return m
	}
	m := DayMatrix(day)
	c.day.Add(key, m)
	return m
}

// WeekMatrix is a memoized WeekMatrix, keyed by the week's first day.
func (c *Cache) WeekMatrix(week []time.Time) [][]time.Time {
	key := anchorKey(week[0])
	if m, ok := c.week.Get(key); ok {
		return m
	}
	m := WeekMatrix(week)
	c.week.Add(key, m)
	return m
}

// MonthMatrix is a memoized MonthMatrix, keyed by month and alignment.
func (c *Cache) MonthMatrix(day time.Time, aligned bool) []time.Time {
	key := fmt.Sprintf("%s|%t", anchorKey(StartOfMonth(day)), aligned)
	if m, ok := c.month.Get(key); ok {
		return m
	}
	m := MonthMatrix(day, aligned)
	c.month.Add(key, m)
	return m
}

func anchorKey(t time.Time) string {
	return t.Format("2006-01-02") + "|" + t.Location().String()
}
