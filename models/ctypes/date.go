package ctypes

import (
	"fmt"
	"strings"
	"time"
)

// 日期的文本格式，巴西习惯的 DD/MM/YYYY
const dateLayout = "02/01/2006"

// Date 日历日期，序列化为 DD/MM/YYYY 文本
type Date time.Time

// Today 获取当天日期
func Today() Date {
	now := time.Now()
	return Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}

// NewDate 构造指定日期
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate 解析 DD/MM/YYYY 文本
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("无法解析日期 %q: %w", s, err)
	}
	return Date(t), nil
}

// MarshalJSON json.Marshal 的时候会自动调用这个方法
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

// UnmarshalJSON json.Unmarshal 的时候会自动调用这个方法
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	tmp, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = tmp
	return nil
}

// String 实现 Stringer 接口，方便打印
func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// Before 判断是否早于另一个日期
func (d Date) Before(other Date) bool {
	return time.Time(d).Before(time.Time(other))
}

// After 判断是否晚于另一个日期
func (d Date) After(other Date) bool {
	return time.Time(d).After(time.Time(other))
}

// Equal 判断是否为同一天
func (d Date) Equal(other Date) bool {
	return time.Time(d).Equal(time.Time(other))
}

// IsZero 判断是否为零值
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}
