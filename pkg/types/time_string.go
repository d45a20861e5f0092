package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM
const timeFormat = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString время суток в формате "HH:MM" (без даты и без часового пояса)
// Используется для рабочих часов и границ временных интервалов внутри дня
type TimeString string

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate проверяет, что значение соответствует формату HH:MM
// time.Parse принимает часы без ведущего нуля, поэтому длина
// проверяется отдельно
func (t TimeString) Validate() error {
	if len(t) != len(timeFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// minutes возвращает количество минут с начала суток
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// OnDate привязывает время суток к конкретной дате в часовом поясе этой даты
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	total, err := t.minutes()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		total/60, total%60, 0, 0,
		date.Location(),
	), nil
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON десериализует время из строки с валидацией формата
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
