package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/ptr"
)

// PathInt64 извлекает положительный int64 из переменной пути
func PathInt64(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return value, nil
}

// QueryString возвращает указатель на непустой query параметр
func QueryString(r *http.Request, name string) *string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	return ptr.Ptr(value)
}

// QueryInt64 парсит опциональный int64 query параметр
func QueryInt64(r *http.Request, name string) (*int64, error) {
	return queryValue(r, name, func(raw string) (int64, error) {
		return strconv.ParseInt(raw, 10, 64)
	})
}

// QueryInt парсит опциональный int query параметр
func QueryInt(r *http.Request, name string) (*int, error) {
	return queryValue(r, name, strconv.Atoi)
}

// QueryFloat64 парсит опциональный float64 query параметр
func QueryFloat64(r *http.Request, name string) (*float64, error) {
	return queryValue(r, name, func(raw string) (float64, error) {
		return strconv.ParseFloat(raw, 64)
	})
}

// QueryBool парсит опциональный bool query параметр
func QueryBool(r *http.Request, name string) (*bool, error) {
	return queryValue(r, name, strconv.ParseBool)
}

// queryValue отсутствующий параметр дает nil без ошибки
func queryValue[T any](r *http.Request, name string, parse func(string) (T, error)) (*T, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return ptr.Ptr(value), nil
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(domain.DateFormat, raw)
}
