package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PathInt64 извлекает положительный int64 из переменной маршрута
func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path variable %q", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path variable %q: %w", name, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("path variable %q must be positive", name)
	}
	return v, nil
}

// QueryInt возвращает необязательный целочисленный query параметр; пустое значение = nil
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("query parameter %q: %w", name, err)
	}
	return &v, nil
}

// QueryInt64 возвращает необязательный int64 query параметр; пустое значение = nil
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("query parameter %q: %w", name, err)
	}
	return &v, nil
}
