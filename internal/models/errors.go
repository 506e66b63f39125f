package models

import "errors"

var (
	// ErrInvalidParameter - некорректные или отсутствующие параметры запроса (400)
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNotFound - запись не найдена (404)
	ErrNotFound = errors.New("not found")
	// ErrNoResultsFound - ни один геокодер не вернул подходящий результат (404)
	ErrNoResultsFound = errors.New("no results found")
	// ErrGeocodingFailed - ошибка последнего геокодера в цепочке (500)
	ErrGeocodingFailed = errors.New("geocoding failed")
)
