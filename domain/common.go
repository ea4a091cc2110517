package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "token is invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrUserNotAllowed = errors.New("user not allowed")
)

// Pagination defaults shared by every paged listing.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type (
	Pagination struct {
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
		TotalCount int64 `json:"total_count"`
		TotalPages int64 `json:"total_pages"`
	}

	PagedResult[T any] struct {
		Items      []T        `json:"items"`
		Pagination Pagination `json:"pagination"`
	}
)

// NormalizePagination applies the listing clamp rules: page defaults to 1
// when below 1, page size defaults to 10 and is clamped to [1,100].
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func TotalPages(totalCount int64, pageSize int) int64 {
	if pageSize < 1 {
		return 0
	}
	return (totalCount + int64(pageSize) - 1) / int64(pageSize)
}
