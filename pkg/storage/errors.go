package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	ErrInvalidConfig = errors.New("storage: bucket and credentials are required")
	ErrNotFound      = errors.New("storage: no such object")
	ErrAccessDenied  = errors.New("storage: access denied")
	ErrGetFailed     = errors.New("storage: get object failed")
	ErrUnavailable   = errors.New("storage: bucket unavailable")
)

// errorCodes maps S3 API error codes onto sentinels.
var errorCodes = map[string]error{
	"NoSuchKey":    ErrNotFound,
	"NotFound":     ErrNotFound,
	"NoSuchBucket": ErrNotFound,
	"AccessDenied": ErrAccessDenied,
	"Forbidden":    ErrAccessDenied,
}

// wrapS3Error maps AWS failures onto the package sentinels, using fallback
// for anything unrecognized. The AWS error stays in the message only.
func wrapS3Error(err, fallback error) error {
	sentinel := fallback

	var noSuchKey *types.NoSuchKey
	var apiErr smithy.APIError
	switch {
	case errors.As(err, &noSuchKey):
		sentinel = ErrNotFound
	case errors.As(err, &apiErr):
		if mapped, ok := errorCodes[apiErr.ErrorCode()]; ok {
			sentinel = mapped
		}
	}

	return fmt.Errorf("%w: %v", sentinel, err)
}
