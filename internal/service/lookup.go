package service

import (
	"context"
	"strconv"
)

// lookupByIDOrSlug tries key as a numeric id, then as a slug.
func lookupByIDOrSlug[T any](
	ctx context.Context,
	key string,
	byID func(context.Context, int64) (*T, error),
	bySlug func(context.Context, string) (*T, error),
) (*T, error) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil && id > 0 {
		v, err := byID(ctx, id)
		if err != nil || v != nil {
			return v, err
		}
	}
	return bySlug(ctx, key)
}
