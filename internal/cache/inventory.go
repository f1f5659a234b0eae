package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix       = "user:%d"
	PostKeyPrefix       = "post:%d"
	ResetTokenKeyPrefix = "pwreset:%s"
	RevokedJTIKeyPrefix = "revoked:%s"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// ResetTokenKey stores the user ID a password-reset token belongs to.
func ResetTokenKey(token string) string {
	return fmt.Sprintf(ResetTokenKeyPrefix, token)
}

// RevokedJTIKey marks a JWT ID as logged out until the token expires.
func RevokedJTIKey(jti string) string {
	return fmt.Sprintf(RevokedJTIKeyPrefix, jti)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
