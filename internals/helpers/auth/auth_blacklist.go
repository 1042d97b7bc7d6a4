package helper

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenBlacklist rows hold the HMAC of a revoked access token, never the
// token itself.
type TokenBlacklist struct {
	Token     string    `gorm:"column:token;primaryKey"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

func hmacHex(msg, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

// Blacklist revokes access tokens until they expire.
type Blacklist struct {
	DB     *gorm.DB
	Secret string
}

func NewBlacklist(db *gorm.DB, secret string) *Blacklist {
	return &Blacklist{DB: db, Secret: secret}
}

// Add stores the token, refreshing expired_at when it is already present.
func (b *Blacklist) Add(ctx context.Context, rawAccessToken string, expiresAt time.Time) error {
	if strings.TrimSpace(rawAccessToken) == "" {
		return nil
	}
	row := TokenBlacklist{Token: hmacHex(rawAccessToken, b.Secret), ExpiredAt: expiresAt.UTC()}
	return b.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"expired_at"}),
		}).
		Create(&row).Error
}

// IsBlacklisted reports whether an unexpired entry exists for the token.
func (b *Blacklist) IsBlacklisted(ctx context.Context, rawAccessToken string) (bool, error) {
	if strings.TrimSpace(rawAccessToken) == "" {
		return false, nil
	}
	var n int64
	err := b.DB.WithContext(ctx).
		Model(&TokenBlacklist{}).
		Where("token = ? AND expired_at > NOW()", hmacHex(rawAccessToken, b.Secret)).
		Count(&n).Error
	return n > 0, err
}

// PurgeExpired deletes entries that expired before the cutoff.
func PurgeExpired(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expired_at < ?", before.UTC()).
		Delete(&TokenBlacklist{})
	return res.RowsAffected, res.Error
}
