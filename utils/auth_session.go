package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// AuthSessionTTL bounds how long a login session is kept in Redis.
const AuthSessionTTL = 24 * time.Hour

// AuthSession records a completed login for a user or professional.
type AuthSession struct {
	SubjectID string    `json:"subjectId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // "user" or "professional"
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	TokenHash string    `json:"tokenHash,omitempty"`
}

// SaveAuthSession saves the authentication session in Redis with a TTL.
func SaveAuthSession(client *redis.Client, sessionID string, session AuthSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+sessionID, data, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the authentication session from Redis.
func GetAuthSession(client *redis.Client, sessionID string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes the authentication session from Redis.
func DeleteAuthSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	if err := client.Del(ctx, AuthSessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete auth session: %w", err)
	}
	return nil
}
