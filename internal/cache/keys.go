package cache

import "strings"

const (
	GlobalKeyPrefix = "topicquiz"

	// SessionService and SessionHash name the hash holding one quiz session.
	SessionService = "session"
	SessionHash    = "hash"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SessionKey is the key of the hash storing the session with id sessionID.
func SessionKey(sessionID string) string {
	return GenerateCacheKey(SessionService, SessionHash, sessionID)
}
