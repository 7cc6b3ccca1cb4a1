package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "session",
			objectType:  "hash",
			identifier:  "01HZX",
			expectedKey: "topicquiz:session:hash:01HZX",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "session",
			objectType:  "hash",
			identifier:  "01HZX",
			paramsKey:   []string{},
			expectedKey: "topicquiz:session:hash:01HZX",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "quiz",
			objectType:  "generation",
			identifier:  "01HZX",
			paramsKey:   []string{"questions", "5"},
			expectedKey: "topicquiz:quiz:generation:01HZX:questions_5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			assert.Equal(t, tt.expectedKey, actualKey)
		})
	}
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "topicquiz:session:hash:01HZX", SessionKey("01HZX"))
}
