package leaderboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/themequiz/internal/domain"
)

func TestMemoryStore_ListDoesNotAllocate(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		arrange func(t *testing.T, s *MemoryStore)
		assert  func(t *testing.T, s *MemoryStore)
	}{
		"unknown quiz types should not create boards": {
			arrange: func(t *testing.T, s *MemoryStore) {
				for i := 0; i < 100; i++ {
					l, err := s.List(ctx, fmt.Sprintf("quiz-%d", i))
					require.NoError(t, err)
					assert.Empty(t, l)
					assert.NotNil(t, l)
				}
			},

			assert: func(t *testing.T, s *MemoryStore) {
				assert.Empty(t, s.boards)
			},
		},

		"recorded quiz types keep their board": {
			arrange: func(t *testing.T, s *MemoryStore) {
				require.NoError(t, s.Record(ctx, "treasure", domain.LeaderboardEntry{SessionID: "s1", Score: 4, TotalTime: time.Second}))
				_, err := s.List(ctx, "mythology")
				require.NoError(t, err)
			},

			assert: func(t *testing.T, s *MemoryStore) {
				assert.Len(t, s.boards, 1)
				assert.Contains(t, s.boards, "treasure")

				l, err := s.List(ctx, "treasure")
				require.NoError(t, err)
				require.Len(t, l, 1)
				assert.Equal(t, "s1", l[0].SessionID)
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			s := NewMemoryStore(10)
			tt.arrange(t, s)
			tt.assert(t, s)
		})
	}
}
