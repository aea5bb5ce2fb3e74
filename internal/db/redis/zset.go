package redis

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/db"
)

// ZIncrBy increments the score of member in the sorted set at key.
func (s *Store) ZIncrBy(ctx context.Context, key, member string, increment float64) error {
	cmd := s.b().Zincrby().Key(key).Increment(increment).Member(member).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpZIncrBy, Err: err}
	}
	return nil
}

// ZRevRange returns members with scores between start and stop ranks, highest score first.
func (s *Store) ZRevRange(ctx context.Context, key string, start, stop int) ([]db.SortedSetMember, error) {
	cmd := s.b().Zrevrange().Key(key).Start(int64(start)).Stop(int64(stop)).Withscores().Build()
	scores, err := s.do(ctx, cmd).AsZScores()
	if err != nil {
		return nil, &db.Error{Op: db.OpZRange, Err: err}
	}

	out := make([]db.SortedSetMember, len(scores))
	for i, z := range scores {
		out[i] = db.SortedSetMember{Member: z.Member, Score: z.Score}
	}
	return out, nil
}

// ZCard returns the cardinality of the sorted set at key.
func (s *Store) ZCard(ctx context.Context, key string) (int, error) {
	cmd := s.b().Zcard().Key(key).Build()
	n, err := s.do(ctx, cmd).AsInt64()
	if err != nil {
		return 0, &db.Error{Op: db.OpZCard, Err: err}
	}
	return int(n), nil
}
