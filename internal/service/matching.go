package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"campus_match/internal/metrics"
	"campus_match/internal/models"
	"campus_match/internal/repository"
)

type MatchingService struct {
	users   repository.UserRepo
	metrics *metrics.Metrics
}

func NewMatchingService(users repository.UserRepo, m *metrics.Metrics) *MatchingService {
	return &MatchingService{users: users, metrics: m}
}

// Dashboard ranks the other users of current's college by shared interests.
func (s *MatchingService) Dashboard(ctx context.Context, current models.User) (models.MatchResult, error) {
	pool, err := s.users.ListByCollege(ctx, current.College, current.ID)
	if err != nil {
		return models.MatchResult{}, fmt.Errorf("load candidate pool: %w", err)
	}
	res := ComputeMatches(current, pool)
	s.metrics.ObserveMatches(len(pool), res.MatchCount)
	return res, nil
}

// ComputeMatches keeps the candidates of current's college (other than current)
// that share at least one interest with current, scores each as
// floor(100 * shared / len(current interests)) and orders by score descending,
// then candidate id ascending.
func ComputeMatches(current models.User, pool []models.User) models.MatchResult {
	own := make(map[int]struct{}, len(current.Interests))
	for _, i := range current.Interests {
		own[i.ID] = struct{}{}
	}

	matches := make([]models.Match, 0, len(pool))
	for _, c := range pool {
		if c.ID == current.ID || c.College != current.College {
			continue
		}
		shared := sharedInterests(own, c.Interests)
		if len(shared) == 0 {
			continue
		}
		matches = append(matches, models.Match{
			User:            models.CandidateOf(c),
			SharedInterests: shared,
			Percentage:      matchPercentage(len(shared), len(own)),
		})
	}

	slices.SortFunc(matches, func(a, b models.Match) int {
		if a.Percentage != b.Percentage {
			return cmp.Compare(b.Percentage, a.Percentage)
		}
		return cmp.Compare(a.User.ID, b.User.ID)
	})

	return models.MatchResult{Matches: matches, MatchCount: len(matches)}
}

// sharedInterests returns the distinct interests of theirs present in own, by id.
func sharedInterests(own map[int]struct{}, theirs []models.Interest) []models.Interest {
	seen := make(map[int]struct{}, len(theirs))
	out := make([]models.Interest, 0, len(theirs))
	for _, i := range theirs {
		if _, ok := own[i.ID]; !ok {
			continue
		}
		if _, dup := seen[i.ID]; dup {
			continue
		}
		seen[i.ID] = struct{}{}
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b models.Interest) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

func matchPercentage(shared, total int) int {
	if total == 0 {
		return 0
	}
	return shared * 100 / total
}
