// Package match ranks potential swap partners for a user. The Heuristic
// ranker is deterministic and always available; the Ollama ranker asks a
// local model and falls back to the heuristic whenever the model is
// unreachable or returns something it shouldn't.
package match

import (
	"context"
	"sort"

	"github.com/garnizeh/skillswap/internal/models"
)

// MaxRecommendations caps every ranker's result.
const MaxRecommendations = 3

// Ranker returns up to MaxRecommendations user ids from the pool, best
// match first. Implementations must ignore the current user and admins.
type Ranker interface {
	Recommend(ctx context.Context, current models.User, pool []models.User) ([]string, error)
}

// Heuristic scores candidates by skill-list intersections: 10 points for
// each skill they offer that the current user wants, 5 for each skill they
// want that the current user offers. Ties keep pool order. When nobody
// scores, the first candidates in pool order are returned.
type Heuristic struct{}

var _ Ranker = Heuristic{}

func (Heuristic) Recommend(_ context.Context, current models.User, pool []models.User) ([]string, error) {
	candidates := eligible(current, pool)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	requested := skillSet(current.SkillsRequested)
	offered := skillSet(current.SkillsOffered)

	type scored struct {
		id    string
		score int
	}
	matches := make([]scored, 0, len(candidates))
	for _, other := range candidates {
		score := 0
		for _, s := range other.SkillsOffered {
			if requested[s.ID] {
				score += 10
			}
		}
		for _, s := range other.SkillsRequested {
			if offered[s.ID] {
				score += 5
			}
		}
		if score > 0 {
			matches = append(matches, scored{id: other.ID, score: score})
		}
	}

	if len(matches) == 0 {
		out := make([]string, 0, MaxRecommendations)
		for _, other := range candidates {
			out = append(out, other.ID)
			if len(out) == MaxRecommendations {
				break
			}
		}
		return out, nil
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]string, 0, MaxRecommendations)
	for _, m := range matches {
		out = append(out, m.id)
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out, nil
}

func eligible(current models.User, pool []models.User) []models.User {
	out := make([]models.User, 0, len(pool))
	for _, u := range pool {
		if u.ID == current.ID || u.Role == models.RoleAdmin {
			continue
		}
		out = append(out, u)
	}
	return out
}

func skillSet(skills []models.Skill) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[s.ID] = true
	}
	return set
}
