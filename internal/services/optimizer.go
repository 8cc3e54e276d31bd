package services

import (
	"math"

	"wander/internal/models/db_models"
	"wander/pkg/utils"
)

// OptimizeDestinations reorders destinations with a greedy nearest-neighbor
// pass. The first destination stays first: it anchors a user-meaningful
// starting point, so this is not a full TSP solve and makes no optimality
// claim beyond "predictably linear-ish".
//
// Fewer than 3 destinations are returned as-is, since reordering at most
// two stops cannot change a linear visit order. Ties and unreachable (malformed
// coordinate) candidates resolve to the first one encountered in the
// remaining pool, which keeps the result deterministic.
func OptimizeDestinations(destinations []db_models.Location) []db_models.Location {
	if len(destinations) < 3 {
		return destinations
	}

	ordered := make([]db_models.Location, 0, len(destinations))
	ordered = append(ordered, destinations[0])

	remaining := make([]db_models.Location, len(destinations)-1)
	copy(remaining, destinations[1:])

	for len(remaining) > 0 {
		last := ordered[len(ordered)-1]

		bestIdx := 0
		bestDist := math.MaxFloat64
		for i, candidate := range remaining {
			d, err := utils.HaversineKm(last.Latitude, last.Longitude, candidate.Latitude, candidate.Longitude)
			if err != nil {
				// Malformed coordinates sort last.
				d = math.MaxFloat64
			}
			if d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}

		ordered = append(ordered, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return ordered
}
