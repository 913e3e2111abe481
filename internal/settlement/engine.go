package settlement

import "errors"

var ErrNoParticipants = errors.New("settlement requires at least one participant")

// Share is one participant's computed portion of a session's costs.
type Share struct {
	MemberID    int
	CourtShare  float64
	RacketShare float64
	WaterShare  float64
}

func (s Share) Total() float64 {
	return s.CourtShare + s.RacketShare + s.WaterShare
}

// Costs are the session totals being split.
type Costs struct {
	CourtPrice  float64
	RacketPrice float64
	WaterPrice  float64
}

// ComputeShares splits the session costs across participants. The court price
// is divided evenly over every participant; the racket and water prices are
// divided only over their opt-in subsets, and participants outside a subset
// owe zero for that category. Opt-ins not present in the participant list are
// ignored. No rounding is applied.
func ComputeShares(costs Costs, participants, racketParticipants, waterParticipants []int) ([]Share, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	inSession := make(map[int]bool, len(participants))
	for _, id := range participants {
		inSession[id] = true
	}

	racket := subset(racketParticipants, inSession)
	water := subset(waterParticipants, inSession)

	courtShare := costs.CourtPrice / float64(len(participants))

	var racketShare float64
	if len(racket) > 0 {
		racketShare = costs.RacketPrice / float64(len(racket))
	}
	var waterShare float64
	if len(water) > 0 {
		waterShare = costs.WaterPrice / float64(len(water))
	}

	shares := make([]Share, 0, len(participants))
	for _, id := range participants {
		s := Share{MemberID: id, CourtShare: courtShare}
		if racket[id] {
			s.RacketShare = racketShare
		}
		if water[id] {
			s.WaterShare = waterShare
		}
		shares = append(shares, s)
	}
	return shares, nil
}

func subset(ids []int, inSession map[int]bool) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		if inSession[id] {
			m[id] = true
		}
	}
	return m
}
