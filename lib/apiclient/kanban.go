package apiclient

import (
	"context"

	"talentflow-backend/lib/optimistic"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// BoardState is the pipeline grouped by stage, one column per stage in
// forward order.
type BoardState map[models.Stage][]dbmodels.Candidate

// KanbanBoard keeps a client-side copy of the candidate pipeline and
// applies stage moves optimistically: the card jumps columns at once,
// and comes back if the server rejects the move.
type KanbanBoard struct {
	client *Client
	coord  *optimistic.Coordinator[BoardState]
}

func NewKanbanBoard(client *Client) *KanbanBoard {
	return &KanbanBoard{
		client: client,
		coord:  optimistic.NewCoordinator(BoardState{}),
	}
}

// Load replaces the local board with the server pipeline for a job.
func (b *KanbanBoard) Load(ctx context.Context, jobID string) error {
	state := BoardState{}
	page := 1
	for {
		resp, err := b.client.GetCandidates(ctx, CandidatesQuery{JobID: jobID, Page: page, Limit: 100})
		if err != nil {
			return err
		}
		for _, rec := range resp.Data {
			state[rec.CurrentStage] = append(state[rec.CurrentStage], rec)
		}
		if int64(page)*int64(resp.Meta.Limit) >= resp.Meta.Total {
			break
		}
		page++
	}
	b.coord.Mutate(ctx, func(BoardState) BoardState { return state }, func(context.Context) error { return nil })
	return nil
}

func (b *KanbanBoard) State() BoardState {
	return b.coord.State()
}

// Err is the transient message of the last failed move, nil once it
// has auto-cleared.
func (b *KanbanBoard) Err() error {
	return b.coord.Err()
}

// MoveCandidate shifts the card locally, then commits the transition.
func (b *KanbanBoard) MoveCandidate(ctx context.Context, candidateID string, toStage models.Stage) error {
	return b.coord.Mutate(ctx,
		func(state BoardState) BoardState {
			return moveCard(state, candidateID, toStage)
		},
		func(ctx context.Context) error {
			_, err := b.client.UpdateCandidateStage(ctx, candidateID, toStage)
			return err
		})
}

func moveCard(state BoardState, candidateID string, toStage models.Stage) BoardState {
	out := BoardState{}
	var card *dbmodels.Candidate
	for stage, column := range state {
		kept := make([]dbmodels.Candidate, 0, len(column))
		for _, rec := range column {
			if rec.ID == candidateID {
				moved := rec
				card = &moved
				continue
			}
			kept = append(kept, rec)
		}
		out[stage] = kept
	}
	if card == nil {
		return state
	}
	card.CurrentStage = toStage
	out[toStage] = append(out[toStage], *card)
	return out
}
