package apiclient

import (
	"context"

	"talentflow-backend/lib/optimistic"
	"talentflow-backend/models"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

// JobBoardState is the jobs list in board order.
type JobBoardState []dbmodels.Job

// JobBoard keeps a client-side copy of the jobs board. Archive toggles
// and reorders apply locally first and are undone when the server
// rejects the commit, same protocol as the candidate kanban.
type JobBoard struct {
	client *Client
	coord  *optimistic.Coordinator[JobBoardState]
}

func NewJobBoard(client *Client) *JobBoard {
	return &JobBoard{
		client: client,
		coord:  optimistic.NewCoordinator(JobBoardState{}),
	}
}

// Load replaces the local board with the server list.
func (b *JobBoard) Load(ctx context.Context) error {
	state := JobBoardState{}
	page := 1
	for {
		resp, err := b.client.GetJobs(ctx, JobsQuery{Page: page, Limit: 100})
		if err != nil {
			return err
		}
		state = append(state, resp.Data...)
		if int64(page)*int64(resp.Meta.Limit) >= resp.Meta.Total {
			break
		}
		page++
	}
	b.coord.Mutate(ctx, func(JobBoardState) JobBoardState { return state }, func(context.Context) error { return nil })
	return nil
}

func (b *JobBoard) State() JobBoardState {
	return b.coord.State()
}

// Err is the transient message of the last failed mutation, nil once
// it has auto-cleared.
func (b *JobBoard) Err() error {
	return b.coord.Err()
}

// SetStatus flips a job's status locally, then commits the PATCH.
// Archiving and unarchiving are the common cases.
func (b *JobBoard) SetStatus(ctx context.Context, jobID string, status models.JobStatus) error {
	return b.coord.Mutate(ctx,
		func(state JobBoardState) JobBoardState {
			out := cloneBoard(state)
			for i := range out {
				if out[i].ID == jobID {
					out[i].Status = status
					break
				}
			}
			return out
		},
		func(ctx context.Context) error {
			_, err := b.client.UpdateJob(ctx, jobID, jobapimodels.JobUpdate{Status: &status})
			return err
		})
}

// Reorder rearranges the local board to the given id sequence, then
// commits; a rejected commit restores the previous order.
func (b *JobBoard) Reorder(ctx context.Context, orderedIDs []string) error {
	return b.coord.Mutate(ctx,
		func(state JobBoardState) JobBoardState {
			byID := make(map[string]dbmodels.Job, len(state))
			for _, job := range state {
				byID[job.ID] = job
			}
			out := make(JobBoardState, 0, len(state))
			for idx, id := range orderedIDs {
				job, ok := byID[id]
				if !ok {
					continue
				}
				job.JobOrder = idx
				out = append(out, job)
				delete(byID, id)
			}
			// jobs absent from the sequence keep their relative order at the tail
			for _, job := range state {
				if _, ok := byID[job.ID]; ok {
					job.JobOrder = len(out)
					out = append(out, job)
				}
			}
			return out
		},
		func(ctx context.Context) error {
			return b.client.ReorderJobs(ctx, orderedIDs)
		})
}

func cloneBoard(state JobBoardState) JobBoardState {
	out := make(JobBoardState, len(state))
	copy(out, state)
	return out
}
