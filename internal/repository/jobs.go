package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"btp-catalogue/constants"
	"btp-catalogue/gen/ent"
	entjob "btp-catalogue/gen/ent/job"
	"btp-catalogue/internal/common"
)

type JobRepository interface {
	Start(ctx context.Context, userID int, fichier string) (*ent.Job, error)
	Complete(ctx context.Context, jobID uuid.UUID, result json.RawMessage) error
	Fail(ctx context.Context, jobID uuid.UUID, message string) error
	// Get enforces ownership: another user's job reads as not found.
	Get(ctx context.Context, jobID uuid.UUID, userID int) (*ent.Job, error)
}

type jobRepo struct {
	ent *ent.Client
	log *zap.SugaredLogger
}

func NewJobRepository(entc *ent.Client, log *zap.SugaredLogger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Start(ctx context.Context, userID int, fichier string) (*ent.Job, error) {
	job, err := r.ent.Job.
		Create().
		SetUserID(userID).
		SetFichier(fichier).
		SetStatus(string(constants.JobStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Errorw("job start failed", "user_id", userID, "error", err)
		return nil, common.NewAppError("JOB_START", "could not create job", common.ErrDatabase)
	}
	r.log.Infow("job started", "job_id", job.ID, "user_id", userID, "fichier", fichier)
	return job, nil
}

func (r *jobRepo) Complete(ctx context.Context, jobID uuid.UUID, result json.RawMessage) error {
	_, err := r.ent.Job.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusCompleted)).
		SetResult(result).
		Save(ctx)
	if err != nil {
		r.log.Errorw("job complete failed", "job_id", jobID, "error", err)
		return common.NewAppError("JOB_COMPLETE", "could not complete job", common.ErrDatabase)
	}
	r.log.Infow("job completed", "job_id", jobID)
	return nil
}

func (r *jobRepo) Fail(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.Job.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusError)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Errorw("job fail-update failed", "job_id", jobID, "error", err)
		return common.NewAppError("JOB_FAIL", "could not mark job failed", common.ErrDatabase)
	}
	r.log.Warnw("job failed", "job_id", jobID, "error", message)
	return nil
}

func (r *jobRepo) Get(ctx context.Context, jobID uuid.UUID, userID int) (*ent.Job, error) {
	job, err := r.ent.Job.
		Query().
		Where(entjob.ID(jobID), entjob.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("JOB_NOT_FOUND", "job not found", common.ErrNotFound)
		}
		return nil, common.NewAppError("JOB_GET", "could not load job", common.ErrDatabase)
	}
	return job, nil
}
