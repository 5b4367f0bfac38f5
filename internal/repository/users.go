package repository

import (
	"context"

	"go.uber.org/zap"

	"btp-catalogue/gen/ent"
	entuser "btp-catalogue/gen/ent/user"
	"btp-catalogue/internal/common"
)

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, displayName, role string) (*ent.User, error)
	GetByEmail(ctx context.Context, email string) (*ent.User, error)
	GetByID(ctx context.Context, id int) (*ent.User, error)
}

type userRepo struct {
	ent *ent.Client
	log *zap.SugaredLogger
}

func NewUserRepository(entc *ent.Client, log *zap.SugaredLogger) UserRepository {
	return &userRepo{ent: entc, log: log}
}

func (r *userRepo) Create(ctx context.Context, email, passwordHash, displayName, role string) (*ent.User, error) {
	c := r.ent.User.
		Create().
		SetEmail(email).
		SetPasswordHash(passwordHash).
		SetRole(role)
	if displayName != "" {
		c.SetDisplayName(displayName)
	}
	u, err := c.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.NewAppError("USER_EXISTS", "email already registered", common.ErrInvalidInput)
		}
		r.log.Errorw("user create failed", "email", email, "error", err)
		return nil, common.NewAppError("USER_CREATE", "could not create user", common.ErrDatabase)
	}
	r.log.Infow("user created", "user_id", u.ID, "role", role)
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	u, err := r.ent.User.
		Query().
		Where(entuser.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("USER_NOT_FOUND", "user not found", common.ErrNotFound)
		}
		return nil, common.NewAppError("USER_GET", "could not load user", common.ErrDatabase)
	}
	return u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int) (*ent.User, error) {
	u, err := r.ent.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("USER_NOT_FOUND", "user not found", common.ErrNotFound)
		}
		return nil, common.NewAppError("USER_GET", "could not load user", common.ErrDatabase)
	}
	return u, nil
}
