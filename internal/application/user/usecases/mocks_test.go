package usecases

import (
	"context"

	"tally/internal/application/user/sessions"
	domainUser "tally/internal/domain/user"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// fakeUserRepo keeps users in memory with the repository's
// (nil, nil)-on-absent contract.
type fakeUserRepo struct {
	byID     map[string]*domainUser.User
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domainUser.User)}
}

func (r *fakeUserRepo) add(u *domainUser.User) {
	r.byID[u.ID] = u
}

func (r *fakeUserRepo) Create(ctx context.Context, u *domainUser.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return errors.NewConflictError("email address is already registered")
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*domainUser.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *domainUser.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, found := r.byID[u.ID]; !found {
		return errors.NewNotFoundError("user not found")
	}
	r.byID[u.ID] = u
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*domainUser.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domainUser.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *domainUser.Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, sessionID string) (*domainUser.Session, error) {
	s, found := r.sessions[sessionID]
	if !found {
		return nil, errors.NewNotFoundError("session not found")
	}
	return s, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if _, found := r.sessions[sessionID]; !found {
		return errors.NewNotFoundError("session not found")
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeSessionRepo) DeleteByUserID(ctx context.Context, userID string) error {
	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(ctx context.Context) error {
	for id, s := range r.sessions {
		if s.IsExpired() {
			delete(r.sessions, id)
		}
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestSessionManager() (*sessions.Manager, *fakeSessionRepo) {
	repo := newFakeSessionRepo()
	return sessions.NewManager(repo, noopLogger{}), repo
}
