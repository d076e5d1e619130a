package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hmcall/quizden/internal/apperrors"
	"github.com/hmcall/quizden/internal/model"
	"github.com/hmcall/quizden/internal/queue"
)

// In-memory repository fakes. The answer fake guards every operation with a
// mutex so the Claim path has the same effectively-atomic conditional-update
// behavior the SQL implementation relies on.

type fakeAnswerRepo struct {
	mu      sync.Mutex
	seq     int
	answers []*model.Answer
	order   map[string]int // insertion order, tie-break for equal timestamps
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{order: make(map[string]int)}
}

func (r *fakeAnswerRepo) CreateBatch(answers []model.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range answers {
		a := answers[i]
		r.answers = append(r.answers, &a)
		r.order[a.ID] = r.seq
		r.seq++
	}
	return nil
}

func (r *fakeAnswerRepo) FindByID(id string) (*model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.answers {
		if a.ID == id {
			copy := *a
			return &copy, nil
		}
	}
	return nil, apperrors.ErrAnswerNotFound
}

func (r *fakeAnswerRepo) FindByGameID(gameID string) ([]model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Answer
	for _, a := range r.answers {
		if a.GameID == gameID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAnswerRepo) FindByUserID(userID string) ([]model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Answer
	for _, a := range r.answers {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAnswerRepo) FindUnusedByGameAndUser(gameID, userID string) ([]model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Answer
	for _, a := range r.answers {
		if a.GameID == gameID && a.UserID == userID && a.Status == model.AnswerStatusNotUsed {
			out = append(out, *a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return r.order[out[i].ID] < r.order[out[j].ID]
	})
	return out, nil
}

func (r *fakeAnswerRepo) Claim(id string, answerText string, isCorrect bool, solvedAt *time.Time, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.answers {
		if a.ID != id {
			continue
		}
		if a.Status != model.AnswerStatusNotUsed {
			return false, nil
		}
		a.Status = model.AnswerStatusSubmitted
		a.AnswerText = answerText
		a.IsCorrect = isCorrect
		a.SolvedAt = solvedAt
		a.UpdatedAt = now
		return true, nil
	}
	return false, nil
}

func (r *fakeAnswerRepo) FindCorrectSubmittedByGame(gameID string) ([]model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Answer
	for _, a := range r.answers {
		if a.GameID == gameID && a.Status == model.AnswerStatusSubmitted && a.IsCorrect && a.SolvedAt != nil {
			out = append(out, *a)
		}
	}
	r.sortRanked(out)
	return out, nil
}

func (r *fakeAnswerRepo) UpdatePoint(id string, point int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.answers {
		if a.ID == id {
			a.Point = point
			return nil
		}
	}
	return apperrors.ErrAnswerNotFound
}

func (r *fakeAnswerRepo) TopRankedByGame(gameID string, limit int) ([]model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Answer
	for _, a := range r.answers {
		if a.GameID == gameID && a.Status == model.AnswerStatusSubmitted && a.IsCorrect &&
			a.SolvedAt != nil && a.User.Role == model.RoleUser {
			out = append(out, *a)
		}
	}
	r.sortRanked(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAnswerRepo) sortRanked(answers []model.Answer) {
	sort.SliceStable(answers, func(i, j int) bool {
		if !answers[i].SolvedAt.Equal(*answers[j].SolvedAt) {
			return answers[i].SolvedAt.Before(*answers[j].SolvedAt)
		}
		if !answers[i].CreatedAt.Equal(answers[j].CreatedAt) {
			return answers[i].CreatedAt.Before(answers[j].CreatedAt)
		}
		return answers[i].ID < answers[j].ID
	})
}

type fakeGameRepo struct {
	mu    sync.Mutex
	games map[string]*model.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[string]*model.Game)}
}

func (r *fakeGameRepo) Create(game *model.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *game
	r.games[game.ID] = &copy
	return nil
}

func (r *fakeGameRepo) Update(game *model.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *game
	r.games[game.ID] = &copy
	return nil
}

func (r *fakeGameRepo) FindByID(id string) (*model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game, ok := r.games[id]
	if !ok {
		return nil, apperrors.ErrGameNotFound
	}
	copy := *game
	return &copy, nil
}

func (r *fakeGameRepo) FindAll(status *model.GameStatus) ([]model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Game
	for _, g := range r.games {
		if status == nil || g.Status == *status {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return out, nil
}

func (r *fakeGameRepo) FindCurrent() (*model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var current *model.Game
	for _, g := range r.games {
		if current == nil || g.CreatedAt.After(current.CreatedAt) {
			current = g
		}
	}
	if current == nil {
		return nil, apperrors.ErrGameNotFound
	}
	copy := *current
	return &copy, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *user
	r.users[user.ID] = &copy
	return nil
}

func (r *fakeUserRepo) UpdatePoint(id string, point int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Point = point
	return nil
}

type fakeScoreQueue struct {
	mu         sync.Mutex
	jobs       []queue.ScoreJob
	enqueueErr error
}

func (q *fakeScoreQueue) Enqueue(_ context.Context, job queue.ScoreJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeScoreQueue) Dequeue(_ context.Context) (*queue.ScoreJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.jobs) == 0 {
		return nil, nil
	}
	job := q.jobs[0]
	q.jobs = q.jobs[1:]
	return &job, nil
}

func (q *fakeScoreQueue) enqueued() []queue.ScoreJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]queue.ScoreJob(nil), q.jobs...)
}
