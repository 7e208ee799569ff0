package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/Vickyvkz7/SIH2025/internal/entity"
	"gorm.io/gorm"
)

// In-memory repositories. The db argument is ignored.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	u, err := r.FindByEmail(db, email)
	return u != nil, err
}

func (r *fakeUserRepo) Save(_ *gorm.DB, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

type fakeChatRepo struct {
	mu       sync.Mutex
	messages map[string][]entity.ChatMessage
	nextID   uint
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{messages: map[string][]entity.ChatMessage{}}
}

func (r *fakeChatRepo) FindByUserID(_ *gorm.DB, userID string) ([]entity.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]entity.ChatMessage(nil), r.messages[userID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakeChatRepo) Append(_ *gorm.DB, messages []entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range messages {
		r.nextID++
		m.ID = r.nextID
		m.CreatedAt = time.Now()
		r.messages[m.UserID] = append(r.messages[m.UserID], m)
	}
	return nil
}

func (r *fakeChatRepo) Replace(db *gorm.DB, userID string, messages []entity.ChatMessage) error {
	r.mu.Lock()
	delete(r.messages, userID)
	r.mu.Unlock()
	return r.Append(db, messages)
}

type fakeQuizRepo struct {
	mu      sync.Mutex
	results []entity.QuizResult
}

func (r *fakeQuizRepo) Create(_ *gorm.DB, result *entity.QuizResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	result.ID = uint(len(r.results) + 1)
	result.CreatedAt = time.Date(2025, 1, 1, 10, 0, len(r.results), 0, time.UTC)
	r.results = append(r.results, *result)
	return nil
}

func (r *fakeQuizRepo) FindLatestByUserID(_ *gorm.DB, userID string) (*entity.QuizResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].UserID == userID {
			res := r.results[i]
			return &res, nil
		}
	}
	return nil, nil
}

type fakeCollegeRepo struct {
	mu           sync.Mutex
	colleges     []entity.College
	applications []entity.CollegeApplication
}

func (r *fakeCollegeRepo) FindAll(_ *gorm.DB) ([]entity.College, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]entity.College(nil), r.colleges...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCollegeRepo) FindByID(_ *gorm.DB, id uint) (*entity.College, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.colleges {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCollegeRepo) Upsert(_ *gorm.DB, colleges []entity.College) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range colleges {
		replaced := false
		for i := range r.colleges {
			if r.colleges[i].ID == c.ID {
				r.colleges[i] = c
				replaced = true
			}
		}
		if !replaced {
			r.colleges = append(r.colleges, c)
		}
	}
	return nil
}

func (r *fakeCollegeRepo) CreateApplication(_ *gorm.DB, application *entity.CollegeApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	application.ID = uint(len(r.applications) + 1)
	r.applications = append(r.applications, *application)
	return nil
}

func (r *fakeCollegeRepo) ExistsApplication(_ *gorm.DB, userID string, collegeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.UserID == userID && a.CollegeID == collegeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCollegeRepo) FindApplicationsByUserID(_ *gorm.DB, userID string) ([]entity.CollegeApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.CollegeApplication
	for _, a := range r.applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}
