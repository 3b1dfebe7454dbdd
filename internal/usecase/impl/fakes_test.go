package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore backs every repository fake and enforces the same uniqueness and
// reference rules as the database schema.
type memoryStore struct {
	mu         sync.Mutex
	principals map[uuid.UUID]*entity.Principal
	teachers   map[uuid.UUID]*entity.Teacher
	students   map[uuid.UUID]*entity.Student
	classes    map[uuid.UUID]*entity.Class
	writes     int
	failWith   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		principals: make(map[uuid.UUID]*entity.Principal),
		teachers:   make(map[uuid.UUID]*entity.Teacher),
		students:   make(map[uuid.UUID]*entity.Student),
		classes:    make(map[uuid.UUID]*entity.Class),
	}
}

func (s *memoryStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}

type principalRepoFake struct{ store *memoryStore }

func (r principalRepoFake) FindByEmail(_ context.Context, email string) (*entity.Principal, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.failWith != nil {
		return nil, false, r.store.failWith
	}
	for _, p := range r.store.principals {
		if p.Email == email {
			cp := *p
			return &cp, true, nil
		}
	}

	return nil, false, nil
}

type teacherRepoFake struct{ store *memoryStore }

func (r teacherRepoFake) FindByID(_ context.Context, id uuid.UUID) (*entity.Teacher, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.failWith != nil {
		return nil, false, r.store.failWith
	}
	t, ok := r.store.teachers[id]
	if !ok {
		return nil, false, nil
	}
	cp := *t

	return &cp, true, nil
}

func (r teacherRepoFake) FindByEmail(_ context.Context, email string) (*entity.Teacher, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.failWith != nil {
		return nil, false, r.store.failWith
	}
	for _, t := range r.store.teachers {
		if t.Email == email {
			cp := *t
			return &cp, true, nil
		}
	}

	return nil, false, nil
}

func (r teacherRepoFake) Create(_ context.Context, teacher *entity.Teacher) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.teachers {
		if t.Email == teacher.Email {
			return domainerrors.ErrDuplicateAccount
		}
	}
	cp := *teacher
	r.store.teachers[teacher.ID] = &cp
	r.store.writes++

	return nil
}

type studentRepoFake struct{ store *memoryStore }

func (r studentRepoFake) FindByID(_ context.Context, id uuid.UUID) (*entity.Student, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.students[id]
	if !ok {
		return nil, false, nil
	}
	cp := *s

	return &cp, true, nil
}

func (r studentRepoFake) FindByEmail(_ context.Context, email string) (*entity.Student, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.failWith != nil {
		return nil, false, r.store.failWith
	}
	for _, s := range r.store.students {
		if s.Email == email {
			cp := *s
			return &cp, true, nil
		}
	}

	return nil, false, nil
}

func (r studentRepoFake) Create(_ context.Context, student *entity.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.students {
		if s.Email == student.Email {
			return domainerrors.ErrDuplicateAccount
		}
	}
	if _, ok := r.store.classes[student.ClassID]; !ok {
		return domainerrors.ErrClassNotFound
	}
	cp := *student
	r.store.students[student.ID] = &cp
	r.store.writes++

	return nil
}

type classRepoFake struct{ store *memoryStore }

func (r classRepoFake) FindByID(_ context.Context, id uuid.UUID) (*entity.Class, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.failWith != nil {
		return nil, false, r.store.failWith
	}
	c, ok := r.store.classes[id]
	if !ok {
		return nil, false, nil
	}
	cp := *c

	return &cp, true, nil
}

func (r classRepoFake) FindByTeacherID(_ context.Context, teacherID uuid.UUID) (*entity.Class, bool, error) {
	return r.find(func(c *entity.Class) bool { return c.TeacherID == teacherID })
}

func (r classRepoFake) FindByName(_ context.Context, className string) (*entity.Class, bool, error) {
	return r.find(func(c *entity.Class) bool { return c.ClassName == className })
}

func (r classRepoFake) find(match func(*entity.Class) bool) (*entity.Class, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.failWith != nil {
		return nil, false, r.store.failWith
	}
	for _, c := range r.store.classes {
		if match(c) {
			cp := *c
			return &cp, true, nil
		}
	}

	return nil, false, nil
}

func (r classRepoFake) Create(_ context.Context, class *entity.Class) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teachers[class.TeacherID]; !ok {
		return domainerrors.ErrTeacherNotFound
	}
	for _, c := range r.store.classes {
		if c.TeacherID == class.TeacherID {
			return domainerrors.ErrTeacherAlreadyHasClass
		}
		if c.ClassName == class.ClassName {
			return domainerrors.ErrClassNameTaken
		}
	}
	cp := *class
	r.store.classes[class.ID] = &cp
	r.store.writes++

	return nil
}

// captureNotifier keeps every emitted event for inspection.
type captureNotifier struct {
	mu     sync.Mutex
	events []*entity.CredentialEvent
}

func (n *captureNotifier) Emit(_ context.Context, event *entity.CredentialEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.events = append(n.events, event)
}

func (n *captureNotifier) captured() []*entity.CredentialEvent {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]*entity.CredentialEvent(nil), n.events...)
}

// countingGenerator wraps a fixed password and counts Generate calls.
type countingGenerator struct {
	password string
	err      error
	calls    int
}

func (g *countingGenerator) Generate() (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}

	return g.password, nil
}

// plainHasher is a deterministic stand-in for bcrypt in workflow tests.
type plainHasher struct {
	hashCalls   int
	verifyCalls int
}

func (h *plainHasher) Hash(_ context.Context, password string) (string, error) {
	h.hashCalls++
	return "plain$" + password, nil
}

func (h *plainHasher) Verify(_ context.Context, password, hash string) (bool, error) {
	h.verifyCalls++
	if len(hash) < len("plain$") || hash[:len("plain$")] != "plain$" {
		return false, domainerrors.ErrCredentialFormat
	}

	return hash == "plain$"+password, nil
}

type metricsFake struct {
	mu          sync.Mutex
	logins      map[string]int
	provisioned map[entity.Role]int
	classes     int
}

func newMetricsFake() *metricsFake {
	return &metricsFake{
		logins:      make(map[string]int),
		provisioned: make(map[entity.Role]int),
	}
}

func (m *metricsFake) LoginAttempt(role entity.Role, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins[role.String()+"/"+outcome]++
}

func (m *metricsFake) AccountProvisioned(role entity.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.provisioned[role]++
}

func (m *metricsFake) ClassCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classes++
}

func (m *metricsFake) Notification(string) {}

var errStoreDown = errors.New("connection refused")
