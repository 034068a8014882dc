package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/cppla/gifter/models"
	"github.com/cppla/gifter/repositories"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	errStore     = errors.New("store unavailable")
	errDuplicate = errors.New("duplicate primary key")
)

// nextIDs hands out ids like an auto-increment column; nextID is the last one used. A nonzero id is
// inserted as given, and a taken one fails, as with the real store.
type nextIDs struct {
	taken  map[int]bool
	nextID int
}

func (n *nextIDs) assignID(id *int) error {
	if n.taken == nil {
		n.taken = map[int]bool{}
	}
	if *id != 0 {
		if n.taken[*id] {
			return errDuplicate
		}
		if *id > n.nextID {
			n.nextID = *id
		}
	} else {
		n.nextID++
		*id = n.nextID
	}
	n.taken[*id] = true
	return nil
}

// memProfiles is an in-memory UserProfileRepository.
type memProfiles struct {
	nextIDs
	rows    map[int]models.UserProfile
	err     error
	updates int
}

func newMemProfiles(seed ...models.UserProfile) *memProfiles {
	m := &memProfiles{rows: map[int]models.UserProfile{}}
	for _, p := range seed {
		m.rows[p.ID] = p
		_ = m.assignID(&p.ID)
	}
	return m
}

func (m *memProfiles) GetAll(context.Context) ([]models.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.UserProfile{}
	for _, p := range m.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProfiles) GetByID(_ context.Context, id int) (*models.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (m *memProfiles) GetByIDWithPosts(ctx context.Context, id int) (*models.UserProfile, error) {
	p, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Posts == nil {
		p.Posts = []models.Post{}
	}
	return p, nil
}

func (m *memProfiles) Add(_ context.Context, p *models.UserProfile) error {
	if m.err != nil {
		return m.err
	}
	if err := m.assignID(&p.ID); err != nil {
		return err
	}
	m.rows[p.ID] = *p
	return nil
}

func (m *memProfiles) Update(_ context.Context, p *models.UserProfile) error {
	if m.err != nil {
		return m.err
	}
	m.updates++
	if _, ok := m.rows[p.ID]; ok {
		m.rows[p.ID] = *p
	}
	return nil
}

func (m *memProfiles) Delete(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

// memPosts is an in-memory PostRepository.
type memPosts struct {
	nextIDs
	rows     map[int]models.Post
	comments map[int][]models.Comment
	err      error
	updates  int
}

func newMemPosts(seed ...models.Post) *memPosts {
	m := &memPosts{rows: map[int]models.Post{}, comments: map[int][]models.Comment{}}
	for _, p := range seed {
		m.rows[p.ID] = p
		_ = m.assignID(&p.ID)
	}
	return m
}

func (m *memPosts) sorted() []models.Post {
	out := []models.Post{}
	for _, p := range m.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memPosts) GetAll(context.Context) ([]models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(), nil
}

func (m *memPosts) GetAllWithComments(context.Context) ([]models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := m.sorted()
	for i := range out {
		out[i].Comments = append([]models.Comment{}, m.comments[out[i].ID]...)
	}
	return out, nil
}

func (m *memPosts) GetByID(_ context.Context, id int) (*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (m *memPosts) GetByIDWithComments(ctx context.Context, id int) (*models.Post, error) {
	p, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Comments = append([]models.Comment{}, m.comments[id]...)
	return p, nil
}

func (m *memPosts) Add(_ context.Context, p *models.Post) error {
	if m.err != nil {
		return m.err
	}
	if err := m.assignID(&p.ID); err != nil {
		return err
	}
	m.rows[p.ID] = *p
	return nil
}

func (m *memPosts) Update(_ context.Context, p *models.Post) error {
	if m.err != nil {
		return m.err
	}
	m.updates++
	if _, ok := m.rows[p.ID]; ok {
		m.rows[p.ID] = *p
	}
	return nil
}

func (m *memPosts) Delete(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

// memComments is an in-memory CommentRepository.
type memComments struct {
	nextIDs
	rows map[int]models.Comment
	err  error
}

func newMemComments(seed ...models.Comment) *memComments {
	m := &memComments{rows: map[int]models.Comment{}}
	for _, c := range seed {
		m.rows[c.ID] = c
		_ = m.assignID(&c.ID)
	}
	return m
}

func (m *memComments) GetByID(_ context.Context, id int) (*models.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (m *memComments) GetByPostID(_ context.Context, postID int) ([]models.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Comment{}
	for _, c := range m.rows {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memComments) Add(_ context.Context, c *models.Comment) error {
	if m.err != nil {
		return m.err
	}
	if err := m.assignID(&c.ID); err != nil {
		return err
	}
	m.rows[c.ID] = *c
	return nil
}

func (m *memComments) Update(_ context.Context, c *models.Comment) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[c.ID]; ok {
		m.rows[c.ID] = *c
	}
	return nil
}

func (m *memComments) Delete(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

// perform sends a request with an optional JSON body through r.
func perform(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
