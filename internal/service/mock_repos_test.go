package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	seq   int
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// ── Mock StudentProfileRepository ──

type mockStudentProfileRepo struct {
	seq      int
	profiles map[string]*model.StudentProfile // key: student_profile_id
}

func newMockStudentProfileRepo() *mockStudentProfileRepo {
	return &mockStudentProfileRepo{profiles: make(map[string]*model.StudentProfile)}
}

func (m *mockStudentProfileRepo) Create(_ context.Context, profile *model.StudentProfile) error {
	if profile.StudentProfileID == "" {
		m.seq++
		profile.StudentProfileID = fmt.Sprintf("sp-%03d", m.seq)
	}
	m.profiles[profile.StudentProfileID] = profile
	return nil
}

func (m *mockStudentProfileRepo) GetByID(_ context.Context, id string) (*model.StudentProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentProfileRepo) GetByUserID(_ context.Context, userID string) (*model.StudentProfile, error) {
	for _, p := range m.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentProfileRepo) GetByStudentID(_ context.Context, studentID string) (*model.StudentProfile, error) {
	for _, p := range m.profiles {
		if p.StudentID == studentID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentProfileRepo) ListByProctor(_ context.Context, proctorProfileID string) ([]model.StudentProfile, error) {
	var result []model.StudentProfile
	for _, p := range m.profiles {
		if p.ProctorID != nil && *p.ProctorID == proctorProfileID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result, nil
}

func (m *mockStudentProfileRepo) Update(_ context.Context, profile *model.StudentProfile) error {
	m.profiles[profile.StudentProfileID] = profile
	return nil
}

// ── Mock ProctorProfileRepository ──

type mockProctorProfileRepo struct {
	seq      int
	profiles map[string]*model.ProctorProfile // key: proctor_profile_id
}

func newMockProctorProfileRepo() *mockProctorProfileRepo {
	return &mockProctorProfileRepo{profiles: make(map[string]*model.ProctorProfile)}
}

func (m *mockProctorProfileRepo) Create(_ context.Context, profile *model.ProctorProfile) error {
	if profile.ProctorProfileID == "" {
		m.seq++
		profile.ProctorProfileID = fmt.Sprintf("pp-%03d", m.seq)
	}
	m.profiles[profile.ProctorProfileID] = profile
	return nil
}

func (m *mockProctorProfileRepo) GetByID(_ context.Context, id string) (*model.ProctorProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProctorProfileRepo) GetByUserID(_ context.Context, userID string) (*model.ProctorProfile, error) {
	for _, p := range m.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProctorProfileRepo) GetByFacultyID(_ context.Context, facultyID string) (*model.ProctorProfile, error) {
	for _, p := range m.profiles {
		if p.FacultyID == facultyID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	seq     int
	records map[string][]model.AttendanceRecord // key: student_profile_id
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string][]model.AttendanceRecord)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.AttendanceRecord) error {
	if record.AttendanceID == "" {
		m.seq++
		record.AttendanceID = fmt.Sprintf("att-%03d", m.seq)
	}
	m.records[record.StudentProfileID] = append(m.records[record.StudentProfileID], *record)
	return nil
}

func (m *mockAttendanceRepo) ListByStudent(_ context.Context, studentProfileID string) ([]model.AttendanceRecord, error) {
	return m.records[studentProfileID], nil
}

// ── Mock AcademicRepository ──

type mockAcademicRepo struct {
	seq     int
	records map[string][]model.AcademicRecord // key: student_profile_id
}

func newMockAcademicRepo() *mockAcademicRepo {
	return &mockAcademicRepo{records: make(map[string][]model.AcademicRecord)}
}

func (m *mockAcademicRepo) Create(_ context.Context, record *model.AcademicRecord) error {
	if record.AcademicRecordID == "" {
		m.seq++
		record.AcademicRecordID = fmt.Sprintf("ac-%03d", m.seq)
	}
	m.records[record.StudentProfileID] = append(m.records[record.StudentProfileID], *record)
	return nil
}

func (m *mockAcademicRepo) ListByStudent(_ context.Context, studentProfileID string) ([]model.AcademicRecord, error) {
	return m.records[studentProfileID], nil
}

func (m *mockAcademicRepo) ListByStudents(_ context.Context, studentProfileIDs []string) ([]model.AcademicRecord, error) {
	var result []model.AcademicRecord
	for _, id := range studentProfileIDs {
		result = append(result, m.records[id]...)
	}
	return result, nil
}

// ── Mock QueryRepository ──

type mockQueryRepo struct {
	seq       int
	respSeq   int
	queries   map[string]*model.Query
	responses map[string][]model.QueryResponse // key: query_id
}

func newMockQueryRepo() *mockQueryRepo {
	return &mockQueryRepo{
		queries:   make(map[string]*model.Query),
		responses: make(map[string][]model.QueryResponse),
	}
}

func (m *mockQueryRepo) Create(_ context.Context, query *model.Query) error {
	if query.QueryID == "" {
		m.seq++
		query.QueryID = fmt.Sprintf("q-%03d", m.seq)
	}
	query.CreatedAt = time.Now()
	query.UpdatedAt = query.CreatedAt
	m.queries[query.QueryID] = query
	return nil
}

func (m *mockQueryRepo) GetByID(_ context.Context, id string) (*model.Query, error) {
	if q, ok := m.queries[id]; ok {
		cp := *q
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockQueryRepo) ListByStudent(_ context.Context, studentUserID string) ([]model.Query, error) {
	var result []model.Query
	for _, q := range m.queries {
		if q.StudentID == studentUserID {
			result = append(result, *q)
		}
	}
	return result, nil
}

func (m *mockQueryRepo) ListByProctor(_ context.Context, proctorUserID string, status *model.QueryStatus, offset, limit int) ([]model.Query, int64, error) {
	var matched []model.Query
	for _, q := range m.queries {
		if q.ProctorID != proctorUserID {
			continue
		}
		if status != nil && q.Status != *status {
			continue
		}
		matched = append(matched, *q)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].QueryID < matched[j].QueryID })

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockQueryRepo) UpdateStatus(_ context.Context, id string, status model.QueryStatus) error {
	q, ok := m.queries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	q.Status = status
	q.UpdatedAt = time.Now()
	return nil
}

func (m *mockQueryRepo) AddResponse(_ context.Context, resp *model.QueryResponse) error {
	if resp.QueryResponseID == "" {
		m.respSeq++
		resp.QueryResponseID = fmt.Sprintf("qr-%03d", m.respSeq)
	}
	resp.CreatedAt = time.Now()
	m.responses[resp.QueryID] = append(m.responses[resp.QueryID], *resp)
	return nil
}

func (m *mockQueryRepo) ListResponses(_ context.Context, queryID string) ([]model.QueryResponse, error) {
	resps := m.responses[queryID]
	sort.Slice(resps, func(i, j int) bool { return resps[i].CreatedAt.Before(resps[j].CreatedAt) })
	return resps, nil
}

// ── Mock ResetTokenRepository ──

type mockResetTokenRepo struct {
	seq    int
	tokens map[string]*model.PasswordResetToken // key: token
}

func newMockResetTokenRepo() *mockResetTokenRepo {
	return &mockResetTokenRepo{tokens: make(map[string]*model.PasswordResetToken)}
}

func (m *mockResetTokenRepo) Create(_ context.Context, token *model.PasswordResetToken) error {
	if token.ResetTokenID == "" {
		m.seq++
		token.ResetTokenID = fmt.Sprintf("rt-%03d", m.seq)
	}
	token.CreatedAt = time.Now()
	m.tokens[token.Token] = token
	return nil
}

func (m *mockResetTokenRepo) GetByToken(_ context.Context, token string) (*model.PasswordResetToken, error) {
	if t, ok := m.tokens[token]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResetTokenRepo) MarkUsed(_ context.Context, id string, usedAt time.Time) error {
	for _, t := range m.tokens {
		if t.ResetTokenID == id {
			t.UsedAt = &usedAt
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockResetTokenRepo) PurgeStale(_ context.Context, userID string, now time.Time) error {
	for key, t := range m.tokens {
		if t.UserID != userID {
			continue
		}
		if t.ExpiresAt.Before(now) || t.UsedAt != nil {
			delete(m.tokens, key)
		}
	}
	return nil
}

// ── Mock Mailer ──

type mockMailer struct {
	sentTo   []string
	sentLink []string
	err      error
}

func (m *mockMailer) SendPasswordReset(to, resetLink string) error {
	if m.err != nil {
		return m.err
	}
	m.sentTo = append(m.sentTo, to)
	m.sentLink = append(m.sentLink, resetLink)
	return nil
}
