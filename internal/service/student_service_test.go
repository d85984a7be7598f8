package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
	"github.com/manmith07/Proctor-Student-Management-System/internal/repository"
)

// domainFixture 学生/导师/工单业务共用测试夹具
type domainFixture struct {
	repo    *repository.Repository
	student StudentService
	proctor ProctorService
	query   QueryService

	proctorUserID    string
	proctorProfileID string
	studentUserID    string
	studentProfileID string
}

func newDomainFixture(t *testing.T) *domainFixture {
	t.Helper()

	repo := &repository.Repository{
		User:           newMockUserRepo(),
		StudentProfile: newMockStudentProfileRepo(),
		ProctorProfile: newMockProctorProfileRepo(),
		Attendance:     newMockAttendanceRepo(),
		Academic:       newMockAcademicRepo(),
		Query:          newMockQueryRepo(),
		ResetToken:     newMockResetTokenRepo(),
	}

	logger := zap.NewNop()
	f := &domainFixture{
		repo:    repo,
		student: NewStudentService(repo, logger),
		proctor: NewProctorService(repo, logger),
		query:   NewQueryService(repo, logger),
	}

	ctx := context.Background()

	proctor := &model.User{Name: "李老师", Username: "prof_li", Email: "li@example.com", Role: model.RoleProctor}
	if err := repo.User.Create(ctx, proctor); err != nil {
		t.Fatalf("播种导师用户失败: %v", err)
	}
	proctorProfile := &model.ProctorProfile{UserID: proctor.UserID, FacultyID: "FAC001", Department: "计算机学院"}
	if err := repo.ProctorProfile.Create(ctx, proctorProfile); err != nil {
		t.Fatalf("播种导师档案失败: %v", err)
	}
	f.proctorUserID = proctor.UserID
	f.proctorProfileID = proctorProfile.ProctorProfileID

	f.studentUserID, f.studentProfileID = f.seedStudent(t, "张三", "zhangsan", "CS2021001", 8.5, true)
	return f
}

// seedStudent 播种一个学生；assigned 为真时分配给夹具导师
func (f *domainFixture) seedStudent(t *testing.T, name, username, studentID string, cgpa float64, assigned bool) (userID, profileID string) {
	t.Helper()
	ctx := context.Background()

	user := &model.User{Name: name, Username: username, Email: username + "@example.com", Role: model.RoleStudent}
	if err := f.repo.User.Create(ctx, user); err != nil {
		t.Fatalf("播种学生用户失败: %v", err)
	}

	profile := &model.StudentProfile{
		UserID:     user.UserID,
		StudentID:  studentID,
		Department: "计算机学院",
		Semester:   3,
		CGPA:       cgpa,
		User:       user,
	}
	if assigned {
		profile.ProctorID = &f.proctorProfileID
	}
	if err := f.repo.StudentProfile.Create(ctx, profile); err != nil {
		t.Fatalf("播种学生档案失败: %v", err)
	}
	return user.UserID, profile.StudentProfileID
}

// seedProctor 播种一个额外导师
func (f *domainFixture) seedProctor(t *testing.T, name, username, facultyID string) (userID, profileID string) {
	t.Helper()
	ctx := context.Background()

	user := &model.User{Name: name, Username: username, Email: username + "@example.com", Role: model.RoleProctor}
	if err := f.repo.User.Create(ctx, user); err != nil {
		t.Fatalf("播种导师用户失败: %v", err)
	}
	profile := &model.ProctorProfile{UserID: user.UserID, FacultyID: facultyID, Department: "计算机学院"}
	if err := f.repo.ProctorProfile.Create(ctx, profile); err != nil {
		t.Fatalf("播种导师档案失败: %v", err)
	}
	return user.UserID, profile.ProctorProfileID
}

func (f *domainFixture) seedAttendance(t *testing.T, profileID, courseID, courseName string, days []bool) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	for i, present := range days {
		rec := &model.AttendanceRecord{
			StudentProfileID: profileID,
			CourseID:         courseID,
			CourseName:       courseName,
			Date:             base.AddDate(0, 0, i),
			IsPresent:        present,
		}
		if err := f.repo.Attendance.Create(ctx, rec); err != nil {
			t.Fatalf("播种考勤记录失败: %v", err)
		}
	}
}

func (f *domainFixture) seedAcademic(t *testing.T, profileID, courseID, courseName string, internal, quiz, project, semester float64) {
	t.Helper()
	rec := &model.AcademicRecord{
		StudentProfileID: profileID,
		CourseID:         courseID,
		CourseName:       courseName,
		Semester:         3,
		InternalMarks:    internal,
		QuizMarks:        quiz,
		ProjectMarks:     project,
		SemesterMarks:    semester,
	}
	if err := f.repo.Academic.Create(context.Background(), rec); err != nil {
		t.Fatalf("播种成绩记录失败: %v", err)
	}
}

func TestGetAttendance(t *testing.T) {
	f := newDomainFixture(t)
	f.seedAttendance(t, f.studentProfileID, "CS101", "数据结构", []bool{true, false, true})
	f.seedAttendance(t, f.studentProfileID, "MA101", "线性代数", []bool{true})

	summary, err := f.student.GetAttendance(context.Background(), f.studentUserID)
	if err != nil {
		t.Fatalf("GetAttendance() error = %v", err)
	}

	if len(summary.Courses) != 2 {
		t.Fatalf("课程数 = %d, want 2", len(summary.Courses))
	}
	// 课程按名称排序：数据结构 < 线性代数
	cs := summary.Courses[0]
	if cs.CourseName != "数据结构" {
		t.Fatalf("课程排序错误: %q", cs.CourseName)
	}
	if cs.TotalClasses != 3 || cs.Present != 2 {
		t.Errorf("数据结构统计 = %d/%d, want 2/3", cs.Present, cs.TotalClasses)
	}
	if cs.Percentage != 66.67 {
		t.Errorf("数据结构出勤率 = %v, want 66.67", cs.Percentage)
	}
	if summary.Courses[1].Percentage != 100 {
		t.Errorf("线性代数出勤率 = %v, want 100", summary.Courses[1].Percentage)
	}

	// 整体出勤率按全部 4 条记录加权：3/4 = 75，而非课程平均 83.33
	if summary.OverallPercentage != 75 {
		t.Errorf("整体出勤率 = %v, want 75", summary.OverallPercentage)
	}
	if summary.TotalClasses != 4 || summary.TotalPresent != 3 {
		t.Errorf("总计 = %d/%d, want 3/4", summary.TotalPresent, summary.TotalClasses)
	}
	if len(summary.Records) != 4 {
		t.Errorf("明细条数 = %d, want 4", len(summary.Records))
	}
}

func TestGetAttendanceEmpty(t *testing.T) {
	f := newDomainFixture(t)

	summary, err := f.student.GetAttendance(context.Background(), f.studentUserID)
	if err != nil {
		t.Fatalf("GetAttendance() error = %v", err)
	}
	// 无记录时出勤率为 0，不做除零
	if summary.OverallPercentage != 0 {
		t.Errorf("整体出勤率 = %v, want 0", summary.OverallPercentage)
	}
	if len(summary.Courses) != 0 {
		t.Errorf("课程数 = %d, want 0", len(summary.Courses))
	}
}

func TestGetAttendanceNoProfile(t *testing.T) {
	f := newDomainFixture(t)

	if _, err := f.student.GetAttendance(context.Background(), "no-such-user"); !errors.Is(err, ErrStudentProfileNotFound) {
		t.Errorf("无档案用户: err = %v, want ErrStudentProfileNotFound", err)
	}
}

func TestGetAcademic(t *testing.T) {
	f := newDomainFixture(t)
	f.seedAcademic(t, f.studentProfileID, "CS101", "数据结构", 18, 8.5, 9, 55)
	f.seedAcademic(t, f.studentProfileID, "MA101", "线性代数", 15, 7, 8, 48)

	summary, err := f.student.GetAcademic(context.Background(), f.studentUserID)
	if err != nil {
		t.Fatalf("GetAcademic() error = %v", err)
	}

	if len(summary.Records) != 2 {
		t.Fatalf("成绩条数 = %d, want 2", len(summary.Records))
	}
	if summary.Records[0].TotalMarks != 90.5 {
		t.Errorf("总分 = %v, want 90.5", summary.Records[0].TotalMarks)
	}
	if summary.CGPA != 8.5 {
		t.Errorf("CGPA = %v, want 8.5", summary.CGPA)
	}
}

func TestPercentageRounding(t *testing.T) {
	tests := []struct {
		present, total int
		want           float64
	}{
		{2, 3, 66.67},
		{1, 3, 33.33},
		{0, 0, 0},
		{5, 5, 100},
		{1, 8, 12.5},
	}
	for _, tt := range tests {
		if got := percentage(tt.present, tt.total); got != tt.want {
			t.Errorf("percentage(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
		}
	}
}
