package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/manmith07/Proctor-Student-Management-System/internal/dto"
	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
	"github.com/manmith07/Proctor-Student-Management-System/internal/repository"
)

var ErrStudentProfileNotFound = errors.New("学生档案不存在")

// StudentService 学生业务接口
type StudentService interface {
	GetAttendance(ctx context.Context, userID string) (*dto.AttendanceSummaryResponse, error)
	GetAcademic(ctx context.Context, userID string) (*dto.AcademicSummaryResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// GetAttendance 当前学生的考勤记录与按课程/整体的出勤率
func (s *studentService) GetAttendance(ctx context.Context, userID string) (*dto.AttendanceSummaryResponse, error) {
	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Attendance.ListByStudent(ctx, profile.StudentProfileID)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	summary := summarizeAttendance(records)
	return &summary, nil
}

// GetAcademic 当前学生的成绩记录与 CGPA
func (s *studentService) GetAcademic(ctx context.Context, userID string) (*dto.AcademicSummaryResponse, error) {
	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Academic.ListByStudent(ctx, profile.StudentProfileID)
	if err != nil {
		s.logger.Error("查询成绩记录失败", zap.Error(err))
		return nil, err
	}

	summary := summarizeAcademic(records, profile.CGPA)
	return &summary, nil
}

func (s *studentService) getProfile(ctx context.Context, userID string) (*model.StudentProfile, error) {
	profile, err := s.repo.StudentProfile.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentProfileNotFound
		}
		s.logger.Error("查询学生档案失败", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// ── 聚合 ──

// summarizeAttendance 按课程名分组计算出勤率
// 整体出勤率按全部记录加权（而非各课程百分比的平均）；无记录课程为 0 而非除零
func summarizeAttendance(records []model.AttendanceRecord) dto.AttendanceSummaryResponse {
	type courseAgg struct {
		courseID string
		total    int
		present  int
	}

	byCourse := make(map[string]*courseAgg)
	totalPresent := 0

	items := make([]dto.AttendanceRecordResponse, 0, len(records))
	for _, rec := range records {
		agg, ok := byCourse[rec.CourseName]
		if !ok {
			agg = &courseAgg{courseID: rec.CourseID}
			byCourse[rec.CourseName] = agg
		}
		agg.total++
		if rec.IsPresent {
			agg.present++
			totalPresent++
		}

		items = append(items, dto.AttendanceRecordResponse{
			ID:         rec.AttendanceID,
			CourseID:   rec.CourseID,
			CourseName: rec.CourseName,
			Date:       rec.Date.Format("2006-01-02"),
			IsPresent:  rec.IsPresent,
		})
	}

	courses := make([]dto.CourseAttendanceResponse, 0, len(byCourse))
	for name, agg := range byCourse {
		courses = append(courses, dto.CourseAttendanceResponse{
			CourseID:     agg.courseID,
			CourseName:   name,
			TotalClasses: agg.total,
			Present:      agg.present,
			Percentage:   percentage(agg.present, agg.total),
		})
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].CourseName < courses[j].CourseName })

	return dto.AttendanceSummaryResponse{
		Courses:           courses,
		OverallPercentage: percentage(totalPresent, len(records)),
		TotalClasses:      len(records),
		TotalPresent:      totalPresent,
		Records:           items,
	}
}

func summarizeAcademic(records []model.AcademicRecord, cgpa float64) dto.AcademicSummaryResponse {
	items := make([]dto.AcademicRecordResponse, 0, len(records))
	for i := range records {
		rec := &records[i]
		items = append(items, dto.AcademicRecordResponse{
			ID:               rec.AcademicRecordID,
			CourseID:         rec.CourseID,
			CourseName:       rec.CourseName,
			Semester:         rec.Semester,
			InternalMarks:    rec.InternalMarks,
			QuizMarks:        rec.QuizMarks,
			ProjectMarks:     rec.ProjectMarks,
			SemesterMarks:    rec.SemesterMarks,
			TotalMarks:       rec.TotalMarks(),
			CGPAContribution: rec.CGPAContribution,
		})
	}
	return dto.AcademicSummaryResponse{Records: items, CGPA: cgpa}
}

// percentage present/total × 100，保留两位小数；total 为 0 时返回 0
func percentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(present) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatTime 统一响应时间格式
func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
