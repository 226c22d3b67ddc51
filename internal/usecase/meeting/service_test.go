package meeting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/deepikamahendran/AI-Meeting-Summarizer/errors"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
)

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (r *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	r.meetings[m.ID] = m
	return nil
}

func (r *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return r.meetings[id], nil
}

func (r *fakeMeetingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range r.meetings {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMeetingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, m := range r.meetings {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMeetingRepo) Update(ctx context.Context, m *entities.Meeting) error {
	r.meetings[m.ID] = m
	return nil
}

func (r *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.meetings, id)
	return nil
}

type fakeAnalysisRepo struct {
	byMeeting map[uuid.UUID]*entities.AnalysisRecord
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{byMeeting: make(map[uuid.UUID]*entities.AnalysisRecord)}
}

func (r *fakeAnalysisRepo) Save(ctx context.Context, rec *entities.AnalysisRecord) error {
	r.byMeeting[rec.MeetingID] = rec
	return nil
}

func (r *fakeAnalysisRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisRecord, error) {
	return r.byMeeting[meetingID], nil
}

func (r *fakeAnalysisRepo) DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error {
	delete(r.byMeeting, meetingID)
	return nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]*entities.AnalysisJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*entities.AnalysisJob)}
}

func (r *fakeJobRepo) Create(ctx context.Context, j *entities.AnalysisJob) error {
	r.jobs[j.ID] = j
	return nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error) {
	return r.jobs[id], nil
}

func (r *fakeJobRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisJob, error) {
	for _, j := range r.jobs {
		if j.MeetingID == meetingID {
			return j, nil
		}
	}
	return nil, nil
}

func (r *fakeJobRepo) FindPending(ctx context.Context, limit int) ([]*entities.AnalysisJob, error) {
	return nil, nil
}

func (r *fakeJobRepo) ClaimJob(ctx context.Context, jobID uuid.UUID, from, to entities.AnalysisJobStatus) (bool, error) {
	return false, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j *entities.AnalysisJob) error {
	r.jobs[j.ID] = j
	return nil
}

func (r *fakeJobRepo) FindStuckJobs(ctx context.Context, cutoff time.Time) ([]*entities.AnalysisJob, error) {
	return nil, nil
}

func (r *fakeJobRepo) DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error {
	for id, j := range r.jobs {
		if j.MeetingID == meetingID {
			delete(r.jobs, id)
		}
	}
	return nil
}

func newFixture() (Service, *fakeMeetingRepo, *fakeAnalysisRepo, *fakeJobRepo) {
	meetingRepo := newFakeMeetingRepo()
	analysisRepo := newFakeAnalysisRepo()
	jobRepo := newFakeJobRepo()
	return NewService(meetingRepo, analysisRepo, jobRepo, nil), meetingRepo, analysisRepo, jobRepo
}

func TestGetMeetingEnforcesOwnership(t *testing.T) {
	svc, meetingRepo, _, _ := newFixture()
	ctx := context.Background()

	owner := uuid.New()
	meeting := entities.NewMeeting(owner, "Standup", "transcript", nil)
	meetingRepo.Create(ctx, meeting)

	got, err := svc.GetMeeting(ctx, owner, meeting.ID)
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if got.ID != meeting.ID {
		t.Fatalf("unexpected meeting %s", got.ID)
	}

	_, err = svc.GetMeeting(ctx, uuid.New(), meeting.ID)
	if err == nil {
		t.Fatal("expected error for foreign user")
	}
	appErr, ok := err.(apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrorCode_FORBIDDEN {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	_, err = svc.GetMeeting(ctx, owner, uuid.New())
	appErr, ok = err.(apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrorCode_MEETING_NOT_FOUND {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListMeetingsClampsLimit(t *testing.T) {
	svc, meetingRepo, _, _ := newFixture()
	ctx := context.Background()

	owner := uuid.New()
	for i := 0; i < 30; i++ {
		meetingRepo.Create(ctx, entities.NewMeeting(owner, "m", "t", nil))
	}

	meetings, total, err := svc.ListMeetings(ctx, owner, 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(meetings) != 20 {
		t.Fatalf("expected default page of 20, got %d", len(meetings))
	}
	if total != 30 {
		t.Fatalf("expected total 30, got %d", total)
	}

	meetings, _, err = svc.ListMeetings(ctx, owner, 500, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(meetings) != 20 {
		t.Fatalf("expected oversized limit to clamp to 20, got %d", len(meetings))
	}
}

func TestDeleteMeetingCascades(t *testing.T) {
	svc, meetingRepo, analysisRepo, jobRepo := newFixture()
	ctx := context.Background()

	owner := uuid.New()
	meeting := entities.NewMeeting(owner, "Cleanup", "transcript", nil)
	meetingRepo.Create(ctx, meeting)

	record, err := entities.NewAnalysisRecord(meeting.ID, &entities.MeetingAnalysis{Summary: "ok"})
	if err != nil {
		t.Fatalf("failed to build record: %v", err)
	}
	analysisRepo.Save(ctx, record)
	jobRepo.Create(ctx, entities.NewAnalysisJob(meeting.ID))

	if err := svc.DeleteMeeting(ctx, owner, meeting.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(meetingRepo.meetings) != 0 {
		t.Fatal("meeting was not deleted")
	}
	if len(analysisRepo.byMeeting) != 0 {
		t.Fatal("analysis record was not deleted")
	}
	if len(jobRepo.jobs) != 0 {
		t.Fatal("analysis jobs were not deleted")
	}
}

func TestDeleteMeetingRejectsForeignUser(t *testing.T) {
	svc, meetingRepo, _, _ := newFixture()
	ctx := context.Background()

	meeting := entities.NewMeeting(uuid.New(), "Private", "transcript", nil)
	meetingRepo.Create(ctx, meeting)

	if err := svc.DeleteMeeting(ctx, uuid.New(), meeting.ID); err == nil {
		t.Fatal("expected error for foreign user")
	}
	if len(meetingRepo.meetings) != 1 {
		t.Fatal("meeting must survive a forbidden delete")
	}
}
