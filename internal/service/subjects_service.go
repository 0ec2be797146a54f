package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/pkg/entity"
	"github.com/limbo/studytrack/pkg/timefmt"
)

const DefaultSubjectColor = "#ef4444"

type SubjectsService struct {
	subjectsRepo repository.SubjectsRepositoryI
	sessionsRepo repository.SessionsRepositoryI
}

func NewSubjectsService(subjectsRepo repository.SubjectsRepositoryI, sessionsRepo repository.SessionsRepositoryI) *SubjectsService {
	if subjectsRepo == nil || sessionsRepo == nil {
		log.Fatal("on subjects service provided nil repos")
	}
	return &SubjectsService{
		subjectsRepo: subjectsRepo,
		sessionsRepo: sessionsRepo,
	}
}

func normalizeSubject(req SubjectRequest) SubjectRequest {
	if req.Color == "" {
		req.Color = DefaultSubjectColor
	}
	return req
}

func (ss *SubjectsService) CreateSubject(ctx context.Context, uid int, req SubjectRequest) (*entity.Subject, error) {
	req = normalizeSubject(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	subject := entity.Subject{
		UserID: uid,
		Name:   req.Name,
		Color:  req.Color,
	}
	id, err := ss.subjectsRepo.Create(ctx, &subject)
	if err != nil {
		return nil, errors.New("subjects repository error: " + err.Error())
	}
	subject.ID = id
	return &subject, nil
}

// ownedSubject loads subject id and checks it belongs to uid.
func (ss *SubjectsService) ownedSubject(ctx context.Context, id, uid int) (*entity.Subject, error) {
	return ownedSubject(ctx, ss.subjectsRepo, id, uid)
}

func ownedSubject(ctx context.Context, repo repository.SubjectsRepositoryI, id, uid int) (*entity.Subject, error) {
	subject, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSubjectNotFound) {
			return nil, err
		}
		return nil, errors.New("subjects repository error: " + err.Error())
	}
	if subject.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return subject, nil
}

func (ss *SubjectsService) UpdateSubject(ctx context.Context, id, uid int, req SubjectRequest) (*entity.Subject, error) {
	subject, err := ss.ownedSubject(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	req = normalizeSubject(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	subject.Name = req.Name
	subject.Color = req.Color
	if err = ss.subjectsRepo.Update(ctx, subject); err != nil {
		if errors.Is(err, errorvalues.ErrSubjectNotFound) {
			return nil, err
		}
		return nil, errors.New("subjects repository error: " + err.Error())
	}
	return subject, nil
}

func (ss *SubjectsService) DeleteSubject(ctx context.Context, id, uid int) error {
	if _, err := ss.ownedSubject(ctx, id, uid); err != nil {
		return err
	}
	err := ss.subjectsRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSubjectNotFound) {
			return err
		}
		return errors.New("subjects repository error: " + err.Error())
	}
	return nil
}

func (ss *SubjectsService) ListSubjects(ctx context.Context, uid int) ([]SubjectCard, error) {
	subjects, err := ss.subjectsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("subjects repository error: " + err.Error())
	}
	sessions, err := ss.sessionsRepo.List(ctx, repository.SessionFilter{UserID: uid})
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	totals := make(map[int]int, len(subjects))
	for _, s := range sessions {
		totals[s.SubjectID] += s.DurationMinutes
	}
	cards := make([]SubjectCard, 0, len(subjects))
	for _, subject := range subjects {
		cards = append(cards, SubjectCard{
			Subject:      *subject,
			TotalMinutes: totals[subject.ID],
			Total:        timefmt.FormatDuration(totals[subject.ID]),
		})
	}
	return cards, nil
}
