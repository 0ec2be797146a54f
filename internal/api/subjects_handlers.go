package api

import (
	"context"
	"net/http"

	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/pkg/httputil"
)

type SubjectRequest struct {
	Name  string `json:"name"`
	Color string `json:"color_code"`
}

func (s *Server) CreateSubject(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "create subject")
	if !ok {
		return
	}
	var req SubjectRequest
	if !decodeBody(w, r, logger, "create subject", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	subject, err := s.subjectsService.CreateSubject(ctx, uid, service.SubjectRequest{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		writeServiceError(w, logger, "creating subject", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, subject)
	logger.Info("subject created")
}

func (s *Server) GetSubjects(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get subjects")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	cards, err := s.subjectsService.ListSubjects(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting subjects list", err)
		return
	}
	resp := make([]SubjectCardResponse, 0, len(cards))
	for _, c := range cards {
		resp = append(resp, SubjectCardResponse{
			Subject:      c.Subject,
			TotalMinutes: c.TotalMinutes,
			Total:        c.Total,
		})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"subjects": resp})
	logger.Info("subjects provided")
}

func (s *Server) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "update subject")
	if !ok {
		return
	}
	id, ok := requirePathID(w, r, logger, "update subject")
	if !ok {
		return
	}
	var req SubjectRequest
	if !decodeBody(w, r, logger, "update subject", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	subject, err := s.subjectsService.UpdateSubject(ctx, id, uid, service.SubjectRequest{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		writeServiceError(w, logger, "updating subject", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, subject)
	logger.Info("subject updated")
}

func (s *Server) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "subject deletion")
	if !ok {
		return
	}
	id, ok := requirePathID(w, r, logger, "subject deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.subjectsService.DeleteSubject(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "deleting subject", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("subject deleted")
}
