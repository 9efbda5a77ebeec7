package service

import (
	"errors"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/logger"
)

type ILogService interface {
	List(filter logger.LogFilter) ([]*dto.LogListResponse, error)
	Get(id string) (*dto.LogDetailResponse, error)
}

type logService struct {
	logger logger.ILogger
}

func NewLogService(log logger.ILogger) ILogService {
	return &logService{logger: log}
}

func toLogListResponse(e logger.LogEntry) dto.LogListResponse {
	return dto.LogListResponse{
		Id:        e.Id,
		Level:     e.Level,
		Module:    e.Module,
		Message:   e.Message,
		Timestamp: e.Timestamp,
	}
}

func (s *logService) List(filter logger.LogFilter) ([]*dto.LogListResponse, error) {
	entries, err := s.logger.GetLogs(filter)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		item := toLogListResponse(e)
		res = append(res, &item)
	}
	return res, nil
}

func (s *logService) Get(id string) (*dto.LogDetailResponse, error) {
	entry, err := s.logger.GetLogById(id)
	if errors.Is(err, logger.ErrLogNotFound) {
		return nil, notFound("log entry")
	}
	if err != nil {
		return nil, err
	}
	return &dto.LogDetailResponse{
		LogListResponse: toLogListResponse(*entry),
		Details:         entry.Details,
	}, nil
}
