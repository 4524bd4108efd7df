package http

import (
	"github.com/roomdesk/meeting-room-backend/internal/mirror"
)

type RecordResponse struct {
	Kind   string   `json:"kind"`
	Fields []string `json:"fields"`
}

func NewRecordResponse(rec mirror.Record) RecordResponse {
	fields := rec.Fields
	if fields == nil {
		fields = []string{}
	}
	return RecordResponse{
		Kind:   rec.Kind,
		Fields: fields,
	}
}
