package api

import (
	"encoding/json"

	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// Pagination is the optional paging block of a response envelope.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Envelope is the wrapper around every backend response. Data is left raw
// because the same endpoint returns an object for single-record operations
// and an array for collections.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
	Error      string          `json:"error"`
	Message    string          `json:"message"`
}

// errorMessage returns the most specific failure text the envelope carries.
func (e *Envelope) errorMessage() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// record decodes the envelope's data as a single raw record.
// A missing or null data block yields an empty record, not an error.
func (e *Envelope) record() (reconcile.RawRecord, error) {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return reconcile.RawRecord{}, nil
	}
	var rec reconcile.RawRecord
	if err := json.Unmarshal(e.Data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// records decodes the envelope's data as a collection. A single object is
// tolerated and wrapped; some endpoints drop the array for one result.
func (e *Envelope) records() ([]reconcile.RawRecord, error) {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil, nil
	}
	var recs []reconcile.RawRecord
	if err := json.Unmarshal(e.Data, &recs); err == nil {
		return recs, nil
	}
	rec, err := e.record()
	if err != nil {
		return nil, err
	}
	return []reconcile.RawRecord{rec}, nil
}

// total returns the collection size: the pagination total when the
// envelope carries one, else the length of the returned page.
func (e *Envelope) total(pageLen int) int {
	if e.Pagination != nil && e.Pagination.Total > 0 {
		return e.Pagination.Total
	}
	return pageLen
}
