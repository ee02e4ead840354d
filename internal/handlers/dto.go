package handlers

import (
	"github.com/umalmyha/imaging-leads/internal/intake"
	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/internal/review"
	"github.com/umalmyha/imaging-leads/internal/validation"
)

type submission struct {
	model.Submission
	Processed bool `json:"processed"`
	Engaged   bool `json:"engaged"`
}

type submissionRow struct {
	submission
	Recent bool `json:"recent"`
}

type reviewPage struct {
	Submissions []submissionRow     `json:"submissions"`
	Stats       review.Stats        `json:"stats"`
	Types       []model.ImagingType `json:"types"`
}

type intakeResponse struct {
	Success    bool                   `json:"success"`
	Data       any                    `json:"data,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Violations []validation.Violation `json:"violations,omitempty"`
}

func newSubmission(s *model.Submission) *submission {
	processed, engaged := s.Status.Flags()
	return &submission{Submission: *s, Processed: processed, Engaged: engaged}
}

func newSubmissionRows(rows []review.Row) []submissionRow {
	res := make([]submissionRow, 0, len(rows))
	for i := range rows {
		res = append(res, submissionRow{submission: *newSubmission(&rows[i].Submission), Recent: rows[i].Recent})
	}
	return res
}

func newIntakeResponse(res intake.Result) *intakeResponse {
	data := res.Data
	if s, ok := data.(*model.Submission); ok {
		data = newSubmission(s)
	}

	return &intakeResponse{
		Success:    res.Success,
		Data:       data,
		Error:      res.Error,
		Violations: res.Violations,
	}
}
