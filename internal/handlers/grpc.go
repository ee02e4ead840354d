package handlers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/umalmyha/imaging-leads/internal/intake"
	"github.com/umalmyha/imaging-leads/internal/service"
	"github.com/umalmyha/imaging-leads/internal/validation"
	"github.com/umalmyha/imaging-leads/proto"
	"google.golang.org/protobuf/types/known/structpb"

	apperrors "github.com/umalmyha/imaging-leads/internal/errors"
)

// IntakeGrpcHandler is gRPC handler for intake endpoint
type IntakeGrpcHandler struct {
	intakeSvc service.IntakeService
}

var _ proto.IntakeServiceServer = (*IntakeGrpcHandler)(nil)

// NewIntakeGrpcHandler builds new IntakeGrpcHandler
func NewIntakeGrpcHandler(intakeSvc service.IntakeService) *IntakeGrpcHandler {
	return &IntakeGrpcHandler{intakeSvc: intakeSvc}
}

// SubmitLead stores lead form
func (h *IntakeGrpcHandler) SubmitLead(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var p intake.LeadPayload
	if err := decodeStruct(req, &p); err != nil {
		return nil, err
	}
	return h.result(h.intakeSvc.SubmitLead(ctx, p))
}

// SubmitBooking stores booking confirmation
func (h *IntakeGrpcHandler) SubmitBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var p intake.BookingPayload
	if err := decodeStruct(req, &p); err != nil {
		return nil, err
	}
	return h.result(h.intakeSvc.SubmitBooking(ctx, p))
}

func (h *IntakeGrpcHandler) result(res intake.Result) (*structpb.Struct, error) {
	switch {
	case res.Success:
		return encodeStruct(newIntakeResponse(res))
	case res.Kind == intake.FailureValidation:
		pldErr := &validation.PayloadError{}
		for _, v := range res.Violations {
			pldErr.Violation(v.Field, v.Message)
		}
		return nil, pldErr
	default:
		return nil, apperrors.NewStoreErr("failed to store intake", errors.New(res.Error))
	}
}

func decodeStruct(s *structpb.Struct, dst any) error {
	raw, err := s.MarshalJSON()
	if err != nil {
		return validation.NewPayloadError("payload", err.Error())
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return validation.NewPayloadError("payload", err.Error())
	}
	return nil
}

func encodeStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	s := &structpb.Struct{}
	if err := s.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return s, nil
}
