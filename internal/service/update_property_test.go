package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
)

// For any combination of provided and omitted optional fields, the update
// statement must contain exactly the provided ones: omitted fields never
// appear, so they can never be overwritten with zero values.
func TestProperty_PartialUpdateSendsOnlyProvidedFields(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("ticket updates carry exactly the provided fields", prop.ForAll(
		func(hasTitle bool, title string, hasDescription bool, description string) bool {
			req := &dto.UpdateTicketRequest{}
			if hasTitle {
				req.Title = &title
			}
			if hasDescription {
				req.Description = &description
			}

			var gotFields map[string]interface{}
			ticketRepo := &mockTicketRepository{
				UpdateFieldsFunc: func(ctx context.Context, uid, id uuid.UUID, fields map[string]interface{}) error {
					gotFields = fields
					return nil
				},
				FindByIDFunc: func(ctx context.Context, uid, id uuid.UUID) (*domain.Ticket, error) {
					return &domain.Ticket{BaseModel: domain.BaseModel{ID: id}}, nil
				},
			}
			svc := NewTicketService(ticketRepo, &mockColumnRepository{}, nil)

			_, err := svc.UpdateTicket(context.Background(), uuid.New(), uuid.New(), req)

			if !hasTitle && !hasDescription {
				// nothing provided: rejected before any persistence call
				return err != nil && gotFields == nil
			}
			if err != nil {
				return false
			}

			wantLen := 0
			if hasTitle {
				wantLen++
				if gotFields["title"] != title {
					return false
				}
			} else if _, ok := gotFields["title"]; ok {
				return false
			}
			if hasDescription {
				wantLen++
				if gotFields["description"] != description {
					return false
				}
			} else if _, ok := gotFields["description"]; ok {
				return false
			}

			return len(gotFields) == wantLen
		},
		gen.Bool(),
		gen.AnyString(),
		gen.Bool(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
