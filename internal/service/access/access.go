package access

import (
	"context"
	"fmt"
	"strings"

	"zapshift/internal/entities"
)

type Action string

const (
	ActionListUsers         Action = "list_users"
	ActionChangeUserRole    Action = "change_user_role"
	ActionChangeRiderStatus Action = "change_rider_status"
	ActionViewPayments      Action = "view_payments"
	ActionAssignRider       Action = "assign_rider"
	ActionCompleteDelivery  Action = "complete_delivery"
)

type Request struct {
	Action   Action
	Identity *entities.Identity
	// TargetEmail email, к данным которого обращается вызывающий. Используется проверкой владения.
	TargetEmail *string
}

type Decision struct {
	Role entities.UserRoleType
	// ScopeEmail ограничение выборки email-ом вызывающего; nil - без ограничения.
	ScopeEmail *string
}

type Policy struct {
	userService UserService
}

func New(userService UserService) *Policy {
	return &Policy{
		userService: userService,
	}
}

// Authorize возвращает ErrUnauthenticated без проверенной личности и ErrForbidden,
// когда роли или владения недостаточно.
func (p *Policy) Authorize(ctx context.Context, request Request) (*Decision, error) {
	if request.Identity == nil || strings.TrimSpace(request.Identity.Email) == "" {
		return nil, ErrUnauthenticated
	}
	callerEmail := strings.ToLower(strings.TrimSpace(request.Identity.Email))

	role, err := p.userService.GetUserRole(ctx, callerEmail)
	if err != nil {
		return nil, fmt.Errorf("resolve caller role: %w", err)
	}
	decision := &Decision{Role: role}

	switch request.Action {
	case ActionListUsers:
		return decision, nil

	case ActionChangeUserRole, ActionChangeRiderStatus, ActionAssignRider:
		if role != entities.RoleAdmin {
			return nil, fmt.Errorf("%w: %s requires admin role", ErrForbidden, request.Action)
		}
		return decision, nil

	case ActionViewPayments:
		if request.TargetEmail != nil {
			if !strings.EqualFold(strings.TrimSpace(*request.TargetEmail), callerEmail) {
				return nil, fmt.Errorf("%w: email does not match caller", ErrForbidden)
			}
			decision.ScopeEmail = &callerEmail
			return decision, nil
		}
		if role != entities.RoleAdmin {
			decision.ScopeEmail = &callerEmail
		}
		return decision, nil

	case ActionCompleteDelivery:
		switch role {
		case entities.RoleAdmin:
			return decision, nil
		case entities.RoleRider:
			decision.ScopeEmail = &callerEmail
			return decision, nil
		default:
			return nil, fmt.Errorf("%w: %s requires admin or rider role", ErrForbidden, request.Action)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, request.Action)
	}
}
