package payments_get

import (
	"net/http"

	"zapshift/internal/handlers/rest/converters"
	"zapshift/internal/handlers/rest/response"
	"zapshift/internal/pkg/authctx"
	"zapshift/internal/service/access"
	"zapshift/pkg/logger"
)

// Handler отдает историю платежей. Запрос чужого email отклоняется политикой доступа,
// выборка ограничивается ScopeEmail решения.
type Handler struct {
	log     handlerLogger
	policy  Policy
	service Service
}

func New(log handlerLogger, policy Policy, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		policy:  policy,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	request := access.Request{
		Action:   access.ActionViewPayments,
		Identity: authctx.Identity(r.Context()),
	}
	if email := r.URL.Query().Get("email"); email != "" {
		request.TargetEmail = &email
	}

	decision, err := h.policy.Authorize(r.Context(), request)
	if err != nil {
		response.AccessError(w, h.log, err)
		return
	}

	payments, err := h.service.GetPayments(r.Context(), decision.ScopeEmail)
	if err != nil {
		h.log.Error("get payments", logger.NewField("error", err))
		response.Error(w, h.log, http.StatusInternalServerError, "internal error")
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.ToPaymentDTOs(payments))
}
