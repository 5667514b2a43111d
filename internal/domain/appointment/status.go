package appointment

import "github.com/ultramind-solutions/agendepro/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmado"
	StatusCompleted Status = "concluido"
	StatusCancelled Status = "cancelado"
)

// Occupies informa se um agendamento neste status ainda ocupa o horário.
func (s Status) Occupies() bool {
	return s != StatusCancelled
}

// ===============================
// Transições
// ===============================

// pending -> confirmado -> {concluido, cancelado}
// pending -> cancelado também é permitido (cancelamento pelo painel).
// concluido e cancelado são terminais.

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// InitialStatus é o status de entrada pelo painel; o fluxo público
// cria direto em confirmado.
func InitialStatus() Status {
	return StatusPending
}
