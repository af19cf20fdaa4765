package order

// Warning is a recoverable problem shown to the customer. The order is
// left unchanged and the customer may fix it and try again.
type Warning struct {
	Code      string
	Message   string
	Detail    string
	Retryable bool
}

func (w *Warning) Error() string {
	return w.Message
}

var (
	ErrEmptyOrder = &Warning{
		Code:    "empty_order",
		Message: "Tu carrito está vacío.",
		Detail:  "Agrega algunos productos antes de hacer el pedido.",
	}

	ErrIncompleteSides = &Warning{
		Code:    "incomplete_sides",
		Message: "Por favor, selecciona tus 3 guarniciones.",
		Detail:  "Elige un arroz, una crema/grano y una ensalada para tu plato.",
	}

	ErrMissingSide = &Warning{
		Code:    "missing_side",
		Message: "Por favor, selecciona al menos una guarnición.",
		Detail:  "Elige un arroz, una crema/grano o una ensalada para tu plato.",
	}

	ErrMessageTooLong = &Warning{
		Code:      "message_too_long",
		Message:   "Tu pedido es muy grande para enviarlo de una vez.",
		Detail:    "Por favor, considera hacer dos pedidos separados.",
		Retryable: true,
	}
)
