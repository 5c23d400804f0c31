package notification

import "context"

// Message é um pedido de notificação vindo dos use cases.
type Message struct {
	RecipientID string
	Type        string
	Title       string
	Body        string
	Channel     string

	RelatedKind string
	RelatedID   string
}

// Notifier é a capacidade de notificação: fire-and-forget do ponto de
// vista do chamador. Falhas de entrega são logadas, nunca propagadas.
type Notifier interface {
	Notify(ctx context.Context, msg Message)
}
