package domain

import "time"

type DeliveryMode string

const (
	DeliveryModeHome   DeliveryMode = "livraison" // home delivery to a zone
	DeliveryModePickup DeliveryMode = "retrait"   // pickup at the shop
)

func (m DeliveryMode) Valid() bool {
	return m == DeliveryModeHome || m == DeliveryModePickup
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "especes"
	PaymentNita PaymentMethod = "nita"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentNita
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "en_attente"
	OrderStatusConfirmed OrderStatus = "confirmee"
	OrderStatusDelivered OrderStatus = "livree"
	OrderStatusCancelled OrderStatus = "annulee"
)

// DeliveryZone maps a named quartier to its flat delivery fee.
type DeliveryZone struct {
	Name string `json:"nom"`
	Fee  int64  `json:"frais"`
}

// OrderItem is the persisted snapshot of one cart line at checkout time.
type OrderItem struct {
	ProductID string `json:"id"`
	Name      string `json:"nom"`
	Price     int64  `json:"prix"`
	Quantity  int64  `json:"quantite"`
}

type Order struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"client_id"`
	Items         []OrderItem   `json:"contenu"`
	Subtotal      int64         `json:"total"`
	DeliveryFee   int64         `json:"frais_livraison"`
	DeliveryMode  DeliveryMode  `json:"mode_livraison"`
	Zone          string        `json:"quartier"`
	AddressDetail string        `json:"adresse_details"`
	PaymentMethod PaymentMethod `json:"moyen_paiement"`
	Status        OrderStatus   `json:"statut"`
	CreatedAt     time.Time     `json:"created_at"`
}
