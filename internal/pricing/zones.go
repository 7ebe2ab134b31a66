package pricing

import "github.com/razoraze123/gnamgnam/internal/domain"

// Zones returns the delivery zone table: every quartier served by the
// shop with its flat fee in FCFA. Static reference data.
func Zones() []domain.DeliveryZone {
	return []domain.DeliveryZone{
		{Name: "Plateau", Fee: 1000},
		{Name: "Koulouba", Fee: 1000},
		{Name: "Yantala", Fee: 1200},
		{Name: "Gamkallé", Fee: 1200},
		{Name: "Boukoki", Fee: 1000},
		{Name: "Talladjé", Fee: 1300},
		{Name: "Lazaret", Fee: 1300},
		{Name: "Saga", Fee: 1500},
		{Name: "Niamey 2000", Fee: 1400},
		{Name: "Francophonie", Fee: 1500},
	}
}
